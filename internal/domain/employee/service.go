package employee

import (
	"context"
	"io"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
)

type EmployeeService interface {
	Create(ctx context.Context, actor user.Actor, req CreateEmployeeRequest) (EmployeeDetailResponse, error)
	Get(ctx context.Context, actor user.Actor, employeeID int64) (EmployeeDetailResponse, error)
	// List scopes to the actor's country for scoped admins; a global admin
	// may narrow with countryFilter.
	List(ctx context.Context, actor user.Actor, countryFilter *string) ([]EmployeeResponse, error)
	Update(ctx context.Context, actor user.Actor, req UpdateEmployeeRequest) (EmployeeDetailResponse, error)
	SetStatus(ctx context.Context, actor user.Actor, employeeID int64, req UpdateEmployeeStatusRequest) (EmployeeResponse, error)
	BulkUpload(ctx context.Context, actor user.Actor, req BulkUploadRequest) (BulkUploadResponse, error)
	// ImportCSV parses a CSV stream into create requests and runs them
	// through the same per-row path as BulkUpload.
	ImportCSV(ctx context.Context, actor user.Actor, r io.Reader) (BulkUploadResponse, error)
}
