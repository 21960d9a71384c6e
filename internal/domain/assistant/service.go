package assistant

import (
	"context"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
)

type AssistantService interface {
	// Ask turns a natural-language question into a guarded SELECT, runs it,
	// and returns the rows. Scoped admins get a country clause injected into
	// the prompt so generated queries stay inside their scope.
	Ask(ctx context.Context, actor user.Actor, req AskRequest) (AskResponse, error)
}
