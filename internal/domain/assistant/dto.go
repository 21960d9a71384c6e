package assistant

import (
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/validator"
)

type AskRequest struct {
	Question string `json:"question"`
}

func (r *AskRequest) Validate() error {
	if validator.IsEmpty(r.Question) {
		return validator.ValidationErrors{
			{Field: "question", Message: "is required"},
		}
	}
	return nil
}

type AskResponse struct {
	Question string           `json:"question"`
	SQL      string           `json:"sql"`
	Model    string           `json:"model"`
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
}
