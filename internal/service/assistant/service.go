package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/assistant"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/genai"
)

// schemaDescription is the slice of the data model the model is allowed to
// query against. Kept in sync with the migrations by hand.
const schemaDescription = `
Tables:
  users(id, email, role, created_at)
  country(id, name, currency_id)            -- name in ('India','France','USA')
  currency(id, code)                        -- code in ('INR','EUR','USD')
  employee(employee_id, full_name, date_of_birth, start_date, country_id, currency_id, is_active, created_by, created_at)
  employee_india(employee_id, aadhar_number, pan, bank_account, ifsc)
  employee_france(employee_id, numero_securite_sociale, bank_iban, department_code)
  employee_usa(employee_id, ssn, bank_account, routing_number)
  pay_period(id, period_start, period_end)
  payroll(id, employee_id, pay_period_id, payroll_type_id, basic_salary, bonus, overtime_hours, overtime_rate, net_pay, created_at)
  payroll_type(id, name)                    -- name in ('Regular','Bonus','Commission','Overtime')
  payroll_payroll_type(payroll_id, payroll_type_id)
`

type AssistantServiceImpl struct {
	client *genai.Client
	runner assistant.QueryRunner
	logger *slog.Logger
}

func NewAssistantService(client *genai.Client, runner assistant.QueryRunner, logger *slog.Logger) assistant.AssistantService {
	return &AssistantServiceImpl{
		client: client,
		runner: runner,
		logger: logger,
	}
}

func buildPrompt(actor user.Actor, question string) string {
	prompt := `You are a PostgreSQL expert. Generate a single SELECT statement answering the question below.
Rules:
- Output ONLY the SQL statement, no explanation.
- SELECT statements only. Never modify data.
- Use only the tables and columns listed in the schema.
` + "\nSchema:\n" + schemaDescription

	if own, ok := user.AllowedCountry(actor.Role); ok {
		prompt += fmt.Sprintf("\nThe requesting admin may only see data for %s. Every query touching employee or payroll must restrict to that country via the country table.\n", own)
	}

	return prompt + "\nQuestion: " + question
}

// Ask implements assistant.AssistantService.
func (s *AssistantServiceImpl) Ask(ctx context.Context, actor user.Actor, req assistant.AskRequest) (assistant.AskResponse, error) {
	if err := req.Validate(); err != nil {
		return assistant.AskResponse{}, err
	}
	if !user.IsManagementRole(actor.Role) {
		return assistant.AskResponse{}, user.ErrInsufficientPermissions
	}

	// No API key configured; the rest of the API works without the assistant
	if s.client == nil {
		return assistant.AskResponse{}, assistant.ErrModelsUnavailable
	}

	text, model, err := s.client.Generate(ctx, buildPrompt(actor, req.Question))
	if err != nil {
		return assistant.AskResponse{}, assistant.ErrModelsUnavailable
	}

	sql, err := assistant.ExtractSQL(text)
	if err != nil {
		return assistant.AskResponse{}, err
	}
	if err := assistant.GuardSQL(sql); err != nil {
		s.logger.WarnContext(ctx, "rejected generated SQL",
			slog.String("model", model),
			slog.String("sql", sql))
		return assistant.AskResponse{}, err
	}

	columns, rows, err := s.runner.RunReadOnly(ctx, sql)
	if err != nil {
		return assistant.AskResponse{}, fmt.Errorf("failed to run generated query: %w", err)
	}

	return assistant.AskResponse{
		Question: req.Question,
		SQL:      sql,
		Model:    model,
		Columns:  columns,
		Rows:     rows,
		RowCount: len(rows),
	}, nil
}
