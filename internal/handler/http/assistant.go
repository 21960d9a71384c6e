package http

import (
	"encoding/json"
	"net/http"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/assistant"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/response"
)

type AssistantHandler interface {
	Ask(w http.ResponseWriter, r *http.Request)
}

type AssistantHandlerImpl struct {
	assistantService assistant.AssistantService
}

func NewAssistantHandler(assistantService assistant.AssistantService) AssistantHandler {
	return &AssistantHandlerImpl{assistantService: assistantService}
}

// Ask implements AssistantHandler.
func (h *AssistantHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req assistant.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	answer, err := h.assistantService.Ask(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, answer)
}
