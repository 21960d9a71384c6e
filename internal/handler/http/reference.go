package http

import (
	"net/http"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/reference"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/response"
)

type ReferenceHandler interface {
	ListCountries(w http.ResponseWriter, r *http.Request)
	ListCurrencies(w http.ResponseWriter, r *http.Request)
}

type ReferenceHandlerImpl struct {
	referenceService reference.ReferenceService
}

func NewReferenceHandler(referenceService reference.ReferenceService) ReferenceHandler {
	return &ReferenceHandlerImpl{referenceService: referenceService}
}

// ListCountries implements ReferenceHandler.
func (h *ReferenceHandlerImpl) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.referenceService.Countries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, countries)
}

// ListCurrencies implements ReferenceHandler.
func (h *ReferenceHandlerImpl) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.referenceService.Currencies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, currencies)
}
