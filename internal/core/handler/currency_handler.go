package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ryabkov/cbrcourse/internal/core/logger"
	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/repository"
	"github.com/ryabkov/cbrcourse/internal/core/usecase"
)

type CurrencyHandler struct {
	usecase usecase.CourseUsecase
	log     logger.Logger
}

type currencyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Nominal int64  `json:"nominal"`
}

func NewCurrencyHandler(usecase usecase.CourseUsecase, log logger.Logger) *CurrencyHandler {
	return &CurrencyHandler{usecase: usecase, log: log}
}

func (h *CurrencyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/currencies", h.GetCurrencies).Methods("GET")
	router.HandleFunc("/api/v1/currencies/{currencyID}", h.GetCurrencyByID).Methods("GET")
}

func (h *CurrencyHandler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.usecase.GetCurrencies(r.Context())
	if err != nil {
		h.log.Error("Failed to get currencies", logger.ErrorField("error", err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get currencies")
		return
	}

	respondWithJSON(w, http.StatusOK, toCurrencyResponses(currencies))
}

func (h *CurrencyHandler) GetCurrencyByID(w http.ResponseWriter, r *http.Request) {
	currencyID := mux.Vars(r)["currencyID"]

	currency, err := h.usecase.GetCurrencyByID(r.Context(), currencyID)
	if err != nil {
		if errors.Is(err, repository.ErrCurrencyNotFound) {
			respondWithError(w, http.StatusNotFound, "Currency not found")
			return
		}

		h.log.Error("Failed to get currency",
			logger.StringField("currency_id", currencyID),
			logger.ErrorField("error", err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get currency")
		return
	}

	respondWithJSON(w, http.StatusOK, toCurrencyResponse(currency))
}

func toCurrencyResponse(currency models.Currency) currencyResponse {
	return currencyResponse{
		ID:      currency.ID(),
		Name:    currency.Name(),
		Nominal: currency.Nominal(),
	}
}

func toCurrencyResponses(currencies []models.Currency) []currencyResponse {
	responses := make([]currencyResponse, 0, len(currencies))
	for _, currency := range currencies {
		responses = append(responses, toCurrencyResponse(currency))
	}
	return responses
}
