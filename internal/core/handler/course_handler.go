package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ryabkov/cbrcourse/internal/core/logger"
	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/usecase"
)

// requestDateLayout - формат параметра date в запросе дневного курса
const requestDateLayout = "02.01.2006"

type CourseHandler struct {
	usecase usecase.CourseUsecase
	log     logger.Logger
}

type dailyCourseResponse struct {
	Value      string `json:"value"`
	Difference string `json:"difference"`
}

func NewCourseHandler(usecase usecase.CourseUsecase, log logger.Logger) *CourseHandler {
	return &CourseHandler{usecase: usecase, log: log}
}

func (h *CourseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/currencies/{currencyID}/daily", h.GetDailyCourse).Methods("GET")
}

func (h *CourseHandler) GetDailyCourse(w http.ResponseWriter, r *http.Request) {
	currencyID := mux.Vars(r)["currencyID"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter date is required in format DD.MM.YYYY")
		return
	}

	date, err := time.Parse(requestDateLayout, dateStr)
	if err != nil {
		h.log.Warn("Invalid date in daily course request",
			logger.StringField("date", dateStr),
			logger.ErrorField("error", err))
		respondWithError(w, http.StatusBadRequest, "Query parameter date is required in format DD.MM.YYYY")
		return
	}

	baseCurrencyID := r.URL.Query().Get("base")

	dailyCourse, err := h.usecase.GetDailyCourse(r.Context(), date, currencyID, baseCurrencyID)
	if err != nil {
		h.handleDailyCourseError(w, currencyID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dailyCourseResponse{
		Value:      dailyCourse.Value.String(),
		Difference: dailyCourse.PreviousDayDifference.String(),
	})
}

func (h *CourseHandler) handleDailyCourseError(w http.ResponseWriter, currencyID string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNoDataForDate):
		// запрос валиден, данных за дату просто нет
		respondWithError(w, http.StatusNotFound, "No course data for the requested date")
	default:
		h.log.Error("Failed to get daily course",
			logger.StringField("currency_id", currencyID),
			logger.ErrorField("error", err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get daily course")
	}
}
