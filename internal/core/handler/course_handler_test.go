package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/ryabkov/cbrcourse/internal/core/handler"
	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// courseUsecaseStub подменяет слой usecase и запоминает, с чем его вызвали
type courseUsecaseStub struct {
	currencies    []models.Currency
	currenciesErr error

	currency    models.Currency
	currencyErr error

	daily    models.DailyCourse
	dailyErr error

	gotDate       time.Time
	gotCurrencyID string
	gotBaseID     string
}

func (s *courseUsecaseStub) GetCurrencies(_ context.Context) ([]models.Currency, error) {
	return s.currencies, s.currenciesErr
}

func (s *courseUsecaseStub) GetCurrencyByID(_ context.Context, id string) (models.Currency, error) {
	s.gotCurrencyID = id
	return s.currency, s.currencyErr
}

func (s *courseUsecaseStub) GetDailyCourse(_ context.Context, date time.Time, currencyID, baseCurrencyID string) (models.DailyCourse, error) {
	s.gotDate = date
	s.gotCurrencyID = currencyID
	s.gotBaseID = baseCurrencyID
	return s.daily, s.dailyErr
}

func newTestRouter(stub *courseUsecaseStub) *mux.Router {
	router := mux.NewRouter()
	// маршрут дневного курса регистрируется первым, как в server.RegisterRoutes
	handler.NewCourseHandler(stub, zap.NewNop()).RegisterRoutes(router)
	handler.NewCurrencyHandler(stub, zap.NewNop()).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Error
}

func TestGetDailyCourse(t *testing.T) {
	stub := &courseUsecaseStub{
		daily: models.DailyCourse{
			Value:                 decimal.RequireFromString("73.4321"),
			PreviousDayDifference: decimal.RequireFromString("-0.1482"),
		},
	}
	router := newTestRouter(stub)

	recorder := doRequest(t, router, "/api/v1/currencies/R01235/daily?date=12.03.2021")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"value":"73.4321","difference":"-0.1482"}`, recorder.Body.String())

	assert.Equal(t, "R01235", stub.gotCurrencyID)
	assert.Equal(t, "", stub.gotBaseID)
	assert.Equal(t, time.Date(2021, 3, 12, 0, 0, 0, 0, time.UTC), stub.gotDate)
}

func TestGetDailyCourseWithBaseCurrency(t *testing.T) {
	stub := &courseUsecaseStub{
		daily: models.DailyCourse{
			Value:                 decimal.RequireFromString("1.1891"),
			PreviousDayDifference: decimal.Zero,
		},
	}
	router := newTestRouter(stub)

	recorder := doRequest(t, router, "/api/v1/currencies/R01239/daily?date=12.03.2021&base=R01235")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "R01239", stub.gotCurrencyID)
	assert.Equal(t, "R01235", stub.gotBaseID)
}

func TestGetDailyCourseBadDate(t *testing.T) {
	stub := &courseUsecaseStub{}
	router := newTestRouter(stub)

	for name, url := range map[string]string{
		"missing":      "/api/v1/currencies/R01235/daily",
		"wrong format": "/api/v1/currencies/R01235/daily?date=2021-03-12",
		"garbage":      "/api/v1/currencies/R01235/daily?date=abc",
	} {
		t.Run(name, func(t *testing.T) {
			recorder := doRequest(t, router, url)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "Query parameter date is required in format DD.MM.YYYY", decodeErrorBody(t, recorder))
		})
	}

	// до usecase запрос с плохой датой не доходит
	assert.Equal(t, "", stub.gotCurrencyID)
}

func TestGetDailyCourseStatusMapping(t *testing.T) {
	tests := map[string]struct {
		err      error
		wantCode int
	}{
		"unknown currency": {
			err:      fmt.Errorf("%w: currency R99999 not found", usecase.ErrInvalidRequest),
			wantCode: http.StatusBadRequest,
		},
		"no data for date": {
			err:      fmt.Errorf("course for R01235: %w", models.ErrNoDataForDate),
			wantCode: http.StatusNotFound,
		},
		"source failure": {
			err:      errors.New("cbr.ru is down"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			router := newTestRouter(&courseUsecaseStub{dailyErr: tc.err})

			recorder := doRequest(t, router, "/api/v1/currencies/R01235/daily?date=12.03.2021")

			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.NotEmpty(t, decodeErrorBody(t, recorder))
		})
	}
}
