package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneyforge/fincalc/internal/config"
	"github.com/moneyforge/fincalc/internal/handler"
	"github.com/moneyforge/fincalc/internal/service"
)

func newTestRouter() *mux.Router {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Cache: config.CacheConfig{Enabled: false, TTL: "1h"},
		Business: config.BusinessConfig{
			DefaultPaymentsPerYear: 12,
			MaxSchedulePeriods:     600,
			MaxAmount:              "1000000000",
		},
		Health: config.HealthConfig{Timeout: "5s"},
	}

	calculatorService := service.NewCalculatorService(nil, cfg, logger)
	calculatorHandler := handler.NewCalculatorHandler(calculatorService, logger)
	healthHandler := handler.NewHealthHandler(nil, cfg.GetHealthTimeout())

	return setupRoutes(calculatorHandler, healthHandler, logger)
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calculations/unknown", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "route not found", env.Message)
}

func TestRouterServesCalculations(t *testing.T) {
	router := newTestRouter()

	body := `{"loan_amount":"85000","annual_rate":"10.58","term_years":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculations/payment", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Value string `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "2765.92", env.Data.Value)
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
