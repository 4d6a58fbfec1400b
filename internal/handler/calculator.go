package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/moneyforge/fincalc/internal/domain"
	"github.com/moneyforge/fincalc/internal/service"
	"github.com/moneyforge/fincalc/pkg/response"
	"github.com/moneyforge/fincalc/pkg/tvm"
)

// Calculator is the service surface the HTTP layer depends on
type Calculator interface {
	Payment(ctx context.Context, request *domain.PaymentRequest) (*domain.ValueResponse, error)
	SimpleInterest(ctx context.Context, request *domain.SimpleInterestRequest) (*domain.ValueResponse, error)
	PresentValue(ctx context.Context, request *domain.PresentValueRequest) (*domain.ValueResponse, error)
	NetPresentValue(ctx context.Context, request *domain.NetPresentValueRequest) (*domain.ValueResponse, error)
	FutureValue(ctx context.Context, request *domain.FutureValueRequest) (*domain.ValueResponse, error)
	Amortize(ctx context.Context, request *domain.AmortizationRequest) (*domain.AmortizationResponse, error)
	CompoundInterest(ctx context.Context, request *domain.CompoundInterestRequest) (*domain.CompoundInterestResponse, error)
}

type CalculatorHandler struct {
	service   Calculator
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewCalculatorHandler(service Calculator, logger *logrus.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		service:   service,
		validator: newValidator(),
		logger:    logger,
	}
}

// Payment handles POST /calculations/payment
func (h *CalculatorHandler) Payment(w http.ResponseWriter, r *http.Request) {
	var request domain.PaymentRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.Payment(r.Context(), &request)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, result)
}

// SimpleInterest handles POST /calculations/simple-interest
func (h *CalculatorHandler) SimpleInterest(w http.ResponseWriter, r *http.Request) {
	var request domain.SimpleInterestRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.SimpleInterest(r.Context(), &request)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, result)
}

// PresentValue handles POST /calculations/present-value
func (h *CalculatorHandler) PresentValue(w http.ResponseWriter, r *http.Request) {
	var request domain.PresentValueRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.PresentValue(r.Context(), &request)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, result)
}

// NetPresentValue handles POST /calculations/net-present-value
func (h *CalculatorHandler) NetPresentValue(w http.ResponseWriter, r *http.Request) {
	var request domain.NetPresentValueRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.NetPresentValue(r.Context(), &request)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, result)
}

// FutureValue handles POST /calculations/future-value
func (h *CalculatorHandler) FutureValue(w http.ResponseWriter, r *http.Request) {
	var request domain.FutureValueRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.FutureValue(r.Context(), &request)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, result)
}

// Amortize handles POST /calculations/amortization
func (h *CalculatorHandler) Amortize(w http.ResponseWriter, r *http.Request) {
	var request domain.AmortizationRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.Amortize(r.Context(), &request)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, result)
}

// CompoundInterest handles POST /calculations/compound-interest
func (h *CalculatorHandler) CompoundInterest(w http.ResponseWriter, r *http.Request) {
	var request domain.CompoundInterestRequest
	if !h.decode(w, r, &request) {
		return
	}

	result, err := h.service.CompoundInterest(r.Context(), &request)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, result)
}

// decode unmarshals and validates the request body, writing the failure
// response itself. It reports whether the handler should proceed.
func (h *CalculatorHandler) decode(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return false
	}

	if err := h.validator.Struct(request); err != nil {
		response.BadRequest(w, "validation failed", err)
		return false
	}

	return true
}

func (h *CalculatorHandler) respondError(w http.ResponseWriter, err error) {
	var domainErr *tvm.DomainError
	if errors.As(err, &domainErr) {
		response.BadRequest(w, domainErr.Message, domainErr)
		return
	}

	var indexErr *tvm.IndexError
	if errors.As(err, &indexErr) {
		response.BadRequest(w, indexErr.Message, indexErr)
		return
	}

	if errors.Is(err, service.ErrAmountTooLarge) || errors.Is(err, service.ErrScheduleTooLong) {
		response.BadRequest(w, "request outside accepted bounds", err)
		return
	}

	h.logger.WithError(err).Error("calculation failed")
	response.InternalServerError(w, "calculation failed", err)
}
