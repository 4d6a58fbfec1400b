package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/moneyforge/fincalc/internal/cache"
	"github.com/moneyforge/fincalc/internal/config"
	"github.com/moneyforge/fincalc/internal/domain"
	"github.com/moneyforge/fincalc/pkg/tvm"
)

// Request bound errors
var (
	ErrAmountTooLarge  = errors.New("amount exceeds the configured maximum")
	ErrScheduleTooLong = errors.New("schedule exceeds the configured maximum period count")
)

// CalculatorService runs time-value-of-money calculations, applies the
// configured call-boundary defaults and bounds, and caches generated
// schedules. Single-value results are always recomputed.
type CalculatorService struct {
	cache  cache.Cache
	config *config.Config
	logger *logrus.Logger
}

func NewCalculatorService(cache cache.Cache, config *config.Config, logger *logrus.Logger) *CalculatorService {
	return &CalculatorService{
		cache:  cache,
		config: config,
		logger: logger,
	}
}

// Payment computes the fixed periodic payment for a loan
func (s *CalculatorService) Payment(ctx context.Context, request *domain.PaymentRequest) (*domain.ValueResponse, error) {
	paymentsPerYear := s.paymentFrequency(request.PaymentsPerYear)

	if err := s.checkAmount(request.LoanAmount); err != nil {
		return nil, err
	}
	if err := s.checkScheduleLength(request.TermYears, paymentsPerYear); err != nil {
		return nil, err
	}

	payment, err := tvm.Payment(request.LoanAmount, request.AnnualRate, request.TermYears, paymentsPerYear)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"operation":         domain.OperationPayment,
		"loan_amount":       request.LoanAmount,
		"annual_rate":       request.AnnualRate,
		"term_years":        request.TermYears,
		"payments_per_year": paymentsPerYear,
	}).Debug("computed periodic payment")

	return s.valueResponse(domain.OperationPayment, payment), nil
}

// SimpleInterest grows a principal by a flat annual rate
func (s *CalculatorService) SimpleInterest(ctx context.Context, request *domain.SimpleInterestRequest) (*domain.ValueResponse, error) {
	if err := s.checkAmount(request.Principal); err != nil {
		return nil, err
	}

	result := tvm.SimpleInterest(request.Principal, request.AnnualRate)

	return s.valueResponse(domain.OperationSimpleInterest, result), nil
}

// PresentValue discounts a future value over a number of periods
func (s *CalculatorService) PresentValue(ctx context.Context, request *domain.PresentValueRequest) (*domain.ValueResponse, error) {
	if err := s.checkAmount(request.FutureValue); err != nil {
		return nil, err
	}
	if err := s.checkPeriods(request.Periods); err != nil {
		return nil, err
	}

	result, err := tvm.PresentValue(request.FutureValue, request.RatePerPeriod, request.Periods)
	if err != nil {
		return nil, err
	}

	return s.valueResponse(domain.OperationPresentValue, result), nil
}

// NetPresentValue discounts a future value and nets out the investment
func (s *CalculatorService) NetPresentValue(ctx context.Context, request *domain.NetPresentValueRequest) (*domain.ValueResponse, error) {
	if err := s.checkAmount(request.FutureValue); err != nil {
		return nil, err
	}
	if err := s.checkAmount(request.OriginalInvestment); err != nil {
		return nil, err
	}
	if err := s.checkPeriods(request.Periods); err != nil {
		return nil, err
	}

	result, err := tvm.NetPresentValue(request.FutureValue, request.RatePerPeriod, request.Periods, request.OriginalInvestment)
	if err != nil {
		return nil, err
	}

	return s.valueResponse(domain.OperationNetPresentValue, result), nil
}

// FutureValue returns the compounded balance at a single period. The full
// schedule is recomputed on every call; future values are never cached.
func (s *CalculatorService) FutureValue(ctx context.Context, request *domain.FutureValueRequest) (*domain.ValueResponse, error) {
	periodsPerYear := s.paymentFrequency(request.PeriodsPerYear)

	if err := s.checkAmount(request.Principal); err != nil {
		return nil, err
	}
	if err := s.checkScheduleLength(request.TermYears, periodsPerYear); err != nil {
		return nil, err
	}

	result, err := tvm.FutureValue(request.Principal, request.AnnualRate, request.TermYears, periodsPerYear, request.Period)
	if err != nil {
		return nil, err
	}

	return s.valueResponse(domain.OperationFutureValue, result), nil
}

// Amortize generates a full amortization schedule with its summary
func (s *CalculatorService) Amortize(ctx context.Context, request *domain.AmortizationRequest) (*domain.AmortizationResponse, error) {
	paymentsPerYear := s.paymentFrequency(request.PaymentsPerYear)

	if err := s.checkAmount(request.LoanAmount); err != nil {
		return nil, err
	}
	if err := s.checkScheduleLength(request.TermYears, paymentsPerYear); err != nil {
		return nil, err
	}

	params := tvm.LoanParameters{
		LoanAmount:      request.LoanAmount,
		AnnualRate:      request.AnnualRate,
		TermYears:       request.TermYears,
		PaymentsPerYear: paymentsPerYear,
	}

	cacheKey := fmt.Sprintf("fincalc:%s:%s:%s:%d:%d",
		domain.OperationAmortization, params.LoanAmount, params.AnnualRate, params.TermYears, params.PaymentsPerYear)

	var cached domain.AmortizationResponse
	if s.lookupCached(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	schedule, err := tvm.Amortize(params)
	if err != nil {
		return nil, err
	}

	response := &domain.AmortizationResponse{
		CalculationID: uuid.New(),
		Operation:     domain.OperationAmortization,
		Parameters:    params,
		Summary:       buildAmortizationSummary(schedule),
		Schedule:      schedule,
	}

	s.storeCached(ctx, cacheKey, response)

	s.logger.WithFields(logrus.Fields{
		"operation":      domain.OperationAmortization,
		"calculation_id": response.CalculationID,
		"periods":        len(schedule),
	}).Info("generated amortization schedule")

	return response, nil
}

// CompoundInterest generates a full compound growth schedule with its summary
func (s *CalculatorService) CompoundInterest(ctx context.Context, request *domain.CompoundInterestRequest) (*domain.CompoundInterestResponse, error) {
	periodsPerYear := s.paymentFrequency(request.PeriodsPerYear)

	if err := s.checkAmount(request.Principal); err != nil {
		return nil, err
	}
	if err := s.checkScheduleLength(request.TermYears, periodsPerYear); err != nil {
		return nil, err
	}

	params := tvm.GrowthParameters{
		Principal:      request.Principal,
		AnnualRate:     request.AnnualRate,
		TermYears:      request.TermYears,
		PeriodsPerYear: periodsPerYear,
	}

	cacheKey := fmt.Sprintf("fincalc:%s:%s:%s:%d:%d",
		domain.OperationCompoundInterest, params.Principal, params.AnnualRate, params.TermYears, params.PeriodsPerYear)

	var cached domain.CompoundInterestResponse
	if s.lookupCached(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	schedule, err := tvm.CompoundInterest(params)
	if err != nil {
		return nil, err
	}

	response := &domain.CompoundInterestResponse{
		CalculationID: uuid.New(),
		Operation:     domain.OperationCompoundInterest,
		Parameters:    params,
		Summary:       buildGrowthSummary(params, schedule),
		Schedule:      schedule,
	}

	s.storeCached(ctx, cacheKey, response)

	s.logger.WithFields(logrus.Fields{
		"operation":      domain.OperationCompoundInterest,
		"calculation_id": response.CalculationID,
		"periods":        len(schedule),
	}).Info("generated compound interest schedule")

	return response, nil
}

// paymentFrequency applies the configured default when the request omits
// the payments-per-year field.
func (s *CalculatorService) paymentFrequency(requested int) int {
	if requested == 0 {
		return s.config.Business.DefaultPaymentsPerYear
	}
	return requested
}

func (s *CalculatorService) checkAmount(amount decimal.Decimal) error {
	maxAmount := s.config.GetMaxAmount()
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("amount %s exceeds maximum %s: %w", amount, maxAmount, ErrAmountTooLarge)
	}
	return nil
}

// checkScheduleLength bounds the schedule size without forming the
// term-times-frequency product, which can wrap for outlandish terms. Terms
// and frequencies that are not positive fall through to the library's own
// validation.
func (s *CalculatorService) checkScheduleLength(termYears, periodsPerYear int) error {
	maxPeriods := s.config.Business.MaxSchedulePeriods
	if termYears > 0 && periodsPerYear > 0 && termYears > maxPeriods/periodsPerYear {
		return fmt.Errorf("term of %d years at %d periods per year exceeds maximum %d periods: %w",
			termYears, periodsPerYear, maxPeriods, ErrScheduleTooLong)
	}
	return nil
}

func (s *CalculatorService) checkPeriods(periods int) error {
	if periods > s.config.Business.MaxSchedulePeriods {
		return fmt.Errorf("%d periods exceed maximum %d: %w", periods, s.config.Business.MaxSchedulePeriods, ErrScheduleTooLong)
	}
	return nil
}

// lookupCached returns true and fills target when the key is cached.
// Undecodable entries count as misses.
func (s *CalculatorService) lookupCached(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil || !s.config.Cache.Enabled {
		return false
	}

	payload, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		s.logger.WithError(err).WithField("cache_key", key).Warn("discarding undecodable cache entry")
		return false
	}

	s.logger.WithField("cache_key", key).Debug("schedule served from cache")
	return true
}

// storeCached writes a generated schedule response to the cache. Failures
// are logged and otherwise ignored; the response is returned regardless.
func (s *CalculatorService) storeCached(ctx context.Context, key string, response interface{}) {
	if s.cache == nil || !s.config.Cache.Enabled {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		s.logger.WithError(err).WithField("cache_key", key).Warn("failed to encode schedule for caching")
		return
	}

	if err := s.cache.Set(ctx, key, payload, s.config.GetCacheTTL()); err != nil {
		s.logger.WithError(err).WithField("cache_key", key).Warn("failed to cache schedule")
	}
}

func (s *CalculatorService) valueResponse(operation string, value decimal.Decimal) *domain.ValueResponse {
	return &domain.ValueResponse{
		CalculationID: uuid.New(),
		Operation:     operation,
		Value:         value,
	}
}

func buildAmortizationSummary(schedule []tvm.AmortizationPeriod) domain.AmortizationSummary {
	totalPaid := decimal.Zero
	totalPrincipal := decimal.Zero
	totalInterest := decimal.Zero

	for _, period := range schedule {
		totalPaid = totalPaid.Add(period.PaymentAmount)
		totalPrincipal = totalPrincipal.Add(period.PrincipalPortion)
		totalInterest = totalInterest.Add(period.InterestPortion)
	}

	last := schedule[len(schedule)-1]
	return domain.AmortizationSummary{
		NumberOfPayments: len(schedule),
		PaymentAmount:    last.PaymentAmount,
		TotalPaid:        totalPaid,
		TotalPrincipal:   totalPrincipal,
		TotalInterest:    totalInterest,
		FinalBalance:     last.EndingPrincipal,
	}
}

func buildGrowthSummary(params tvm.GrowthParameters, schedule []tvm.CompoundPeriod) domain.GrowthSummary {
	last := schedule[len(schedule)-1]
	return domain.GrowthSummary{
		Periods:             len(schedule),
		TotalInterestEarned: last.NewPrincipal.Sub(params.Principal),
		FinalBalance:        last.NewPrincipal,
	}
}
