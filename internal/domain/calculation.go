package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OperationPayment          = "payment"
	OperationSimpleInterest   = "simple_interest"
	OperationPresentValue     = "present_value"
	OperationNetPresentValue  = "net_present_value"
	OperationFutureValue      = "future_value"
	OperationAmortization     = "amortization"
	OperationCompoundInterest = "compound_interest"
)

// DTOs for requests and responses

type PaymentRequest struct {
	LoanAmount      decimal.Decimal `json:"loan_amount" validate:"required,decimal_gt=0"`
	AnnualRate      decimal.Decimal `json:"annual_rate" validate:"decimal_gte=0"`
	TermYears       int             `json:"term_years" validate:"required,gt=0"`
	PaymentsPerYear int             `json:"payments_per_year" validate:"omitempty,gt=0"`
}

type SimpleInterestRequest struct {
	Principal  decimal.Decimal `json:"principal" validate:"required,decimal_gt=0"`
	AnnualRate decimal.Decimal `json:"annual_rate" validate:"decimal_gte=0"`
}

type PresentValueRequest struct {
	FutureValue   decimal.Decimal `json:"future_value" validate:"required,decimal_gt=0"`
	RatePerPeriod decimal.Decimal `json:"rate_per_period" validate:"decimal_gte=0"`
	Periods       int             `json:"periods"`
}

type NetPresentValueRequest struct {
	FutureValue        decimal.Decimal `json:"future_value" validate:"required,decimal_gt=0"`
	RatePerPeriod      decimal.Decimal `json:"rate_per_period" validate:"decimal_gte=0"`
	Periods            int             `json:"periods"`
	OriginalInvestment decimal.Decimal `json:"original_investment" validate:"required,decimal_gte=0"`
}

type FutureValueRequest struct {
	Principal      decimal.Decimal `json:"principal" validate:"required,decimal_gt=0"`
	AnnualRate     decimal.Decimal `json:"annual_rate" validate:"decimal_gte=0"`
	TermYears      int             `json:"term_years" validate:"required,gt=0"`
	PeriodsPerYear int             `json:"periods_per_year" validate:"omitempty,gt=0"`
	Period         int             `json:"period"`
}

// ValueResponse carries the result of a single-value calculation
type ValueResponse struct {
	CalculationID uuid.UUID       `json:"calculation_id"`
	Operation     string          `json:"operation"`
	Value         decimal.Decimal `json:"value"`
}
