package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyforge/fincalc/pkg/tvm"
)

type AmortizationRequest struct {
	LoanAmount      decimal.Decimal `json:"loan_amount" validate:"required,decimal_gt=0"`
	AnnualRate      decimal.Decimal `json:"annual_rate" validate:"decimal_gte=0"`
	TermYears       int             `json:"term_years" validate:"required,gt=0"`
	PaymentsPerYear int             `json:"payments_per_year" validate:"omitempty,gt=0"`
}

type CompoundInterestRequest struct {
	Principal      decimal.Decimal `json:"principal" validate:"required,decimal_gt=0"`
	AnnualRate     decimal.Decimal `json:"annual_rate" validate:"decimal_gte=0"`
	TermYears      int             `json:"term_years" validate:"required,gt=0"`
	PeriodsPerYear int             `json:"periods_per_year" validate:"omitempty,gt=0"`
}

// AmortizationSummary aggregates a schedule for rendering next to it
type AmortizationSummary struct {
	NumberOfPayments int             `json:"number_of_payments"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalPrincipal   decimal.Decimal `json:"total_principal"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	FinalBalance     decimal.Decimal `json:"final_balance"`
}

// GrowthSummary aggregates a compound-interest schedule
type GrowthSummary struct {
	Periods             int             `json:"periods"`
	TotalInterestEarned decimal.Decimal `json:"total_interest_earned"`
	FinalBalance        decimal.Decimal `json:"final_balance"`
}

type AmortizationResponse struct {
	CalculationID uuid.UUID                `json:"calculation_id"`
	Operation     string                   `json:"operation"`
	Parameters    tvm.LoanParameters       `json:"parameters"`
	Summary       AmortizationSummary      `json:"summary"`
	Schedule      []tvm.AmortizationPeriod `json:"schedule"`
}

type CompoundInterestResponse struct {
	CalculationID uuid.UUID            `json:"calculation_id"`
	Operation     string               `json:"operation"`
	Parameters    tvm.GrowthParameters `json:"parameters"`
	Summary       GrowthSummary        `json:"summary"`
	Schedule      []tvm.CompoundPeriod `json:"schedule"`
}
