// Package tvm provides deterministic time-value-of-money arithmetic:
// fixed-rate loan payments, amortization schedules, simple and compound
// interest, present value, net present value, and future value lookup.
// All currency values use fixed-point decimals held at 2 decimal places.
package tvm

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// LoanParameters describes a fixed-rate loan
type LoanParameters struct {
	LoanAmount      decimal.Decimal `json:"loan_amount"`
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	TermYears       int             `json:"term_years"`
	PaymentsPerYear int             `json:"payments_per_year"`
}

// GrowthParameters describes a principal compounding at a fixed annual rate
type GrowthParameters struct {
	Principal      decimal.Decimal `json:"principal"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	TermYears      int             `json:"term_years"`
	PeriodsPerYear int             `json:"periods_per_year"`
}

// AmortizationPeriod is one row of an amortization schedule
type AmortizationPeriod struct {
	PeriodNumber     int             `json:"period_number"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	EndingPrincipal  decimal.Decimal `json:"ending_principal"`
}

// CompoundPeriod is one row of a compound-interest schedule
type CompoundPeriod struct {
	PeriodNumber      int             `json:"period_number"`
	StartingPrincipal decimal.Decimal `json:"starting_principal"`
	InterestEarned    decimal.Decimal `json:"interest_earned"`
	NewPrincipal      decimal.Decimal `json:"new_principal"`
}

// schedulePeriods converts a term in years and a per-year frequency into the
// total period count. The bounds are checked before multiplying so a term
// large enough to wrap the product is rejected instead of silently producing
// a short schedule.
func schedulePeriods(termYears, periodsPerYear int) (int, error) {
	if periodsPerYear < 1 {
		return 0, WrapInvalidPaymentFrequency(periodsPerYear)
	}
	if termYears > math.MaxInt/periodsPerYear || termYears < math.MinInt/periodsPerYear {
		return 0, WrapPeriodCountOverflow(termYears, periodsPerYear)
	}

	periods := termYears * periodsPerYear
	if periods < 1 {
		return 0, WrapInvalidPeriodCount(periods)
	}
	return periods, nil
}

// periodicRate converts an annual percentage rate to a per-period fraction,
// e.g. 10.58% paid monthly becomes 10.58/12/100.
func periodicRate(annualRate decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return annualRate.Div(decimal.NewFromInt(int64(periodsPerYear))).Div(hundred)
}

// compoundFactor returns (1+rate)^periods using exact multiplication.
func compoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	base := one.Add(rate)
	factor := one
	for i := 0; i < periods; i++ {
		factor = factor.Mul(base)
	}
	return factor
}
