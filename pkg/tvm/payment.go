package tvm

import "github.com/shopspring/decimal"

// Payment computes the fixed periodic payment for a loan using the annuity
// formula P*r*(1+r)^n / ((1+r)^n - 1), where r is the periodic rate and n
// the total number of payments. The result is rounded to 2 decimal places,
// half away from zero.
func Payment(loanAmount, annualRate decimal.Decimal, termYears, paymentsPerYear int) (decimal.Decimal, error) {
	numPayments, err := schedulePeriods(termYears, paymentsPerYear)
	if err != nil {
		return decimal.Zero, err
	}

	rate := periodicRate(annualRate, paymentsPerYear)
	factor := compoundFactor(rate, numPayments)

	// A factor of exactly 1 means a zero rate: the annuity denominator
	// vanishes and the formula is undefined.
	denominator := factor.Sub(one)
	if denominator.IsZero() {
		return decimal.Zero, WrapDegenerateGrowth()
	}

	payment := loanAmount.Mul(rate).Mul(factor).Div(denominator)
	return payment.Round(2), nil
}

// SimpleInterest returns the principal grown by a flat annual percentage
// rate: principal * (1 + rate/100), at currency precision. It has no
// failure modes.
func SimpleInterest(principal, annualRate decimal.Decimal) decimal.Decimal {
	return principal.Mul(one.Add(annualRate.Div(hundred))).Round(2)
}
