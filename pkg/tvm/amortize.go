package tvm

// Amortize generates the full amortization schedule for a fixed-rate loan.
// The payment amount is computed once via Payment and held constant for all
// TermYears*PaymentsPerYear periods; there is no adjustment of the final
// payment, so the last EndingPrincipal carries the accumulated rounding
// drift and is near zero rather than exactly zero.
//
// Each period's interest is the prior balance times the periodic rate,
// rounded to 2 decimal places; principal and balance fields follow by exact
// addition and subtraction of currency values.
func Amortize(params LoanParameters) ([]AmortizationPeriod, error) {
	numPayments, err := schedulePeriods(params.TermYears, params.PaymentsPerYear)
	if err != nil {
		return nil, err
	}

	payment, err := Payment(params.LoanAmount, params.AnnualRate, params.TermYears, params.PaymentsPerYear)
	if err != nil {
		return nil, err
	}

	rate := periodicRate(params.AnnualRate, params.PaymentsPerYear)
	schedule := make([]AmortizationPeriod, 0, numPayments)

	// Period 1 starts from the loan amount itself; every later period
	// starts from the prior period's ending balance.
	principal := params.LoanAmount
	for period := 1; period <= numPayments; period++ {
		interest := principal.Mul(rate).Round(2)
		ending := principal.Add(interest).Sub(payment)

		schedule = append(schedule, AmortizationPeriod{
			PeriodNumber:     period,
			PaymentAmount:    payment,
			PrincipalPortion: payment.Sub(interest),
			InterestPortion:  interest,
			EndingPrincipal:  ending,
		})

		principal = ending
	}

	return schedule, nil
}
