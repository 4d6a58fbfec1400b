package tvm

import "github.com/shopspring/decimal"

// PresentValue discounts a future value back over a number of periods at a
// per-period percentage rate: futureValue / (1 + rate/100)^periods, rounded
// to 2 decimal places. Zero periods is legal and returns the future value
// at currency precision.
func PresentValue(futureValue, ratePerPeriod decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods < 0 {
		return decimal.Zero, WrapNegativePeriods(periods)
	}

	factor := compoundFactor(ratePerPeriod.Div(hundred), periods)
	if factor.IsZero() {
		return decimal.Zero, WrapZeroDiscount()
	}

	return futureValue.Div(factor).Round(2), nil
}

// NetPresentValue returns the discounted future value net of the original
// investment. The subtraction operates on already-rounded currency values,
// so it introduces no rounding of its own and
// NetPresentValue(fv, r, p, inv) always equals PresentValue(fv, r, p) - inv.
func NetPresentValue(futureValue, ratePerPeriod decimal.Decimal, periods int, originalInvestment decimal.Decimal) (decimal.Decimal, error) {
	presentValue, err := PresentValue(futureValue, ratePerPeriod, periods)
	if err != nil {
		return decimal.Zero, err
	}

	return presentValue.Sub(originalInvestment), nil
}
