package tvm

import "github.com/shopspring/decimal"

// CompoundInterest generates the period-by-period growth of a principal
// compounded at a fixed annual percentage rate. A zero rate is legal and
// yields a constant balance across the schedule.
func CompoundInterest(params GrowthParameters) ([]CompoundPeriod, error) {
	numPeriods, err := schedulePeriods(params.TermYears, params.PeriodsPerYear)
	if err != nil {
		return nil, err
	}

	rate := periodicRate(params.AnnualRate, params.PeriodsPerYear)
	schedule := make([]CompoundPeriod, 0, numPeriods)

	principal := params.Principal
	for period := 1; period <= numPeriods; period++ {
		interest := principal.Mul(rate).Round(2)
		grown := principal.Add(interest)

		schedule = append(schedule, CompoundPeriod{
			PeriodNumber:      period,
			StartingPrincipal: principal,
			InterestEarned:    interest,
			NewPrincipal:      grown,
		})

		principal = grown
	}

	return schedule, nil
}

// FutureValue returns the compounded balance at the given 1-based period.
// It generates the full compound schedule on every call and indexes into
// it; nothing is cached between calls.
func FutureValue(principal, annualRate decimal.Decimal, termYears, periodsPerYear, period int) (decimal.Decimal, error) {
	schedule, err := CompoundInterest(GrowthParameters{
		Principal:      principal,
		AnnualRate:     annualRate,
		TermYears:      termYears,
		PeriodsPerYear: periodsPerYear,
	})
	if err != nil {
		return decimal.Zero, err
	}

	if period < 1 || period > len(schedule) {
		return decimal.Zero, WrapPeriodOutOfRange(period, len(schedule))
	}

	return schedule[period-1].NewPrincipal, nil
}
