package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/moneyforge/fincalc/internal/domain"
)

func TestDecimalValidationRules(t *testing.T) {
	v := newValidator()

	valid := domain.PaymentRequest{
		LoanAmount: decimal.RequireFromString("85000"),
		AnnualRate: decimal.RequireFromString("10.58"),
		TermYears:  3,
	}
	assert.NoError(t, v.Struct(&valid))

	zeroAmount := valid
	zeroAmount.LoanAmount = decimal.NewFromInt(0)
	assert.Error(t, v.Struct(&zeroAmount), "an explicit zero amount fails decimal_gt")

	missingAmount := valid
	missingAmount.LoanAmount = decimal.Decimal{}
	assert.Error(t, v.Struct(&missingAmount), "an absent amount fails required")

	zeroRate := valid
	zeroRate.AnnualRate = decimal.NewFromInt(0)
	assert.NoError(t, v.Struct(&zeroRate), "decimal_gte admits zero rates")

	negativeRate := valid
	negativeRate.AnnualRate = decimal.NewFromInt(-1)
	assert.Error(t, v.Struct(&negativeRate))

	negativeFrequency := valid
	negativeFrequency.PaymentsPerYear = -12
	assert.Error(t, v.Struct(&negativeFrequency))
}

func TestInvestmentValidationRules(t *testing.T) {
	v := newValidator()

	request := domain.NetPresentValueRequest{
		FutureValue:        decimal.RequireFromString("100000"),
		RatePerPeriod:      decimal.RequireFromString("10.58"),
		Periods:            12,
		OriginalInvestment: decimal.NewFromInt(0),
	}
	assert.NoError(t, v.Struct(&request), "a zero outlay is a legal investment")

	negative := request
	negative.OriginalInvestment = decimal.NewFromInt(-100)
	assert.Error(t, v.Struct(&negative))

	missing := request
	missing.OriginalInvestment = decimal.Decimal{}
	assert.Error(t, v.Struct(&missing), "an absent investment fails required")
}
