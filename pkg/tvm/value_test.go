package tvm

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentValue(t *testing.T) {
	tests := []struct {
		name          string
		futureValue   string
		ratePerPeriod string
		periods       int
		expected      string
	}{
		{
			name:          "discounted over twelve periods",
			futureValue:   "100000",
			ratePerPeriod: "10.58",
			periods:       12,
			expected:      "29914.45",
		},
		{
			name:          "discounted over ten periods",
			futureValue:   "16470.09",
			ratePerPeriod: "5",
			periods:       10,
			expected:      "10111.21",
		},
		{
			name:          "zero periods returns the future value",
			futureValue:   "2500",
			ratePerPeriod: "5",
			periods:       0,
			expected:      "2500.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PresentValue(
				decimal.RequireFromString(tt.futureValue),
				decimal.RequireFromString(tt.ratePerPeriod),
				tt.periods,
			)
			require.NoError(t, err)
			assertDecimal(t, tt.expected, result)
		})
	}
}

func TestPresentValueDiscountsBelowFutureValue(t *testing.T) {
	futureValue := decimal.RequireFromString("100000")

	result, err := PresentValue(futureValue, decimal.RequireFromString("10.58"), 12)
	require.NoError(t, err)
	assert.True(t, result.LessThan(futureValue),
		"present value %s should be below the future value %s", result, futureValue)
}

func TestPresentValueErrors(t *testing.T) {
	tests := []struct {
		name          string
		futureValue   string
		ratePerPeriod string
		periods       int
		wantErr       error
	}{
		{
			name:          "negative periods",
			futureValue:   "100000",
			ratePerPeriod: "10.58",
			periods:       -1,
			wantErr:       ErrNegativePeriods,
		},
		{
			name:          "full negative rate zeroes the discount factor",
			futureValue:   "100000",
			ratePerPeriod: "-100",
			periods:       3,
			wantErr:       ErrDegenerateGrowth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PresentValue(
				decimal.RequireFromString(tt.futureValue),
				decimal.RequireFromString(tt.ratePerPeriod),
				tt.periods,
			)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "Expected %v, but got %v", tt.wantErr, err)

			var domainErr *DomainError
			assert.True(t, errors.As(err, &domainErr), "expected a DomainError, got %T", err)
			assert.True(t, result.IsZero())
		})
	}
}

func TestNetPresentValue(t *testing.T) {
	futureValue := decimal.RequireFromString("100000")
	rate := decimal.RequireFromString("10.58")
	investment := decimal.RequireFromString("80000")

	result, err := NetPresentValue(futureValue, rate, 12, investment)
	require.NoError(t, err)
	assertDecimal(t, "-50085.55", result)
}

func TestNetPresentValueMatchesPresentValue(t *testing.T) {
	futureValue := decimal.RequireFromString("100000")
	rate := decimal.RequireFromString("10.58")
	investment := decimal.RequireFromString("80000")

	presentValue, err := PresentValue(futureValue, rate, 12)
	require.NoError(t, err)

	netPresentValue, err := NetPresentValue(futureValue, rate, 12, investment)
	require.NoError(t, err)

	// The subtraction introduces no rounding of its own.
	assert.True(t, netPresentValue.Equal(presentValue.Sub(investment)),
		"Expected %s, but got %s", presentValue.Sub(investment), netPresentValue)
}

func TestNetPresentValuePropagatesErrors(t *testing.T) {
	result, err := NetPresentValue(
		decimal.RequireFromString("100000"),
		decimal.RequireFromString("10.58"),
		-3,
		decimal.RequireFromString("80000"),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativePeriods))
	assert.True(t, result.IsZero())
}
