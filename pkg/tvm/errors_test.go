package tvm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorUnwrap(t *testing.T) {
	err := WrapInvalidPaymentFrequency(0)

	assert.True(t, errors.Is(err, ErrInvalidPaymentFrequency))
	assert.Equal(t, ErrCodeInvalidPaymentFrequency, err.Code)
	assert.Contains(t, err.Error(), ErrCodeInvalidPaymentFrequency)
	assert.Contains(t, err.Error(), "got 0")
}

func TestDomainErrorWithoutCause(t *testing.T) {
	err := NewDomainError("SOME_CODE", "something went wrong", nil)

	assert.Equal(t, "SOME_CODE: something went wrong", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestIndexErrorUnwrap(t *testing.T) {
	err := WrapPeriodOutOfRange(37, 36)

	assert.True(t, errors.Is(err, ErrPeriodOutOfRange))
	assert.Equal(t, ErrCodePeriodOutOfRange, err.Code)
	assert.Contains(t, err.Error(), "period 37")
	assert.Contains(t, err.Error(), "1..36")
}

func TestErrorClassesAreDistinct(t *testing.T) {
	var domainErr *DomainError
	var indexErr *IndexError

	assert.True(t, errors.As(WrapDegenerateGrowth(), &domainErr))
	assert.False(t, errors.As(WrapDegenerateGrowth(), &indexErr))

	assert.True(t, errors.As(WrapPeriodOutOfRange(0, 36), &indexErr))
	assert.False(t, errors.As(WrapPeriodOutOfRange(0, 36), &domainErr))
}
