package tvm

import (
	"errors"
	"fmt"
)

// Formula errors
var (
	ErrInvalidPaymentFrequency = errors.New("payments per year must be positive")
	ErrInvalidPeriodCount      = errors.New("period count must be positive")
	ErrNegativePeriods         = errors.New("periods must not be negative")
	ErrDegenerateGrowth        = errors.New("growth factor leaves the formula undefined")
	ErrPeriodOutOfRange        = errors.New("period is outside the schedule bounds")
)

// DomainError represents a parameter combination that makes a formula undefined
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IndexError represents a period lookup outside the generated schedule
type IndexError struct {
	Code    string
	Message string
	Err     error
}

func (e *IndexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// NewIndexError creates a new index error
func NewIndexError(code, message string, err error) *IndexError {
	return &IndexError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidPaymentFrequency = "INVALID_PAYMENT_FREQUENCY"
	ErrCodeInvalidPeriodCount      = "INVALID_PERIOD_COUNT"
	ErrCodeNegativePeriods         = "NEGATIVE_PERIODS"
	ErrCodeDegenerateGrowth        = "DEGENERATE_GROWTH"
	ErrCodePeriodOutOfRange        = "PERIOD_OUT_OF_RANGE"
)

// Wrap common errors with formula context
func WrapInvalidPaymentFrequency(paymentsPerYear int) *DomainError {
	return NewDomainError(
		ErrCodeInvalidPaymentFrequency,
		fmt.Sprintf("payments per year must be at least 1, got %d", paymentsPerYear),
		ErrInvalidPaymentFrequency,
	)
}

func WrapInvalidPeriodCount(periods int) *DomainError {
	return NewDomainError(
		ErrCodeInvalidPeriodCount,
		fmt.Sprintf("schedule requires at least 1 period, got %d", periods),
		ErrInvalidPeriodCount,
	)
}

func WrapPeriodCountOverflow(termYears, periodsPerYear int) *DomainError {
	return NewDomainError(
		ErrCodeInvalidPeriodCount,
		fmt.Sprintf("term of %d years at %d periods per year exceeds the representable period count", termYears, periodsPerYear),
		ErrInvalidPeriodCount,
	)
}

func WrapNegativePeriods(periods int) *DomainError {
	return NewDomainError(
		ErrCodeNegativePeriods,
		fmt.Sprintf("periods must not be negative, got %d", periods),
		ErrNegativePeriods,
	)
}

func WrapDegenerateGrowth() *DomainError {
	return NewDomainError(
		ErrCodeDegenerateGrowth,
		"growth factor of 1 leaves the payment formula undefined (zero rate)",
		ErrDegenerateGrowth,
	)
}

func WrapZeroDiscount() *DomainError {
	return NewDomainError(
		ErrCodeDegenerateGrowth,
		"discount factor of 0 leaves present value undefined (rate of -100%)",
		ErrDegenerateGrowth,
	)
}

func WrapPeriodOutOfRange(period, scheduleLen int) *IndexError {
	return NewIndexError(
		ErrCodePeriodOutOfRange,
		fmt.Sprintf("period %d is outside the schedule bounds 1..%d", period, scheduleLen),
		ErrPeriodOutOfRange,
	)
}
