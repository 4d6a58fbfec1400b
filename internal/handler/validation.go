package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator registers the decimal comparison rules used by the request
// DTO validate tags.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("decimal_gt", decimalGreaterThan)
	_ = v.RegisterValidation("decimal_gte", decimalGreaterThanOrEqual)
	return v
}

func decimalGreaterThan(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}

	return value.GreaterThan(bound)
}

func decimalGreaterThanOrEqual(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}

	return value.GreaterThanOrEqual(bound)
}
