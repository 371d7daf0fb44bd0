// Package validation builds the validator shared by request DTOs.
package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the storefront's extra tags registered:
//
//	digits=N  exactly N ASCII digits
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("digits", digits)
	return v
}

func digits(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	s := fl.Field().String()
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
