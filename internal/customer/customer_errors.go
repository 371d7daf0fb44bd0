package customer

import (
	"errors"
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrInvalidCustomer = apperror.New(
		apperror.CodeValidation,
		"Please check the customer details",
		http.StatusBadRequest,
	)
)

var fieldMessages = map[string]string{
	"Name":  "Please enter a name",
	"Email": "Please enter a valid email",
	"Phone": "Phone number must be exactly 10 digits",
}

func MapValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return ErrInvalidCustomer
	}
	if msg, ok := fieldMessages[ve[0].StructField()]; ok {
		return ErrInvalidCustomer.WithMessage(msg)
	}
	return ErrInvalidCustomer
}
