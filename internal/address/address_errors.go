package address

import (
	"errors"
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)

	ErrInvalidAddress = apperror.New(
		apperror.CodeValidation,
		"Please check the address details",
		http.StatusBadRequest,
	)
)

var fieldMessages = map[string]string{
	"Name":    "Please enter a name",
	"Phone":   "Phone number must be exactly 10 digits",
	"Address": "Please enter your address",
	"City":    "Please enter your city",
	"State":   "Please enter your state",
	"PinCode": "PIN code must be exactly 6 digits",
}

func MapValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return ErrInvalidAddress
	}
	if msg, ok := fieldMessages[ve[0].StructField()]; ok {
		return ErrInvalidAddress.WithMessage(msg)
	}
	return ErrInvalidAddress
}
