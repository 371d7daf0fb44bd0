package checkout

import (
	"errors"
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCheckoutNotFound = apperror.New(
		apperror.CodeNotFound,
		"Checkout session expired. Please start again",
		http.StatusNotFound,
	)

	ErrEmptyCart = apperror.New(
		apperror.CodeInvalidState,
		"Your cart is empty",
		http.StatusBadRequest,
	)

	ErrInvalidState = apperror.New(
		apperror.CodeInvalidState,
		"This checkout cannot do that right now",
		http.StatusConflict,
	)

	ErrUnknownMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown payment method",
		http.StatusBadRequest,
	)

	ErrUnknownOutcome = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown payment outcome",
		http.StatusBadRequest,
	)

	ErrInvalidDelivery = apperror.New(
		apperror.CodeValidation,
		"Please check your delivery details",
		http.StatusBadRequest,
	)

	ErrPaymentFailed = apperror.New(
		apperror.CodePaymentFailed,
		"Payment failed",
		http.StatusPaymentRequired,
	)

	ErrGatewayOrderMismatch = apperror.New(
		apperror.CodePaymentFailed,
		"Payment does not belong to this checkout",
		http.StatusPaymentRequired,
	)

	ErrGatewayUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Online payment is not available",
		http.StatusServiceUnavailable,
	)
)

var fieldMessages = map[string]string{
	"Address": "Please enter your address",
	"City":    "Please enter your city",
	"State":   "Please enter your state",
	"PinCode": "PIN code must be exactly 6 digits",
	"Phone":   "Phone number must be exactly 10 digits",
}

// MapValidationError turns the first failed field into a user-facing message.
func MapValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return ErrInvalidDelivery
	}
	if msg, ok := fieldMessages[ve[0].StructField()]; ok {
		return ErrInvalidDelivery.WithMessage(msg)
	}
	return ErrInvalidDelivery
}
