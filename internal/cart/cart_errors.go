package cart

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrItemNoRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Item number is required",
		http.StatusBadRequest,
	)

	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

	ErrCartFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to update cart",
		http.StatusBadGateway,
	)
)
