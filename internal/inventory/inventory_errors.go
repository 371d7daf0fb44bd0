package inventory

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in stock",
		http.StatusNotFound,
	)

	ErrRateUnknown = apperror.New(
		apperror.CodeInvalidState,
		"Metal rate is not available yet; the item cannot be saved",
		http.StatusConflict,
	)

	ErrAlreadyListed = apperror.New(
		apperror.CodeConflict,
		"Item is already in inventory",
		http.StatusConflict,
	)

	ErrImageNotFound = apperror.New(
		apperror.CodeNotFound,
		"Image not found",
		http.StatusNotFound,
	)

	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please choose an image",
		http.StatusBadRequest,
	)
)
