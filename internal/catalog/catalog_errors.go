package catalog

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrItemNoRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Item number is required",
		http.StatusBadRequest,
	)
)
