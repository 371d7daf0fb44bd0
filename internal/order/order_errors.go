package order

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to place order",
		http.StatusBadGateway,
	)

	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to build the export",
		http.StatusInternalServerError,
	)
)
