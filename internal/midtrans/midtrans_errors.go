package midtrans

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrServerKeyNotConfigured = apperror.New(
		apperror.CodeInternalError,
		"Midtrans server key is not configured",
		http.StatusServiceUnavailable,
	)

	ErrInvalidSignature = apperror.New(
		apperror.CodePaymentFailed,
		"Invalid payment signature",
		http.StatusPaymentRequired,
	)

	ErrNotPaid = apperror.New(
		apperror.CodePaymentFailed,
		"Payment has not been completed",
		http.StatusPaymentRequired,
	)

	ErrOrderMismatch = apperror.New(
		apperror.CodePaymentFailed,
		"Payment does not belong to this order",
		http.StatusPaymentRequired,
	)

	ErrAmountMismatch = apperror.New(
		apperror.CodePaymentFailed,
		"Paid amount does not match the order total",
		http.StatusPaymentRequired,
	)
)
