package autherrors

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrUnknownLoginKind = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown login type",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	// ErrLoginFailed is returned when the backend accepted the login but sent no token.
	ErrLoginFailed = apperror.New(
		apperror.CodeUpstream,
		"Login failed. Please try again",
		http.StatusBadGateway,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Your session has expired, please login again",
		http.StatusUnauthorized,
	)

	ErrOTPInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid or expired OTP",
		http.StatusBadRequest,
	)

	ErrResetTokenInvalid = apperror.New(
		apperror.CodeUnauthorized,
		"Reset password link is invalid or has expired",
		http.StatusUnauthorized,
	)
)
