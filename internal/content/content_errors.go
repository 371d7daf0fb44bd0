package content

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrUploadFailed = apperror.New(
		apperror.CodeUpstream,
		"Upload failed. Please try again",
		http.StatusBadGateway,
	)

	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A file is required",
		http.StatusBadRequest,
	)

	ErrEmptyDocument = apperror.New(
		apperror.CodeInvalidInput,
		"Content document cannot be empty",
		http.StatusBadRequest,
	)
)
