package admin

import (
	"errors"
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email already in use",
		http.StatusConflict,
	)

	ErrInvalidUser = apperror.New(
		apperror.CodeValidation,
		"Please check the user details",
		http.StatusBadRequest,
	)

	ErrSelfDelete = apperror.New(
		apperror.CodeInvalidState,
		"You cannot delete your own account",
		http.StatusConflict,
	)

	ErrLastAdmin = apperror.New(
		apperror.CodeInvalidState,
		"At least one admin must remain",
		http.StatusConflict,
	)
)

var fieldMessages = map[string]string{
	"Name":     "Please enter a name",
	"Email":    "Please enter a valid email",
	"Password": "Password must be at least 8 characters",
	"Role":     "Role must be admin or staff",
}

func MapValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return ErrInvalidUser
	}
	if msg, ok := fieldMessages[ve[0].StructField()]; ok {
		return ErrInvalidUser.WithMessage(msg)
	}
	return ErrInvalidUser
}
