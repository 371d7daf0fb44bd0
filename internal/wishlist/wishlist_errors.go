package wishlist

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Item number or lot number is required",
		http.StatusBadRequest,
	)

	ErrWishlistFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to process wishlist operation",
		http.StatusBadGateway,
	)
)
