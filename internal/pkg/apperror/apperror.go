package apperror

import "fmt"

const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeUpstream         = "UPSTREAM_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeSessionRequired  = "SESSION_REQUIRED"
	CodeInvalidState     = "INVALID_STATE"
	CodePaymentCancelled = "PAYMENT_CANCELLED"
	CodePaymentFailed    = "PAYMENT_FAILED"
)

// AppError carries a stable code and the HTTP status the BFF answers with.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, status int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

func Wrap(err error, code, message string, status int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
		Err:        err,
	}
}

// WithMessage returns a copy of e carrying a different user-facing message.
// The copy unwraps to e, so errors.Is still matches the sentinel.
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    message,
		HTTPStatus: e.HTTPStatus,
		Err:        e,
	}
}
