package response

import (
	"math"
	"net/http"
	"strings"
	"time"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type APIResponse struct {
	Success       bool         `json:"success"`
	Data          interface{}  `json:"data"`
	Meta          interface{}  `json:"meta,omitempty"`
	Notifications notify.List  `json:"notifications,omitempty"`
	Error         *ErrorDetail `json:"error"`
	Message       string       `json:"message"`
	RequestID     string       `json:"requestId"`
	Timestamp     string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// Success untuk data tunggal
func Success(c *gin.Context, status int, data interface{}, meta interface{}) {
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Meta:      meta,
		RequestID: c.GetString("X-Request-ID"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// WithNotices writes a successful response carrying the notices raised by the action.
func WithNotices(c *gin.Context, status int, data interface{}, notices notify.List) {
	c.JSON(status, APIResponse{
		Success:       true,
		Data:          data,
		Notifications: notices,
		RequestID:     c.GetString("X-Request-ID"),
		Timestamp:     time.Now().Format(time.RFC3339),
	})
}

// Error untuk response gagal
func Error(c *gin.Context, status int, errCode string, message string, details interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		Message:   message,
		RequestID: c.GetString("X-Request-ID"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Fail maps err through apperror and still returns the current state and notices,
// so the client can redraw without a follow-up fetch.
func Fail(c *gin.Context, err error, data interface{}, notices notify.List) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, APIResponse{
		Success:       false,
		Data:          data,
		Notifications: notices,
		Error: &ErrorDetail{
			Code:    httpErr.Code,
			Message: httpErr.Message,
			Details: loginRedirect(c, httpErr),
		},
		Message:   httpErr.Message,
		RequestID: c.GetString("X-Request-ID"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// FromError is Fail without state.
func FromError(c *gin.Context, err error) {
	Fail(c, err, nil, nil)
}

// loginRedirect tells the SPA to go to the login page after the backend
// rejected its token, unless it is already on a login or admin screen.
func loginRedirect(c *gin.Context, httpErr *apperror.HTTPError) interface{} {
	if httpErr.Status != http.StatusUnauthorized || httpErr.Code != apperror.CodeUnauthorized {
		return nil
	}
	route := c.GetHeader("X-Client-Route")
	if strings.HasPrefix(route, "/login") || strings.HasPrefix(route, "/admin") {
		return nil
	}
	return gin.H{"redirect": "/login"}
}

func NewPaginationMeta(total int64, page, limit int) Pagination {
	if limit <= 0 {
		limit = 10
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		Page:            page,
		PageSize:        limit,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
