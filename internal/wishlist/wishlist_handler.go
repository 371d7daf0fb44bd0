package wishlist

import (
	"net/http"

	"go-jewel-storefront/internal/middleware"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

func (h *Handler) write(c *gin.Context, res Result, err error) {
	if err != nil {
		response.Fail(c, err, res, res.Notices)
		return
	}
	response.WithNotices(c, http.StatusOK, res, res.Notices)
}

// POST /wishlist/load
func (h *Handler) Load(c *gin.Context) {
	res, err := h.service.Load(c.Request.Context(), middleware.Local(c))
	h.write(c, res, err)
}

// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context(), middleware.Local(c))
	h.write(c, res, err)
}

// POST /wishlist/toggle
func (h *Handler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(
			err,
			apperror.CodeInvalidInput,
			"Invalid request body",
			http.StatusBadRequest,
		)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	res, err := h.service.Toggle(c.Request.Context(), middleware.Local(c), req)
	h.write(c, res, err)
}
