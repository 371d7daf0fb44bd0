package storefront

import (
	"net/http"

	"go-jewel-storefront/internal/middleware"
	"go-jewel-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// POST /storefront/load
func (h *Handler) Load(c *gin.Context) {
	st, err := h.service.Load(c.Request.Context(), middleware.Local(c))
	if err != nil {
		response.Fail(c, err, st, st.Notices)
		return
	}
	response.WithNotices(c, http.StatusOK, st, st.Notices)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/storefront/load", handler.Load)
}
