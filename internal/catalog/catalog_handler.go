package catalog

import (
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: s, logger: logger.Named("catalog.handler")}
}

func (h *Handler) bindQuery(c *gin.Context) (ListQuery, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query", err.Error())
		return q, false
	}
	return q, true
}

// GET /products
func (h *Handler) List(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	data, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data, meta)
}

// GET /products/search?q=
func (h *Handler) Search(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	data, meta, err := h.service.Search(c.Request.Context(), q.Q, q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data, meta)
}

// GET /products/home
func (h *Handler) Home(c *gin.Context) {
	home, err := h.service.Home(c.Request.Context())
	if err != nil {
		h.logger.Warn("home page products", zap.Error(err))
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, home, nil)
}

// GET /products/:itemNo
func (h *Handler) Detail(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("itemNo"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, nil)
}
