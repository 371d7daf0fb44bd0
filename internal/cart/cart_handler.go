package cart

import (
	"net/http"

	"go-jewel-storefront/internal/middleware"
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
	return &Handler{service: s, logger: logger.Named("cart.handler")}
}

func (h *Handler) write(c *gin.Context, status int, res Result, err error) {
	if err != nil {
		response.Fail(c, err, res, res.Notices)
		return
	}
	response.WithNotices(c, status, res, res.Notices)
}

func (h *Handler) Load(c *gin.Context) {
	res, err := h.service.Load(c.Request.Context(), middleware.Local(c))
	h.write(c, http.StatusOK, res, err)
}

func (h *Handler) Current(c *gin.Context) {
	res, err := h.service.Current(c.Request.Context(), middleware.Local(c))
	h.write(c, http.StatusOK, res, err)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("bind add request", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, ErrItemNoRequired.Message, err.Error())
		return
	}

	res, err := h.service.Add(c.Request.Context(), middleware.Local(c), req.ItemNo)
	h.write(c, http.StatusCreated, res, err)
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid quantity", err.Error())
		return
	}

	res, err := h.service.UpdateQuantity(c.Request.Context(), middleware.Local(c), c.Param("cartId"), req.Quantity)
	h.write(c, http.StatusOK, res, err)
}

func (h *Handler) Remove(c *gin.Context) {
	res, err := h.service.Remove(c.Request.Context(), middleware.Local(c), c.Param("cartId"))
	h.write(c, http.StatusOK, res, err)
}

func (h *Handler) Count(c *gin.Context) {
	res, err := h.service.Current(c.Request.Context(), middleware.Local(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": res.Count, "rows": len(res.Items)}, nil)
}
