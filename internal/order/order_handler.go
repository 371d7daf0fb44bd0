package order

import (
	"bytes"
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

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, logger: l}
}

// ==================== CUSTOMER ENDPOINTS ====================

// GET /orders
func (h *Handler) List(c *gin.Context) {
	res, err := h.service.ListMine(c.Request.Context(), middleware.Local(c))
	if err != nil {
		response.Fail(c, err, res, nil)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// GET /orders/:orderNo
func (h *Handler) Detail(c *gin.Context) {
	orderNo := c.Param("orderNo")

	o, err := h.service.Items(c.Request.Context(), middleware.Local(c), orderNo)
	if err != nil {
		h.logger.Debug("http order detail failed",
			zap.String("order_no", orderNo),
			zap.Error(err),
		)
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o, nil)
}

// ==================== ADMIN ENDPOINTS ====================

// GET /admin/orders
func (h *Handler) ListAll(c *gin.Context) {
	var f AdminFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		httpErr := apperror.ToHTTP(apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid query", http.StatusBadRequest))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	orders, meta, err := h.service.ListAll(c.Request.Context(), f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders, meta)
}

// GET /admin/orders/export
func (h *Handler) Export(c *gin.Context) {
	var f AdminFilter
	_ = c.ShouldBindQuery(&f)

	// buffered so a failed build can still answer with JSON
	var buf bytes.Buffer
	if err := h.service.ExportExcel(c.Request.Context(), f, &buf); err != nil {
		response.FromError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+ExportFilename)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, ExportContentType, buf.Bytes())
}
