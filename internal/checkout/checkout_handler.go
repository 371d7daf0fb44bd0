package checkout

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

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("checkout.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkout.handler")
	}
	return &Handler{service: svc, logger: l}
}

func (h *Handler) write(c *gin.Context, status int, res Result, err error) {
	if err != nil {
		response.Fail(c, err, res, res.Notices)
		return
	}
	response.WithNotices(c, status, res, res.Notices)
}

func badBody(c *gin.Context, err error) {
	appErr := apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid request body", http.StatusBadRequest)
	httpErr := apperror.ToHTTP(appErr)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
}

// POST /checkout
func (h *Handler) Start(c *gin.Context) {
	res, err := h.service.Start(c.Request.Context(), middleware.Local(c))
	h.write(c, http.StatusCreated, res, err)
}

// GET /checkout/:id
func (h *Handler) Get(c *gin.Context) {
	res, err := h.service.Get(c.Request.Context(), middleware.Local(c), c.Param("id"))
	h.write(c, http.StatusOK, res, err)
}

// POST /checkout/:id/submit
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http checkout submit bad body", zap.Error(err))
		badBody(c, err)
		return
	}

	res, err := h.service.Submit(c.Request.Context(), middleware.Local(c), c.Param("id"), req)
	if err != nil {
		h.logger.Debug("http checkout submit failed",
			zap.String("checkout_id", c.Param("id")),
			zap.String("method", string(req.Method)),
			zap.Error(err),
		)
	}
	h.write(c, http.StatusOK, res, err)
}

// POST /checkout/:id/outcome
func (h *Handler) Outcome(c *gin.Context) {
	var req OutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	res, err := h.service.Outcome(c.Request.Context(), middleware.Local(c), c.Param("id"), req)
	h.write(c, http.StatusOK, res, err)
}
