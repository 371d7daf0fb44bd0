package address

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
	return &Handler{service: s, logger: logger.Named("address.handler")}
}

func (ctrl *Handler) write(c *gin.Context, status int, res Result, err error) {
	if err != nil {
		response.Fail(c, err, res, res.Notices)
		return
	}
	response.WithNotices(c, status, res, res.Notices)
}

func (ctrl *Handler) bind(c *gin.Context) (Request, bool) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.logger.Debug("bind address request", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return req, false
	}
	return req, true
}

// GET /addresses
func (ctrl *Handler) List(c *gin.Context) {
	res, err := ctrl.service.List(c.Request.Context(), middleware.Local(c))
	ctrl.write(c, http.StatusOK, res, err)
}

// POST /addresses
func (ctrl *Handler) Create(c *gin.Context) {
	req, ok := ctrl.bind(c)
	if !ok {
		return
	}
	res, err := ctrl.service.Create(c.Request.Context(), middleware.Local(c), req)
	ctrl.write(c, http.StatusCreated, res, err)
}

// PUT /addresses/:id
func (ctrl *Handler) Update(c *gin.Context) {
	req, ok := ctrl.bind(c)
	if !ok {
		return
	}
	res, err := ctrl.service.Update(c.Request.Context(), middleware.Local(c), c.Param("id"), req)
	ctrl.write(c, http.StatusOK, res, err)
}

// DELETE /addresses/:id
func (ctrl *Handler) Delete(c *gin.Context) {
	res, err := ctrl.service.Delete(c.Request.Context(), middleware.Local(c), c.Param("id"))
	ctrl.write(c, http.StatusOK, res, err)
}

// PUT /addresses/:id/default
func (ctrl *Handler) SetDefault(c *gin.Context) {
	res, err := ctrl.service.SetDefault(c.Request.Context(), middleware.Local(c), c.Param("id"))
	ctrl.write(c, http.StatusOK, res, err)
}
