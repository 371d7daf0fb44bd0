package auth

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

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

func badRequest(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
}

func (h *Handler) writeState(c *gin.Context, st State, err error) {
	if err != nil {
		response.Fail(c, err, st, st.Notices)
		return
	}
	response.WithNotices(c, http.StatusOK, st, st.Notices)
}

func (h *Handler) writeAction(c *gin.Context, status int, res ActionStatusResponse, err error) {
	if err != nil {
		response.Fail(c, err, res, res.Notices)
		return
	}
	response.WithNotices(c, status, res, res.Notices)
}

// GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	st, err := h.service.Restore(c.Request.Context(), middleware.Local(c))
	h.writeState(c, st, err)
}

func (h *Handler) login(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		st, err := h.service.Login(c.Request.Context(), middleware.Local(c), kind, req)
		if err != nil {
			h.logger.Info("http login failed", zap.String("kind", string(kind)), zap.Error(err))
		}
		h.writeState(c, st, err)
	}
}

// POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	st, err := h.service.Logout(c.Request.Context(), middleware.Local(c))
	h.writeState(c, st, err)
}

// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register validation failed", zap.Error(err))
		badRequest(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	h.writeAction(c, http.StatusCreated, res, err)
}

// POST /auth/verify-otp
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.service.VerifyOTP(c.Request.Context(), middleware.Local(c), req)
	h.writeState(c, st, err)
}

// POST /auth/forgot-password
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.ForgotPassword(c.Request.Context(), req)
	h.writeAction(c, http.StatusOK, res, err)
}

// POST /auth/reset-password
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.ResetPassword(c.Request.Context(), req)
	h.writeAction(c, http.StatusOK, res, err)
}
