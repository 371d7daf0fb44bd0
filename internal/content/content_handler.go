package content

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
	return &Handler{service: s, logger: logger.Named("content.handler")}
}

// GET /content
func (h *Handler) Get(c *gin.Context) {
	res := h.service.Get(c.Request.Context())
	c.Header("X-Content-Source", string(res.Source))
	response.Success(c, http.StatusOK, res, nil)
}

// GET /content/media?path=
func (h *Handler) Media(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "path is required", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"url": h.service.MediaURL(path)}, nil)
}

// PUT /admin/content
func (h *Handler) Update(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid content document", err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), doc)
	if err != nil {
		h.logger.Warn("http update content failed", zap.Error(err))
		response.Fail(c, err, res, res.Notices)
		return
	}
	response.WithNotices(c, http.StatusOK, res, res.Notices)
}

// POST /admin/content/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.FromError(c, ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.FromError(c, apperror.Wrap(err, apperror.CodeInvalidInput, "Could not read the uploaded file", http.StatusBadRequest))
		return
	}
	defer file.Close()

	res, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.Fail(c, err, nil, res.Notices)
		return
	}
	response.WithNotices(c, http.StatusCreated, res, res.Notices)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	contents := r.Group("/content")
	{
		contents.GET("", handler.Get)
		contents.GET("/media", handler.Media)
	}
}

// RegisterAdminRoutes expects admin to already carry the staff role guard.
func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler) {
	contents := admin.Group("/content")
	{
		contents.PUT("", handler.Update)
		contents.POST("/upload", handler.Upload)
	}
}
