package inventory

import (
	"net/http"

	"go-jewel-storefront/internal/catalog"
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
	return &Handler{service: s, logger: logger.Named("inventory.handler")}
}

// GET /admin/inventory/products
func (h *Handler) List(c *gin.Context) {
	var q catalog.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query", err.Error())
		return
	}
	products, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products, gin.H{"total": len(products)})
}

// GET /admin/inventory/fetch/:itemNo
func (h *Handler) FetchByItemNo(c *gin.Context) {
	rec, err := h.service.FetchByItemNo(c.Request.Context(), c.Param("itemNo"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, nil)
}

// POST /admin/inventory/preview
func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Metal and purity are required", err.Error())
		return
	}
	response.Success(c, http.StatusOK, h.service.PricePreview(c.Request.Context(), req), nil)
}

// POST /admin/inventory/products
func (h *Handler) Add(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}
	preview, err := h.service.AddToInventory(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err, preview, nil)
		return
	}
	response.Success(c, http.StatusCreated, preview, nil)
}

// DELETE /admin/inventory/products/:itemNo
func (h *Handler) Delete(c *gin.Context) {
	itemNo := c.Param("itemNo")
	if err := h.service.Delete(c.Request.Context(), itemNo); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"itemNo": itemNo}, nil)
}

// POST /admin/inventory/images (multipart field "image")
func (h *Handler) UploadImage(c *gin.Context) {
	file, hdr, err := c.Request.FormFile("image")
	if err != nil {
		response.FromError(c, ErrFileRequired)
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(c.Request.Context(), hdr.Filename, file)
	if err != nil {
		h.logger.Warn("upload product image", zap.String("filename", hdr.Filename), zap.Error(err))
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, nil)
}

// GET /admin/inventory/images/:id
func (h *Handler) Image(c *gin.Context) {
	img, err := h.service.Image(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

// DELETE /admin/inventory/images/:id
func (h *Handler) DeleteImage(c *gin.Context) {
	if err := h.service.DeleteImage(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")}, nil)
}
