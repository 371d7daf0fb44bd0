package inventory

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the inventory screens; the caller guards r by role.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	inv := r.Group("/inventory")
	{
		inv.GET("/products", handler.List)
		inv.POST("/products", handler.Add)
		inv.DELETE("/products/:itemNo", handler.Delete)
		inv.GET("/fetch/:itemNo", handler.FetchByItemNo)
		inv.POST("/preview", handler.Preview)

		inv.POST("/images", handler.UploadImage)
		inv.GET("/images/:id", handler.Image)
		inv.DELETE("/images/:id", handler.DeleteImage)
	}
}
