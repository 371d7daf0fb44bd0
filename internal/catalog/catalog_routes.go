package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/search", handler.Search)
		products.GET("/home", handler.Home)
		products.GET("/:itemNo", handler.Detail)
	}
}
