package customer

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes mounts the customer directory; the caller guards r by role.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("/customers")
	{
		customers.GET("", handler.List)
		customers.POST("", handler.Create)
		customers.PUT("/:id", handler.Update)
		customers.DELETE("/:id", handler.Delete)
	}
}
