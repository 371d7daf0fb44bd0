package address

import (
	"go-jewel-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	address := r.Group("/addresses")
	address.Use(middleware.RequireCustomer())
	{
		address.GET("", handler.List)
		address.POST("", handler.Create)
		address.PUT("/:id", handler.Update)
		address.DELETE("/:id", handler.Delete)
		address.PUT("/:id/default", handler.SetDefault)
	}
}
