package order

import (
	"go-jewel-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireCustomer())
	{
		orders.GET("", handler.List)
		orders.GET("/:orderNo", handler.Detail)
	}
}

// RegisterAdminRoutes expects r to already carry the role guard.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	{
		orders.GET("", handler.ListAll)
		orders.GET("/export", handler.Export)
	}
}
