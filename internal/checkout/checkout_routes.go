package checkout

import (
	"go-jewel-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts checkout. idempotency guards submit against double clicks.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	co := r.Group("/checkout")
	co.Use(middleware.RequireCustomer())
	{
		co.POST("", handler.Start)
		co.GET("/:id", handler.Get)
		co.POST("/:id/submit", idempotency, handler.Submit)
		co.POST("/:id/outcome", handler.Outcome)
	}
}
