package cart

import (
	"go-jewel-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.OptionalCustomer())
	{
		carts.POST("/load", handler.Load)
		carts.GET("", handler.Current)
		carts.GET("/count", handler.Count)

		carts.POST("/items", middleware.RateLimitByUser(5, 10), handler.Add)
		items := carts.Group("/items/:cartId")
		{
			items.PATCH("", handler.UpdateQuantity)
			items.DELETE("", handler.Remove)
		}
	}
}
