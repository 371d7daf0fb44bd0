package wishlist

import (
	"go-jewel-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	wishlists.Use(middleware.OptionalCustomer())
	{
		wishlists.POST("/load", handler.Load)
		wishlists.GET("",
			middleware.RateLimitByUser(5, 10),
			handler.List,
		)

		// toggling twice quickly would undo itself
		wishlists.POST("/toggle",
			middleware.RateLimitByUser(1, 3),
			handler.Toggle,
		)
	}
}
