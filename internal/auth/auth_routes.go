package auth

import (
	"go-jewel-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// called on every app boot
		auth.GET("/me",
			middleware.RateLimitByUser(5, 10),
			handler.Me,
		)

		// 1 request per 10 seconds against password guessing
		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.login(KindCustomer),
		)
		auth.POST("/staff/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.login(KindStaff),
		)

		auth.POST("/logout",
			middleware.RateLimitByUser(1, 2),
			handler.Logout,
		)

		auth.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)
		auth.POST("/verify-otp",
			middleware.RateLimitByIP(0.2, 3),
			handler.VerifyOTP,
		)
		auth.POST("/forgot-password",
			middleware.RateLimitByIP(0.05, 1),
			handler.ForgotPassword,
		)
		auth.POST("/reset-password",
			middleware.RateLimitByIP(0.1, 2),
			handler.ResetPassword,
		)
	}
}
