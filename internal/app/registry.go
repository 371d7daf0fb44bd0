package app

import (
	"go-jewel-storefront/internal/address"
	"go-jewel-storefront/internal/admin"
	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/auth"
	"go-jewel-storefront/internal/cart"
	"go-jewel-storefront/internal/catalog"
	"go-jewel-storefront/internal/checkout"
	"go-jewel-storefront/internal/config"
	"go-jewel-storefront/internal/content"
	"go-jewel-storefront/internal/customer"
	"go-jewel-storefront/internal/inventory"
	"go-jewel-storefront/internal/livefeed"
	"go-jewel-storefront/internal/middleware"
	"go-jewel-storefront/internal/midtrans"
	"go-jewel-storefront/internal/order"
	"go-jewel-storefront/internal/payment"
	"go-jewel-storefront/internal/pricing"
	"go-jewel-storefront/internal/storefront"
	"go-jewel-storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newGateway(cfg config.Config, api apiclient.API, orders order.Service, logger *zap.Logger) payment.Gateway {
	if cfg.PaymentGateway == "midtrans" {
		return midtrans.NewGateway(midtrans.Config{
			ServerKey:    cfg.MidtransServerKey,
			ClientKey:    cfg.MidtransClientKey,
			IsProduction: cfg.MidtransIsProduction,
		}, midtrans.Deps{Orders: orders, Logger: logger})
	}
	return payment.NewBackendGateway(api, cfg.PaymentKeyID)
}

func registerModules(router *gin.Engine, infra *Infra) {
	cfg, logger, api := infra.Config, infra.Logger, infra.API

	mediaBase := cfg.MediaBaseURL
	if mediaBase == "" {
		mediaBase = apiclient.MediaBase(api.BaseURL())
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(api)
	cartRepo := cart.NewRepository(api)
	wishlistRepo := wishlist.NewRepository(api)
	catalogRepo := catalog.NewRepository(api)
	addressRepo := address.NewRepository(api)
	orderRepo := order.NewRepository(api)
	customerRepo := customer.NewRepository(api)
	adminRepo := admin.NewRepository(api)
	inventoryRepo := inventory.NewRepository(api)

	var contentRepo content.Repository = content.NewRepository(api, api)
	if infra.Images != nil {
		contentRepo = content.WithCloudinary(contentRepo, infra.Images)
	}

	// --- Services ---
	authService := auth.NewService(authRepo, logger.Named("auth"))
	cartService := cart.NewService(cart.Deps{Repo: cartRepo, Logger: logger.Named("cart")})
	wishlistService := wishlist.NewService(wishlistRepo, logger.Named("wishlist"))
	storefrontService := storefront.NewService(cartService, wishlistService, logger.Named("storefront"))
	catalogService := catalog.NewService(catalogRepo, infra.Store, logger.Named("catalog"))
	addressService := address.NewService(addressRepo, logger.Named("address"))
	orderService := order.NewService(orderRepo, logger.Named("order"))
	customerService := customer.NewService(customerRepo, logger.Named("customer"))
	adminService := admin.NewService(adminRepo, logger.Named("admin"))
	contentService := content.NewService(content.Deps{
		Repo:      contentRepo,
		MediaBase: mediaBase,
		TTL:       cfg.ContentTTL,
		Logger:    logger.Named("content"),
	})
	inventoryService := inventory.NewService(inventory.Deps{
		Repo:    inventoryRepo,
		Catalog: catalogRepo,
		Rates:   pricing.NewRateLookup(api, logger.Named("rates")),
		Images:  infra.Images,
		Logger:  logger.Named("inventory"),
	})

	hub := livefeed.NewHub(cfg.CORSOrigins, logger.Named("livefeed"))

	checkoutDeps := checkout.Deps{
		Cart:    cartService,
		Orders:  orderService,
		Gateway: newGateway(cfg, api, orderService, logger.Named("payment")),
		Feed:    hub,
		Logger:  logger.Named("checkout"),
	}
	if infra.Events != nil {
		checkoutDeps.Events = infra.Events
	}
	checkoutService := checkout.NewService(checkoutDeps)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	cartHandler := cart.NewHandler(cartService, logger)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	storefrontHandler := storefront.NewHandler(storefrontService)
	catalogHandler := catalog.NewHandler(catalogService, logger)
	addressHandler := address.NewHandler(addressService, logger)
	orderHandler := order.NewHandler(orderService, logger)
	checkoutHandler := checkout.NewHandler(checkoutService, logger)
	contentHandler := content.NewHandler(contentService, logger)
	customerHandler := customer.NewHandler(customerService)
	adminHandler := admin.NewHandler(adminService)
	inventoryHandler := inventory.NewHandler(inventoryService, logger)

	// --- Routes Registration ---
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, authHandler)
		storefront.RegisterRoutes(v1, storefrontHandler)
		catalog.RegisterRoutes(v1, catalogHandler)
		content.RegisterRoutes(v1, contentHandler)
		cart.RegisterRoutes(v1, cartHandler)
		wishlist.RegisterRoutes(v1, wishlistHandler)
		address.RegisterRoutes(v1, addressHandler)
		order.RegisterRoutes(v1, orderHandler)
		checkout.RegisterRoutes(v1, checkoutHandler, middleware.Idempotency(infra.Store, cfg.IdempotencyTTL))
	}

	staff := v1.Group("/admin")
	staff.Use(middleware.RoleMiddleware(admin.RoleAdmin, admin.RoleStaff))
	{
		order.RegisterAdminRoutes(staff, orderHandler)
		content.RegisterAdminRoutes(staff, contentHandler)
		inventory.RegisterRoutes(staff, inventoryHandler)
		customer.RegisterAdminRoutes(staff, customerHandler)
		staff.GET("/live", hub.Serve)
	}

	owners := staff.Group("")
	owners.Use(middleware.RoleMiddleware(admin.RoleAdmin))
	admin.RegisterRoutes(owners, adminHandler)
}
