// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/domain/cart"
	"github.com/amanat-silver/storefront-backend/internal/domain/checkout"
	"github.com/amanat-silver/storefront-backend/internal/domain/enquiry"
	"github.com/amanat-silver/storefront-backend/internal/interfaces/http/handlers"
	"github.com/amanat-silver/storefront-backend/internal/interfaces/http/middleware"
	"github.com/amanat-silver/storefront-backend/internal/pkg/whatsapp"
)

// SetupRoutes wires every API route onto the given group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	// Shared collaborators
	carts := cart.NewManager(redisClient, cfg, logger)
	whatsappService := whatsapp.NewService(cfg)

	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(carts, cfg)
	enquiryHandler := handlers.NewEnquiryHandler(
		enquiry.NewService(db, redisClient, whatsappService, cfg, logger), cfg)
	checkoutHandler := handlers.NewCheckoutHandler(
		checkout.NewService(db, whatsappService, cfg, logger), carts, cfg)
	authHandler := handlers.NewAuthHandler(db, cfg)

	// Public storefront
	rg.GET("/homepage", catalogHandler.GetHomepage)

	collections := rg.Group("/collections")
	{
		collections.GET("", catalogHandler.GetCollections)
		collections.GET("/slug/:slug", catalogHandler.GetCollectionBySlug)
	}

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/featured", catalogHandler.GetFeaturedProducts)
		products.GET("/slug/:slug", catalogHandler.GetProductBySlug)
	}

	// Cart routes work with anonymous cookie sessions
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.GET("/quote", cartHandler.GetCartQuote)
	}

	rg.POST("/enquiry", enquiryHandler.Submit)
	rg.POST("/checkout", checkoutHandler.Submit)

	// Admin authentication
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}

	// Admin content management
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/products", catalogHandler.CreateProduct)
		admin.PUT("/products/:id", catalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

		admin.POST("/collections", catalogHandler.CreateCollection)
		admin.PUT("/collections/:id", catalogHandler.UpdateCollection)
		admin.DELETE("/collections/:id", catalogHandler.DeleteCollection)

		admin.PUT("/homepage", catalogHandler.UpdateHomepage)

		admin.GET("/enquiries", enquiryHandler.List)
		admin.GET("/orders", checkoutHandler.ListOrders)
	}
}
