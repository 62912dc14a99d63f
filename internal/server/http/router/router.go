package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/server/http/handlers"
	"github.com/shopworks/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	cookies := middleware.CookieOptions{
		AccessMaxAge:  int(cfg.AccessTokenTTL.Seconds()),
		RefreshMaxAge: int(cfg.RefreshTokenTTL.Seconds()),
		Secure:        cfg.IsProduction(),
	}

	authHandler := handlers.NewAuthHandler(facade, cookies, logger)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh-token", authHandler.Refresh)

	products := api.Group("/products")
	products.GET("/featured", productHandler.Featured)
	products.GET("/category/:category", productHandler.ByCategory)
	products.GET("/recommended", productHandler.Recommended)

	admin := products.Group("")
	admin.Use(middleware.RequireSession(facade), middleware.RequireRole(model.RoleAdmin))
	admin.GET("", productHandler.List)
	admin.POST("", productHandler.Create)
	admin.DELETE("/:id", productHandler.Delete)

	cart := api.Group("/cart")
	cart.Use(middleware.RequireSession(facade))
	cart.GET("", cartHandler.Items)
	cart.POST("", cartHandler.Add)
	cart.DELETE("", cartHandler.Remove)
	cart.PUT("/:id", cartHandler.UpdateQuantity)

	return engine
}
