// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stefanninkovic/carunity/internal/config"
	"github.com/stefanninkovic/carunity/internal/handlers"
	"github.com/stefanninkovic/carunity/internal/middleware"
	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/store"
	"github.com/stefanninkovic/carunity/internal/utils"
)

func Initialize(stores *store.Stores, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(stores.Users, cfg)
	carService := services.NewCarService(stores.Cars)
	wheelService := services.NewWheelService(stores.Wheels)
	followService := services.NewFollowService(stores.Follows, stores.Users)
	feedService := services.NewFeedService(stores.Cars, stores.Wheels, stores.Follows, stores.Users)
	reportService := services.NewReportService(stores.Reports)
	lookupService := services.NewLookupService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	carHandler := handlers.NewCarHandler(carService, authService)
	wheelHandler := handlers.NewWheelHandler(wheelService, authService)
	userHandler := handlers.NewUserHandler(authService, carService, wheelService)
	followHandler := handlers.NewFollowHandler(followService)
	feedHandler := handlers.NewFeedHandler(feedService)
	reportHandler := handlers.NewReportHandler(reportService)
	lookupHandler := handlers.NewLookupHandler(lookupService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
			auth.PUT("/profile", middleware.AuthRequired(), authHandler.UpdateProfile)
		}

		// User routes (public profiles)
		users := v1.Group("/users")
		{
			users.GET("/:userId", userHandler.GetUser)
			users.GET("/:userId/offers", userHandler.GetUserOffers)
			users.GET("/:userId/wheels", userHandler.GetUserWheels)
		}

		// Offer routes
		offers := v1.Group("/offers")
		{
			offers.GET("", carHandler.GetOffers)
			offers.GET("/featured", carHandler.GetFeaturedOffers)
			offers.GET("/:id", middleware.OptionalAuth(), carHandler.GetOffer)

			// Authenticated routes
			protected := offers.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", carHandler.CreateOffer)
				protected.PUT("/:id", carHandler.UpdateOffer)
				protected.DELETE("/:id", carHandler.DeleteOffer)
			}
		}
		v1.GET("/my/offers", middleware.AuthRequired(), carHandler.GetMyOffers)

		// Wheel routes
		wheels := v1.Group("/wheels")
		{
			wheels.GET("", wheelHandler.GetWheels)
			wheels.GET("/:id", middleware.OptionalAuth(), wheelHandler.GetWheel)

			// Authenticated routes
			protected := wheels.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", wheelHandler.CreateWheel)
				protected.PUT("/:id", wheelHandler.UpdateWheel)
				protected.DELETE("/:id", wheelHandler.DeleteWheel)
			}
		}
		v1.GET("/my/wheels", middleware.AuthRequired(), wheelHandler.GetMyWheels)

		// Follow routes
		follow := v1.Group("/follow")
		follow.Use(middleware.AuthRequired())
		{
			follow.POST("/:userId", followHandler.Follow)
			follow.DELETE("/:userId", followHandler.Unfollow)
			follow.GET("/:userId", followHandler.IsFollowing)
			follow.GET("", followHandler.GetCounts)
		}
		v1.GET("/following", middleware.AuthRequired(), followHandler.GetFollowing)
		v1.GET("/followers", middleware.AuthRequired(), followHandler.GetFollowers)

		// Feed routes
		v1.GET("/feed", middleware.AuthRequired(), feedHandler.GetFeed)

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/reasons/:type", reportHandler.GetReasons)

			protected := reports.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", reportHandler.SubmitReport)
				protected.GET("/mine", reportHandler.GetMyReports)
			}
		}

		// Lookup routes (public)
		lookup := v1.Group("/lookup")
		{
			lookup.GET("/vehicle", lookupHandler.LookupVehicle)
			lookup.GET("/type-approval/:number", lookupHandler.LookupTypeApproval)
			lookup.GET("/stammnummer/:number", lookupHandler.LookupStammnummer)
		}
	}

	return r
}
