// OLX Vehicle Listing Fetcher API
// @title OLX Fetcher API
// @version 1.0
// @description Fetches vehicle listings from OLX Brasil and exposes a paginated search plus price distribution statistics for a price-estimation front end
// @host localhost:8080
// @BasePath /

package main

import (
	"log"
	"regexp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	_ "olxfetcher/docs"
	"olxfetcher/internal/api"
	"olxfetcher/internal/config"
	"olxfetcher/internal/middleware"
	"olxfetcher/internal/scraper"
)

// Browser clients are only expected from the price estimator's local dev setup.
var localOriginPattern = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize Gin router
	r := gin.Default()

	// Configure trusted proxies for reverse-proxy deployments
	r.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
		"172.16.0.0/12",  // Docker networks
		"10.0.0.0/8",     // Private networks
		"192.168.0.0/16", // Private networks
	})

	// Configure CORS: local front ends only, credentials allowed
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOriginFunc = localOriginPattern.MatchString
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "x-api-key"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.SecurityHeaders())

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	r.Use(middleware.RateLimitMiddleware(limiter))

	// Pick the listing source
	var source scraper.Source = scraper.New()
	if cfg.MockMode {
		log.Println("MOCK_MODE enabled, serving synthetic listings")
		source = scraper.NewMockSource()
	}

	handler := api.NewHandler(cfg, source)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	r.GET("/health", handler.Health)

	authorized := r.Group("/", middleware.APIKeyAuth(cfg.APIKey))
	{
		authorized.GET("/search", handler.Search)
		authorized.GET("/stats", handler.Stats)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
