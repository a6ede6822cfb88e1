// Vehicle Listing Parser API
// @title Vehicle Listing Parser API
// @version 1.0
// @description Parses year, make and model out of vehicle listing titles and keeps a store of captured listings
// @host localhost:8080
// @BasePath /

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	_ "listingparser/docs"
	"listingparser/internal/config"
	"listingparser/internal/database"
	"listingparser/internal/handlers"
	"listingparser/internal/listings"
	"listingparser/internal/logger"
	"listingparser/internal/middleware"
	"listingparser/internal/scraper"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Setup(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if envErr != nil {
		log.Debug().Msg("no .env file found")
	}

	gin.SetMode(cfg.Server.Mode)

	db, err := database.NewDatabase(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("failed to open listing database")
	}

	pageScraper := scraper.New(scraper.Options{
		Timeout:   cfg.Scraper.Timeout,
		ChromeBin: cfg.Scraper.ChromeBin,
	})

	svc := listings.NewService(db, pageScraper)
	parseHandler := handlers.NewParseHandler()
	listingHandler := handlers.NewListingHandler(svc)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.SecurityScanDetection())

	// Configure trusted proxies for Cloudflare Tunnels
	if err := r.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
		"172.16.0.0/12",  // Docker networks
		"10.0.0.0/8",     // Private networks
		"192.168.0.0/16", // Private networks
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to set trusted proxies")
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Admin-Key", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limiter))
	{
		api.GET("/health", handlers.Health(db.Ping))

		api.POST("/parse", parseHandler.Parse)
		api.POST("/enhance", parseHandler.Enhance)
		api.GET("/makes", parseHandler.ListMakes)
		api.GET("/makes/:make/models", parseHandler.ListModels)

		api.POST("/listings", listingHandler.Create)
		api.GET("/listings", listingHandler.List)
		api.GET("/listings/count", listingHandler.Count)
		api.GET("/listings/:id", listingHandler.Get)
		api.DELETE("/listings/:id", listingHandler.Delete)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKeyMiddleware(cfg.Admin.KeyHash))
	{
		admin.DELETE("/listings", listingHandler.Clear)
		admin.POST("/listings/reparse", listingHandler.Reparse)
		admin.POST("/listings/fetch", middleware.FetchProtectionMiddleware(cfg.Scraper.MinInterval), listingHandler.Fetch)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	limiter.Stop()
	pageScraper.Close()
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}
