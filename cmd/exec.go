package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"

	"macs-platform/config"
	"macs-platform/handlers"
	"macs-platform/monitoring"
	"macs-platform/security"
	"macs-platform/services"
	"macs-platform/store"
	"macs-platform/utils"
)

func Start() error {
	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stores
	stores := store.NewStores()
	if cfg.Environment == "development" {
		stores.Seed()
		log.Println("Loaded development seed data")
	}

	// PubNub is optional; without keys events stay local
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" && cfg.PubNubSubscribeKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey
		pn = pubnub.NewPubNub(pnConfig)
	}

	// Services
	emailNotifier := services.NewEmailNotifier(cfg.EmailFrom, cfg.EmailFromName)
	notifyService := services.NewNotificationService(emailNotifier, pn, cfg.NotifyBuffer)
	availabilityService := services.NewAvailabilityService(stores.Availability, stores.Bookings)
	bookingService := services.NewBookingService(stores.Bookings, stores.Artists, availabilityService, notifyService)
	campaignService := services.NewCampaignService(stores.Campaigns, stores.Contributions, notifyService)

	go notifyService.Start(ctx)

	// Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService, availabilityService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)

	e := echo.New()
	e.Use(monitoring.HTTPMetrics())

	// Redis backs rate limiting only; the API runs without it
	redisClient, err := redisIfConfigured(cfg)
	if err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		if cfg.EnableRateLimit {
			limiter := security.NewRateLimiter(redisClient, cfg.RateLimitPerMinute)
			e.Use(limiter.AntiBotMiddleware())
			e.Use(limiter.BookingRateLimit())
		}
	}

	api := e.Group("/api/v1")

	// Booking endpoints
	api.POST("/bookings", bookingHandler.CreateBooking)
	api.GET("/bookings", bookingHandler.GetBookings)
	api.GET("/bookings/availability/:artistId", bookingHandler.GetAvailability)
	api.POST("/bookings/check-availability", bookingHandler.CheckAvailability)
	api.GET("/bookings/stats/:artistId", bookingHandler.GetStats)
	api.GET("/bookings/user/:email", bookingHandler.GetUserBookings)
	api.GET("/bookings/:id", bookingHandler.GetBooking)
	api.PATCH("/bookings/:id", bookingHandler.UpdateBookingStatus)
	api.PATCH("/bookings/:id/confirm", bookingHandler.ConfirmBooking)

	// Availability management endpoints
	api.GET("/availability/:artistId", availabilityHandler.GetArtistAvailability)
	api.POST("/availability/:artistId", availabilityHandler.UpdateArtistAvailability)

	// Crowdfunding endpoints
	api.POST("/campaigns", campaignHandler.CreateCampaign)
	api.GET("/campaigns", campaignHandler.GetCampaigns)
	api.GET("/campaigns/:id", campaignHandler.GetCampaign)
	api.PATCH("/campaigns/:id", campaignHandler.UpdateCampaign)
	api.POST("/contributions", campaignHandler.CreateContribution)
	api.GET("/contributions/:campaignId", campaignHandler.GetContributions)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		if redisClient != nil {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return c.JSON(503, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(200, map[string]string{"status": "healthy"})
	})

	if cfg.EnableMetrics {
		go monitoring.Serve(ctx, cfg.MetricsPort)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	go handleShutdown(cancel, srv)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func redisIfConfigured(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	return utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
}

// handleShutdown drains the HTTP server on SIGINT/SIGTERM.
func handleShutdown(cancel context.CancelFunc, srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
