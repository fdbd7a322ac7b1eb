package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"pixelmart/internal/adapter/api"
	"pixelmart/internal/adapter/api/handler"
	apimiddleware "pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/adapter/api/router"
	"pixelmart/internal/domain/service"
	"pixelmart/internal/infrastructure/metrics"
	"pixelmart/internal/infrastructure/notifier"
	"pixelmart/internal/infrastructure/ratelimit"
	"pixelmart/internal/infrastructure/session"
	"pixelmart/internal/infrastructure/upstream"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	sessionStore := session.NewStore(redisClient, time.Duration(cfg.SessionTTLHours)*time.Hour)

	apiClient := upstream.NewClient(cfg.APIBaseURL)

	isProduction := cfg.FlouciEnvironment == "production"
	paymentService := service.NewFlouciPaymentService(cfg.FlouciAppToken, cfg.FlouciAppSecret, isProduction)

	hub := notifier.NewHub()
	hub.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(apiClient, sessionStore)
	catalogUseCase := usecase.NewCatalogUseCase(apiClient)
	cartUseCase := usecase.NewCartUseCase(sessionStore, hub)
	checkoutUseCase := usecase.NewCheckoutUseCase(apiClient, paymentService, cartUseCase, sessionStore, cfg.PublicBaseURL)
	loyaltyUseCase := usecase.NewLoyaltyUseCase(apiClient)
	adminUseCase := usecase.NewAdminUseCase(apiClient)
	orderUseCase := usecase.NewOrderUseCase(apiClient)

	handler.Setup(authUseCase, catalogUseCase, cartUseCase, checkoutUseCase, loyaltyUseCase, adminUseCase, orderUseCase, hub)
	handler.SetupHealthHandler(redisClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())

	e.Validator = api.NewValidator()

	sessionMiddleware := apimiddleware.NewSessionMiddleware(sessionStore)
	e.Use(sessionMiddleware.Attach)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	authMiddleware := apimiddleware.NewAuthMiddleware(sessionStore)
	adminMiddleware := apimiddleware.NewAdminMiddleware()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(rateLimiter)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)

	e.GET("/metrics", metrics.Handler())

	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
