package main

// @title Hotel Price Map BFF
// @version 1.0.0
// @description BFF для карты цен отелей.
// @description
// @description Основные возможности:
// @description - Отели места с ценами, ссылками на бронирование и координатами маркеров (LiteAPI)
// @description - Рамка и центр места
// @description - Текущая погода в точке (OpenWeather)

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hotel-price-map/internal/config"
	httpDelivery "github.com/hotel-price-map/internal/delivery/http"
	"github.com/hotel-price-map/internal/delivery/http/handler"
	"github.com/hotel-price-map/internal/domain/repository"
	"github.com/hotel-price-map/internal/infrastructure/httpx"
	"github.com/hotel-price-map/internal/infrastructure/liteapi"
	"github.com/hotel-price-map/internal/infrastructure/openweather"
	"github.com/hotel-price-map/internal/pkg/logger"
	"github.com/hotel-price-map/internal/repository/cache"
	"github.com/hotel-price-map/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Hotel Price Map BFF")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("weather_configured", cfg.WeatherConfigured()),
	)

	// 3. Connect to Redis (optional)
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
	)
	healthChecks := map[string]handler.HealthChecker{}
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		healthChecks["redis"] = redisClient
		log.Info("Redis cache enabled", zap.String("addr", cfg.GetRedisAddr()))
	}

	// 4. Initialize upstream clients
	backoff := httpx.BackoffConfig{
		MaxRetries:      cfg.Upstream.MaxRetries,
		InitialInterval: cfg.Upstream.InitialInterval,
		MaxInterval:     cfg.Upstream.MaxInterval,
	}
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}

	liteAPIRepo := liteapi.NewLiteAPIClient(
		httpx.New(liteapi.UpstreamName, httpClient, backoff, log),
		cfg.LiteAPI.BaseURL,
		cfg.LiteAPI.APIKey,
		log,
	)

	var weatherRepo repository.WeatherRepository
	if cfg.WeatherConfigured() {
		weatherRepo = openweather.NewOpenWeatherClient(
			httpx.New(openweather.UpstreamName, httpClient, backoff, log),
			cfg.OpenWeather.BaseURL,
			cfg.OpenWeather.APIKey,
			log,
		)
	} else {
		log.Warn("OPENWEATHER_API_KEY is not set, weather endpoint will answer 500")
	}

	log.Info("Upstream clients initialized")

	// 5. Initialize Use Cases
	hotelUC := usecase.NewHotelUseCase(
		liteAPIRepo,
		cacheRepo,
		cfg.Hotels,
		nil,
		log,
		cfg.Cache.PlaceCacheTTL,
	)

	weatherUC := usecase.NewWeatherUseCase(
		weatherRepo,
		cacheRepo,
		log,
		cfg.Cache.WeatherCacheTTL,
	)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	hotelHandler := handler.NewHotelHandler(hotelUC, log)
	weatherHandler := handler.NewWeatherHandler(weatherUC, log)
	healthHandler := handler.NewHealthHandler(healthChecks, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		hotelHandler,
		weatherHandler,
		healthHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("hotels_endpoint", "POST /api/map/places/:placeId/hotels"),
		zap.String("weather_endpoint", "GET /api/weather"),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
