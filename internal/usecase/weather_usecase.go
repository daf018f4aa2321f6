package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/hotel-price-map/internal/domain/repository"
	"github.com/hotel-price-map/internal/infrastructure/httpx"
	"github.com/hotel-price-map/internal/pkg/errors"
	"github.com/hotel-price-map/internal/usecase/dto"
	"github.com/hotel-price-map/pkg/model"
)

// WeatherUseCase - use case для текущей погоды в точке
type WeatherUseCase struct {
	weatherRepo repository.WeatherRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewWeatherUseCase - создание нового WeatherUseCase. weatherRepo nil - ключ OpenWeather не задан.
func NewWeatherUseCase(
	weatherRepo repository.WeatherRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *WeatherUseCase {
	return &WeatherUseCase{
		weatherRepo: weatherRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetWeather - погода в точке; координаты ответа совпадают с запрошенными
func (uc *WeatherUseCase) GetWeather(ctx context.Context, req dto.WeatherRequest) (*model.WeatherData, error) {
	if uc.weatherRepo == nil {
		return nil, errors.ErrWeatherNotConfigured
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetWeather(ctx, req.Lat, req.Lon)
		if err != nil {
			uc.logger.Warn("Failed to get weather from cache", zap.Error(err))
		}
		if cached != nil {
			cached.Latitude, cached.Longitude = req.Lat, req.Lon
			return cached, nil
		}
	}

	current, err := uc.weatherRepo.GetCurrentWeather(ctx, req.Lat, req.Lon)
	if err != nil {
		uc.logger.Error("Failed to fetch weather",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Error(err))

		var statusErr *httpx.StatusError
		switch {
		case stderrors.As(err, &statusErr):
			return nil, errors.ErrWeatherFetchFailed.WithStatus(statusErr.StatusCode)
		case stderrors.Is(err, httpx.ErrCircuitOpen):
			return nil, errors.ErrServiceUnavailable
		default:
			return nil, errors.ErrWeatherFetchFailed
		}
	}
	if !current.Valid() {
		return nil, errors.ErrInvalidWeatherData
	}

	weather := &model.WeatherData{
		Latitude:    req.Lat,
		Longitude:   req.Lon,
		Temperature: current.Main.Temp,
		FeelsLike:   current.Main.FeelsLike,
		Description: current.Weather[0].Description,
		Icon:        current.Weather[0].Icon,
		Humidity:    current.Main.Humidity,
		WindSpeed:   current.Wind.Speed,
		City:        current.Name,
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetWeather(ctx, req.Lat, req.Lon, weather, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache weather", zap.Error(err))
		}
	}

	return weather, nil
}
