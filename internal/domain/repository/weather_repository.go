package repository

import (
	"context"

	"github.com/hotel-price-map/internal/domain"
)

// WeatherRepository определяет методы для работы с OpenWeather
type WeatherRepository interface {
	// GetCurrentWeather возвращает текущую погоду в точке
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*domain.CurrentWeather, error)
}
