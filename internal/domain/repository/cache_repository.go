package repository

import (
	"context"
	"time"

	"github.com/hotel-price-map/internal/domain"
	"github.com/hotel-price-map/pkg/model"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; nil без ошибки при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetPlace получает место LiteAPI из кеша
	GetPlace(ctx context.Context, placeID string) (*domain.PlaceResponse, error)

	// SetPlace сохраняет место LiteAPI в кеше
	SetPlace(ctx context.Context, placeID string, place *domain.PlaceResponse, ttl time.Duration) error

	// GetWeather получает погоду для ячейки сетки ~1 км
	GetWeather(ctx context.Context, lat, lon float64) (*model.WeatherData, error)

	// SetWeather сохраняет погоду для ячейки сетки ~1 км
	SetWeather(ctx context.Context, lat, lon float64, weather *model.WeatherData, ttl time.Duration) error
}
