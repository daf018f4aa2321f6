package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hotel-price-map/internal/domain"
	"github.com/hotel-price-map/internal/domain/repository"
	"github.com/hotel-price-map/internal/pkg/metrics"
	"github.com/hotel-price-map/internal/pkg/utils"
	"github.com/hotel-price-map/pkg/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	kindPlace   = "place"
	kindWeather = "weather"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetPlace получает место LiteAPI из кеша
func (r *cacheRepository) GetPlace(ctx context.Context, placeID string) (*domain.PlaceResponse, error) {
	var place domain.PlaceResponse
	found, err := r.getJSON(ctx, kindPlace, placeKey(placeID), &place)
	if err != nil || !found {
		return nil, err
	}
	return &place, nil
}

// SetPlace сохраняет место LiteAPI в кеше
func (r *cacheRepository) SetPlace(ctx context.Context, placeID string, place *domain.PlaceResponse, ttl time.Duration) error {
	return r.setJSON(ctx, placeKey(placeID), place, ttl)
}

// GetWeather получает погоду для ячейки сетки
func (r *cacheRepository) GetWeather(ctx context.Context, lat, lon float64) (*model.WeatherData, error) {
	var weather model.WeatherData
	found, err := r.getJSON(ctx, kindWeather, weatherKey(lat, lon), &weather)
	if err != nil || !found {
		return nil, err
	}
	return &weather, nil
}

// SetWeather сохраняет погоду для ячейки сетки
func (r *cacheRepository) SetWeather(ctx context.Context, lat, lon float64, weather *model.WeatherData, ttl time.Duration) error {
	return r.setJSON(ctx, weatherKey(lat, lon), weather, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, kind, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		metrics.CacheMissesTotal.WithLabelValues(kind).Inc()
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", kind, err)
	}

	metrics.CacheHitsTotal.WithLabelValues(kind).Inc()
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.Set(ctx, key, data, ttl)
}

func placeKey(placeID string) string {
	return "place:" + placeID
}

func weatherKey(lat, lon float64) string {
	lat, lon = utils.GridKey(lat, lon)
	return fmt.Sprintf("weather:%.2f:%.2f", lat, lon)
}
