package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hotel-price-map/internal/domain"
	"github.com/hotel-price-map/pkg/model"
)

// MockLiteAPIRepository is a mock of LiteAPIRepository
type MockLiteAPIRepository struct {
	mock.Mock
}

func (m *MockLiteAPIRepository) GetPlace(ctx context.Context, placeID string) (*domain.PlaceResponse, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceResponse), args.Error(1)
}

func (m *MockLiteAPIRepository) GetHotelRates(ctx context.Context, req domain.RatesRequest) (*domain.RatesResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatesResponse), args.Error(1)
}

// MockWeatherRepository is a mock of WeatherRepository
type MockWeatherRepository struct {
	mock.Mock
}

func (m *MockWeatherRepository) GetCurrentWeather(ctx context.Context, lat, lon float64) (*domain.CurrentWeather, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrentWeather), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetPlace(ctx context.Context, placeID string) (*domain.PlaceResponse, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceResponse), args.Error(1)
}

func (m *MockCacheRepository) SetPlace(ctx context.Context, placeID string, place *domain.PlaceResponse, ttl time.Duration) error {
	args := m.Called(ctx, placeID, place, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetWeather(ctx context.Context, lat, lon float64) (*model.WeatherData, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeatherData), args.Error(1)
}

func (m *MockCacheRepository) SetWeather(ctx context.Context, lat, lon float64, weather *model.WeatherData, ttl time.Duration) error {
	args := m.Called(ctx, lat, lon, weather, ttl)
	return args.Error(0)
}
