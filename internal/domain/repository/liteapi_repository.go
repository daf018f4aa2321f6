package repository

import (
	"context"

	"github.com/hotel-price-map/internal/domain"
)

// LiteAPIRepository определяет методы для работы с LiteAPI
type LiteAPIRepository interface {
	// GetPlace возвращает место с рамкой и центром
	GetPlace(ctx context.Context, placeID string) (*domain.PlaceResponse, error)

	// GetHotelRates возвращает тарифы и справочные данные отелей места
	GetHotelRates(ctx context.Context, req domain.RatesRequest) (*domain.RatesResponse, error)
}
