package mapsdk

import (
	"context"

	"github.com/hotel-price-map/pkg/model"
)

// HotelLoader загружает отели места вместе с рамкой для карты
type HotelLoader interface {
	FetchPlaceHotels(ctx context.Context, params model.FetchHotelsParams) (*model.PlaceHotelsResponse, error)
}

// WeatherLoader загружает текущую погоду для точки
type WeatherLoader interface {
	FetchWeather(ctx context.Context, params model.FetchWeatherParams) (*model.WeatherData, error)
}
