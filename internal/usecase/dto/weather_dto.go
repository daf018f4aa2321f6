package dto

// WeatherRequest - query-параметры GET /api/weather
type WeatherRequest struct {
	Lat float64 `query:"lat" validate:"min=-90,max=90"`
	Lon float64 `query:"lon" validate:"min=-180,max=180"`
}
