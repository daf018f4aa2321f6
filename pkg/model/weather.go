package model

// WeatherData - текущая погода в точке
type WeatherData struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	City        string  `json:"city,omitempty"`
}

// FetchWeatherParams - параметры загрузки погоды из SDK
type FetchWeatherParams struct {
	Latitude     float64
	Longitude    float64
	ProxyBaseURL string
}
