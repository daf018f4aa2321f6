package domain

// CurrentWeather - ответ OpenWeather /weather (units=metric), только используемые поля
type CurrentWeather struct {
	Name string `json:"name"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Valid - есть блок main и хотя бы одно описание погоды
func (w *CurrentWeather) Valid() bool {
	return w != nil && w.Main != nil && len(w.Weather) > 0
}
