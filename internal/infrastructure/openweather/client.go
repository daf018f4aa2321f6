package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hotel-price-map/internal/domain"
	"github.com/hotel-price-map/internal/domain/repository"
	"github.com/hotel-price-map/internal/infrastructure/httpx"
	"go.uber.org/zap"
)

// UpstreamName - имя upstream в метриках и логах
const UpstreamName = "openweather"

type client struct {
	http    *httpx.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewOpenWeatherClient создает новый клиент для OpenWeather Current Weather API
func NewOpenWeatherClient(httpClient *httpx.Client, baseURL, apiKey string, logger *zap.Logger) repository.WeatherRepository {
	return &client{
		http:    httpClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// GetCurrentWeather возвращает текущую погоду в точке (units=metric)
func (c *client) GetCurrentWeather(ctx context.Context, lat, lon float64) (*domain.CurrentWeather, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")
	endpoint := fmt.Sprintf("%s/weather?%s", c.baseURL, values.Encode())

	c.logger.Debug("Calling OpenWeather API", zap.Float64("lat", lat), zap.Float64("lon", lon))

	body, err := c.http.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		c.logger.Error("Failed to fetch weather", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	var weather domain.CurrentWeather
	if err := json.Unmarshal(body, &weather); err != nil {
		c.logger.Error("Failed to decode weather response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &weather, nil
}
