// Package bff - HTTP-клиент SDK к BFF: загрузка отелей места и погоды.
package bff

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hotel-price-map/pkg/model"
	"go.uber.org/zap"
)

var (
	ErrProxyBaseURLRequired = errors.New("proxyBaseURL is required")
	ErrPlaceIDRequired      = errors.New("placeId is required")
)

// StatusError - BFF ответил не-2xx статусом
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += " - " + e.Body
	}
	return msg
}

// Client реализует загрузчики отелей и погоды SDK поверх BFF
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создает новый клиент BFF
func NewClient(httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

type placeHotelsRequest struct {
	Checkin          string            `json:"checkin"`
	Checkout         string            `json:"checkout"`
	Occupancies      []model.Occupancy `json:"occupancies"`
	Currency         string            `json:"currency"`
	GuestNationality string            `json:"guestNationality"`
}

// FetchPlaceHotels загружает отели с ценами для места
func (c *Client) FetchPlaceHotels(ctx context.Context, params model.FetchHotelsParams) (*model.PlaceHotelsResponse, error) {
	if params.ProxyBaseURL == "" {
		return nil, ErrProxyBaseURLRequired
	}
	if params.PlaceID == "" {
		return nil, ErrPlaceIDRequired
	}

	occupancies := params.Occupancies
	if occupancies == nil {
		occupancies = []model.Occupancy{}
	}
	body, err := json.Marshal(placeHotelsRequest{
		Checkin:          params.Checkin,
		Checkout:         params.Checkout,
		Occupancies:      occupancies,
		Currency:         params.Currency,
		GuestNationality: params.GuestNationality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := normalizeBaseURL(params.ProxyBaseURL) + "api/map/places/" + url.PathEscape(params.PlaceID) + "/hotels"

	var resp model.PlaceHotelsResponse
	if err := c.do(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch hotels: %w", err)
	}
	if resp.Hotels == nil {
		resp.Hotels = []model.Hotel{}
	}

	c.logger.Debug("Hotels fetched",
		zap.String("place_id", params.PlaceID),
		zap.Int("hotels", len(resp.Hotels)))

	return &resp, nil
}

// FetchWeather загружает текущую погоду для точки
func (c *Client) FetchWeather(ctx context.Context, params model.FetchWeatherParams) (*model.WeatherData, error) {
	if params.ProxyBaseURL == "" {
		return nil, ErrProxyBaseURLRequired
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	endpoint := normalizeBaseURL(params.ProxyBaseURL) + "api/weather?" + query.Encode()

	var weather model.WeatherData
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &weather); err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	return &weather, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("BFF returned error",
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(text)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func normalizeBaseURL(base string) string {
	if strings.HasSuffix(base, "/") {
		return base
	}
	return base + "/"
}
