package liteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hotel-price-map/internal/domain"
	"github.com/hotel-price-map/internal/domain/repository"
	"github.com/hotel-price-map/internal/infrastructure/httpx"
	"go.uber.org/zap"
)

// UpstreamName - имя upstream в метриках и логах
const UpstreamName = "liteapi"

// Error - LiteAPI вернул конверт {"error":{"message":...}} в успешном ответе
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	return e.Path + e.Message
}

type client struct {
	http    *httpx.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewLiteAPIClient создает новый клиент для LiteAPI
func NewLiteAPIClient(httpClient *httpx.Client, baseURL, apiKey string, logger *zap.Logger) repository.LiteAPIRepository {
	return &client{
		http:    httpClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// GetPlace возвращает место по идентификатору
func (c *client) GetPlace(ctx context.Context, placeID string) (*domain.PlaceResponse, error) {
	endpoint := fmt.Sprintf("%s/data/places/%s", c.baseURL, url.PathEscape(placeID))

	c.logger.Debug("Calling LiteAPI places", zap.String("place_id", placeID))

	body, err := c.http.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return req, nil
	})
	if err != nil {
		c.logger.Error("Failed to fetch place data", zap.String("place_id", placeID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch place data: %w", err)
	}

	var place domain.PlaceResponse
	if err := json.Unmarshal(body, &place); err != nil {
		c.logger.Error("Failed to decode place response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if place.Error != nil {
		return nil, &Error{Path: "data/places:", Message: place.Error.Message}
	}

	return &place, nil
}

// GetHotelRates возвращает тарифы отелей места
func (c *client) GetHotelRates(ctx context.Context, ratesReq domain.RatesRequest) (*domain.RatesResponse, error) {
	payload, err := json.Marshal(ratesReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	endpoint := c.baseURL + "/hotels/rates"

	c.logger.Debug("Calling LiteAPI rates",
		zap.String("place_id", ratesReq.PlaceID),
		zap.String("checkin", ratesReq.Checkin),
		zap.String("checkout", ratesReq.Checkout),
		zap.Int("occupancies", len(ratesReq.Occupancies)))

	body, err := c.http.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return req, nil
	})
	if err != nil {
		c.logger.Error("Failed to fetch hotel rates", zap.String("place_id", ratesReq.PlaceID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch hotel rates: %w", err)
	}

	var rates domain.RatesResponse
	if err := json.Unmarshal(body, &rates); err != nil {
		c.logger.Error("Failed to decode rates response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if rates.Error != nil {
		return nil, &Error{Path: "hotels/rates:", Message: rates.Error.Message}
	}

	c.logger.Debug("LiteAPI rates call successful",
		zap.Int("rates", len(rates.Data)),
		zap.Int("hotels", len(rates.Hotels)))

	return &rates, nil
}

func (c *client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
}
