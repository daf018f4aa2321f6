// Package httpx - выполнение запросов к внешним API: повторы с экспоненциальной
// задержкой, circuit breaker и метрики по каждому upstream.
package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/hotel-price-map/internal/pkg/metrics"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const maxBodySize = 10 << 20

// BackoffConfig - политика повторов
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultBackoff - 3 повтора, 500 мс -> 5 с
var DefaultBackoff = BackoffConfig{
	MaxRetries:      3,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
}

var (
	ErrCircuitOpen   = errors.New("circuit breaker open")
	ErrInvalidConfig = errors.New("invalid backoff configuration")
)

// StatusError - upstream ответил не-2xx статусом
type StatusError struct {
	Upstream   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Upstream, e.StatusCode, e.Body)
}

// Retryable - 429 и 5xx повторяются, остальные 4xx нет
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Client - HTTP-клиент одного upstream со своим circuit breaker
type Client struct {
	name       string
	httpClient *http.Client
	backoff    BackoffConfig
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// New создает клиент upstream с именем name (используется в метриках и логах)
func New(name string, httpClient *http.Client, backoff BackoffConfig, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("upstream", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		name:       name,
		httpClient: httpClient,
		backoff:    backoff,
		breaker:    breaker,
		logger:     logger,
	}
}

// Name - имя upstream
func (c *Client) Name() string { return c.name }

// Do выполняет запрос и возвращает тело успешного ответа.
// buildRequest вызывается на каждую попытку, т.к. тело запроса читается один раз.
func (c *Client) Do(ctx context.Context, buildRequest func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	start := time.Now()
	body, err := c.do(ctx, buildRequest)

	metrics.UpstreamDurationMs.WithLabelValues(c.name).Observe(float64(time.Since(start).Milliseconds()))
	metrics.UpstreamRequestsTotal.WithLabelValues(c.name, outcome(err)).Inc()

	return body, err
}

func (c *Client) do(ctx context.Context, buildRequest func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	if c.backoff.MaxRetries < 0 || c.backoff.InitialInterval <= 0 {
		return nil, ErrInvalidConfig
	}

	var attempt int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := buildRequest(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		result, err := c.breaker.Execute(func() (interface{}, error) {
			resp, execErr := c.httpClient.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return nil, c.statusError(resp)
			}
			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return c.readResponse(resp)
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		if attempt >= c.backoff.MaxRetries || ctx.Err() != nil {
			return nil, err
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if c.backoff.MaxInterval > 0 && delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}

		c.logger.Debug("Retrying upstream request",
			zap.String("upstream", c.name),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

// readResponse закрывает тело; не-2xx, не требующие повтора, возвращаются как StatusError мимо breaker
func (c *Client) readResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.statusError(resp)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func (c *Client) statusError(resp *http.Response) *StatusError {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	c.logger.Warn("Upstream returned error",
		zap.String("upstream", c.name),
		zap.Int("status_code", resp.StatusCode))

	return &StatusError{
		Upstream:   c.name,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

func outcome(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	case errors.As(err, &statusErr):
		return "status_" + statusClass(statusErr.StatusCode)
	default:
		return "error"
	}
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
