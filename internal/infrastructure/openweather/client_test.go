package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hotel-price-map/internal/infrastructure/httpx"
)

func newTestClient(serverURL string) *client {
	logger := zap.NewNop()
	h := httpx.New(UpstreamName, nil, httpx.BackoffConfig{MaxRetries: 0, InitialInterval: time.Millisecond}, logger)
	return NewOpenWeatherClient(h, serverURL, "ow_key", logger).(*client)
}

func TestClient_GetCurrentWeather(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/weather", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "48.85", q.Get("lat"))
			assert.Equal(t, "2.35", q.Get("lon"))
			assert.Equal(t, "ow_key", q.Get("appid"))
			assert.Equal(t, "metric", q.Get("units"))

			w.Write([]byte(`{"name":"Paris","main":{"temp":19.6,"feels_like":19.1,"humidity":60},` +
				`"weather":[{"main":"Clear","description":"clear sky","icon":"01d"}],"wind":{"speed":3.1}}`))
		}))
		defer server.Close()

		weather, err := newTestClient(server.URL).GetCurrentWeather(context.Background(), 48.85, 2.35)
		require.NoError(t, err)
		require.True(t, weather.Valid())
		assert.Equal(t, "Paris", weather.Name)
		assert.Equal(t, 19.6, weather.Main.Temp)
		assert.Equal(t, 19.1, weather.Main.FeelsLike)
		assert.Equal(t, "clear sky", weather.Weather[0].Description)
		assert.Equal(t, "01d", weather.Weather[0].Icon)
		assert.Equal(t, 3.1, weather.Wind.Speed)
	})

	t.Run("incomplete payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"name":"Nowhere","weather":[]}`))
		}))
		defer server.Close()

		weather, err := newTestClient(server.URL).GetCurrentWeather(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.False(t, weather.Valid())
	})

	t.Run("unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetCurrentWeather(context.Background(), 1, 1)

		var statusErr *httpx.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Equal(t, UpstreamName, statusErr.Upstream)
	})
}
