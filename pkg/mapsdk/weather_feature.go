package mapsdk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hotel-price-map/pkg/model"
	"go.uber.org/zap"
)

// DefaultRefreshTimeout ограничивает загрузку погоды, запущенную изменением видимой области
const DefaultRefreshTimeout = 10 * time.Second

var ErrNoWeatherLoader = errors.New("weather loader is not configured")

// weatherState - состояние слоя погоды. autoRefresh взводится один раз.
type weatherState struct {
	current      *model.WeatherData
	layerVisible bool
	endpoint     string
	autoRefresh  bool
}

// WeatherFeature - погода в центре карты, её контрол и автообновление при движении карты
type WeatherFeature struct {
	provider       MapProvider
	loader         WeatherLoader
	logger         *zap.Logger
	control        *WeatherControl
	refreshTimeout time.Duration

	refreshCtx    context.Context
	cancelRefresh context.CancelFunc

	mu          sync.Mutex
	state       weatherState
	unsubscribe func()
	closed      bool
}

// NewWeatherFeature - создание фичи погоды; контрол добавляется на карту один раз здесь же
func NewWeatherFeature(provider MapProvider, loader WeatherLoader, logger *zap.Logger, refreshTimeout time.Duration) (*WeatherFeature, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if refreshTimeout <= 0 {
		refreshTimeout = DefaultRefreshTimeout
	}

	control := NewWeatherControl()
	if err := provider.AddControl(control, PositionTopRight); err != nil {
		return nil, fmt.Errorf("add weather control: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WeatherFeature{
		provider:       provider,
		loader:         loader,
		logger:         logger,
		control:        control,
		refreshTimeout: refreshTimeout,
		refreshCtx:     ctx,
		cancelRefresh:  cancel,
	}, nil
}

// Control возвращает контрол погоды
func (w *WeatherFeature) Control() *WeatherControl {
	return w.control
}

// LoadWeather загружает погоду для центра текущей видимой области.
// После первой успешной загрузки подписывается на изменения видимой области (ровно один раз).
func (w *WeatherFeature) LoadWeather(ctx context.Context, endpointBase string) error {
	if w.loader == nil {
		return ErrNoWeatherLoader
	}

	w.mu.Lock()
	w.state.endpoint = endpointBase
	w.mu.Unlock()

	viewport, err := w.provider.Viewport()
	if err != nil {
		return fmt.Errorf("read viewport: %w", err)
	}
	center := viewport.Center()

	weather, err := w.loader.FetchWeather(ctx, model.FetchWeatherParams{
		Latitude:     center.Latitude,
		Longitude:    center.Longitude,
		ProxyBaseURL: endpointBase,
	})
	if err != nil {
		w.logger.Error("Failed to fetch weather",
			zap.Float64("lat", center.Latitude),
			zap.Float64("lon", center.Longitude),
			zap.Error(err))
		return fmt.Errorf("load weather: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.current = weather
	if w.state.layerVisible {
		w.applyVisibility()
	}

	if !w.state.autoRefresh && w.state.endpoint != "" && !w.closed {
		unsubscribe, err := w.provider.OnViewportChange(w.handleViewportChange)
		if err != nil {
			w.logger.Warn("Failed to enable weather auto-refresh", zap.Error(err))
			return nil
		}
		w.state.autoRefresh = true
		w.unsubscribe = unsubscribe
	}

	return nil
}

// ToggleWeatherLayer показывает контрол с данными, если они есть, иначе скрывает его.
// Загрузку не запускает.
func (w *WeatherFeature) ToggleWeatherLayer(visible bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.layerVisible = visible
	w.applyVisibility()
}

// IsWeatherLayerVisible возвращает значение переключателя независимо от наличия данных
func (w *WeatherFeature) IsWeatherLayerVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.layerVisible
}

// Close снимает подписку, удаляет контрол и отменяет незавершенные автообновления
func (w *WeatherFeature) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	unsubscribe := w.unsubscribe
	w.unsubscribe = nil
	w.mu.Unlock()

	w.cancelRefresh()
	if unsubscribe != nil {
		unsubscribe()
	}

	if err := w.provider.RemoveControl(w.control); err != nil && !errors.Is(err, ErrNotInitialized) {
		return fmt.Errorf("remove weather control: %w", err)
	}
	return nil
}

// applyVisibility вызывается под w.mu
func (w *WeatherFeature) applyVisibility() {
	if w.state.layerVisible && w.state.current != nil {
		w.control.SetWeather(w.state.current)
		w.control.Show()
		return
	}
	w.control.Hide()
}

// handleViewportChange вызывается провайдером. Ошибки не пробрасываются в провайдер.
func (w *WeatherFeature) handleViewportChange(_ model.Viewport) {
	w.mu.Lock()
	visible := w.state.layerVisible
	endpoint := w.state.endpoint
	closed := w.closed
	w.mu.Unlock()

	if closed || !visible || endpoint == "" {
		return
	}

	ctx, cancel := context.WithTimeout(w.refreshCtx, w.refreshTimeout)
	defer cancel()

	if err := w.LoadWeather(ctx, endpoint); err != nil {
		w.logger.Error("Failed to refresh weather on viewport change", zap.Error(err))
	}
}
