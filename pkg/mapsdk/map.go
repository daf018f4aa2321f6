// Package mapsdk - SDK карты с ценами отелей и погодой.
//
// Корень композиции Init создает один провайдер карты, общее состояние сессии,
// фичи отелей и погоды поверх них и возвращает единый дескриптор *Map.
// Движок отрисовки подключается через MapProvider и полностью скрыт от фич.
package mapsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hotel-price-map/pkg/mapsdk/bff"
	"github.com/hotel-price-map/pkg/model"
	"go.uber.org/zap"
)

// Version - версия SDK
const Version = "1.0.0"

var (
	ErrSelectorRequired = errors.New("selector is required")
	ErrProviderRequired = errors.New("map provider factory is required")
)

// InitOptions - параметры инициализации карты
type InitOptions struct {
	Selector    string
	AccessToken string
	Style       string
	Center      *model.LngLat
	Zoom        *float64

	// HotelsQuery - если задан, отели загружаются до возврата из Init
	HotelsQuery *model.FetchHotelsParams

	// OnLoad вызывается после инициализации и автозагрузки отелей
	OnLoad func(ctx context.Context, m *Map) error
}

// Dependencies - внешние зависимости корня композиции
type Dependencies struct {
	NewProvider    func() MapProvider
	HotelLoader    HotelLoader
	WeatherLoader  WeatherLoader
	Logger         *zap.Logger
	RefreshTimeout time.Duration
}

// Map - дескриптор карты: операции обеих фич плюс общие операции с картой
type Map struct {
	*HotelFeature
	*WeatherFeature

	provider MapProvider
	state    *SessionState
	logger   *zap.Logger

	destroyOnce sync.Once
	destroyErr  error
}

// Init инициализирует карту. Ошибки конфигурации возвращаются до любого ввода-вывода.
func Init(ctx context.Context, opts InitOptions, deps Dependencies) (*Map, error) {
	if opts.Selector == "" {
		return nil, ErrSelectorRequired
	}
	if deps.NewProvider == nil {
		return nil, ErrProviderRequired
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.HotelLoader == nil || deps.WeatherLoader == nil {
		client := bff.NewClient(&http.Client{Timeout: 30 * time.Second}, logger)
		if deps.HotelLoader == nil {
			deps.HotelLoader = client
		}
		if deps.WeatherLoader == nil {
			deps.WeatherLoader = client
		}
	}

	provider := deps.NewProvider()
	if err := provider.Initialize(ctx, ProviderConfig{
		Selector:    opts.Selector,
		AccessToken: opts.AccessToken,
		Style:       opts.Style,
		Center:      opts.Center,
		Zoom:        opts.Zoom,
	}); err != nil {
		provider.Destroy()
		return nil, fmt.Errorf("initialize map provider: %w", err)
	}

	state := NewSessionState()

	weather, err := NewWeatherFeature(provider, deps.WeatherLoader, logger, deps.RefreshTimeout)
	if err != nil {
		provider.Destroy()
		return nil, err
	}

	m := &Map{
		HotelFeature:   NewHotelFeature(provider, state, deps.HotelLoader, logger),
		WeatherFeature: weather,
		provider:       provider,
		state:          state,
		logger:         logger,
	}

	if opts.HotelsQuery != nil {
		if err := m.LoadHotels(ctx, *opts.HotelsQuery); err != nil {
			m.abort()
			return nil, err
		}
	}

	if opts.OnLoad != nil {
		if err := opts.OnLoad(ctx, m); err != nil {
			m.abort()
			return nil, fmt.Errorf("on load callback: %w", err)
		}
	}

	logger.Debug("Map initialized", zap.String("selector", opts.Selector))
	return m, nil
}

func (m *Map) SetCenter(lng, lat float64) error {
	return m.provider.SetCenter(lng, lat)
}

func (m *Map) SetZoom(zoom float64) error {
	return m.provider.SetZoom(zoom)
}

// Resize подгоняет карту под текущий размер контейнера
func (m *Map) Resize() error {
	return m.provider.Resize()
}

// Viewport возвращает текущие границы видимой области
func (m *Map) Viewport() (model.Viewport, error) {
	return m.provider.Viewport()
}

// Provider возвращает провайдер, которым владеет карта
func (m *Map) Provider() MapProvider {
	return m.provider
}

// Destroy явно освобождает подписки и контролы фич, затем уничтожает провайдер
// и очищает состояние сессии. Повторные вызовы возвращают результат первого.
func (m *Map) Destroy() error {
	m.destroyOnce.Do(func() {
		var errs []error

		if err := m.WeatherFeature.Close(); err != nil {
			errs = append(errs, err)
		}
		m.HotelFeature.Close()
		m.provider.Destroy()
		m.state.Clear()

		m.destroyErr = errors.Join(errs...)
		m.logger.Debug("Map destroyed")
	})
	return m.destroyErr
}

func (m *Map) abort() {
	if err := m.Destroy(); err != nil {
		m.logger.Warn("Failed to tear down map after init failure", zap.Error(err))
	}
}
