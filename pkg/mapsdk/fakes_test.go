package mapsdk

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/hotel-price-map/pkg/model"
)

// fakeProvider записывает вызовы фич и позволяет вручную рассылать события видимой области
type fakeProvider struct {
	mu sync.Mutex

	initErr     error
	initialized bool
	config      ProviderConfig
	viewport    model.Viewport

	setViewportCalls  []model.Viewport
	renderedMarkers   [][]Marker
	clearMarkersCalls int
	markersVisibility []bool
	heatmapData       []HeatmapData
	heatmapVisibility []HeatmapVisibility

	controls      map[string]ControlPosition
	listeners     map[int]func(model.Viewport)
	nextListener  int
	registrations int
	destroyCalls  int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		viewport:  model.NewViewport(48.8, 2.2, 48.9, 2.4),
		controls:  make(map[string]ControlPosition),
		listeners: make(map[int]func(model.Viewport)),
	}
}

func (p *fakeProvider) Initialize(_ context.Context, cfg ProviderConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initErr != nil {
		return p.initErr
	}
	p.config = cfg
	p.initialized = true
	return nil
}

func (p *fakeProvider) SetCenter(lng, lat float64) error { return nil }
func (p *fakeProvider) SetZoom(zoom float64) error       { return nil }
func (p *fakeProvider) Resize() error                    { return nil }

func (p *fakeProvider) Viewport() (model.Viewport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return model.Viewport{}, ErrNotInitialized
	}
	return p.viewport, nil
}

func (p *fakeProvider) SetViewport(viewport model.Viewport) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.setViewportCalls = append(p.setViewportCalls, viewport)
	p.viewport = viewport
	return nil
}

func (p *fakeProvider) OnViewportChange(callback func(model.Viewport)) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, ErrNotInitialized
	}
	id := p.nextListener
	p.nextListener++
	p.registrations++
	p.listeners[id] = callback

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}, nil
}

func (p *fakeProvider) RenderMarkers(markers []Marker) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.renderedMarkers = append(p.renderedMarkers, markers)
	return nil
}

func (p *fakeProvider) ClearMarkers() {
	p.mu.Lock()
	p.clearMarkersCalls++
	p.mu.Unlock()
}

func (p *fakeProvider) SetMarkersVisibility(visible bool) {
	p.mu.Lock()
	p.markersVisibility = append(p.markersVisibility, visible)
	p.mu.Unlock()
}

func (p *fakeProvider) RenderHeatmap(data HeatmapData) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.heatmapData = append(p.heatmapData, data)
	return nil
}

func (p *fakeProvider) SetHeatmapVisibility(visibility HeatmapVisibility) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.heatmapVisibility = append(p.heatmapVisibility, visibility)
	return nil
}

func (p *fakeProvider) AddControl(control Control, position ControlPosition) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.controls[control.ID()]; ok {
		return errors.New("control already added")
	}
	p.controls[control.ID()] = position
	return nil
}

func (p *fakeProvider) RemoveControl(control Control) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	delete(p.controls, control.ID())
	return nil
}

func (p *fakeProvider) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.destroyCalls++
	p.initialized = false
	p.listeners = make(map[int]func(model.Viewport))
	p.controls = make(map[string]ControlPosition)
}

// emitViewportChange синхронно доставляет событие всем подписчикам
func (p *fakeProvider) emitViewportChange(viewport model.Viewport) {
	p.mu.Lock()
	p.viewport = viewport
	callbacks := make([]func(model.Viewport), 0, len(p.listeners))
	for _, cb := range p.listeners {
		callbacks = append(callbacks, cb)
	}
	p.mu.Unlock()

	for _, cb := range callbacks {
		cb(viewport)
	}
}

func (p *fakeProvider) lastMarkersVisibility() (bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.markersVisibility) == 0 {
		return false, false
	}
	return p.markersVisibility[len(p.markersVisibility)-1], true
}

func (p *fakeProvider) lastHeatmapVisibility() (HeatmapVisibility, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.heatmapVisibility) == 0 {
		return HeatmapVisibility{}, false
	}
	return p.heatmapVisibility[len(p.heatmapVisibility)-1], true
}

func (p *fakeProvider) listenerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

func (p *fakeProvider) registrationCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.registrations
}

func (p *fakeProvider) hasControl(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.controls[id]
	return ok
}

// MockHotelLoader - мок загрузчика отелей
type MockHotelLoader struct {
	mock.Mock
}

func (m *MockHotelLoader) FetchPlaceHotels(ctx context.Context, params model.FetchHotelsParams) (*model.PlaceHotelsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaceHotelsResponse), args.Error(1)
}

// MockWeatherLoader - мок загрузчика погоды
type MockWeatherLoader struct {
	mock.Mock
}

func (m *MockWeatherLoader) FetchWeather(ctx context.Context, params model.FetchWeatherParams) (*model.WeatherData, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeatherData), args.Error(1)
}

func placeP1Response() *model.PlaceHotelsResponse {
	return &model.PlaceHotelsResponse{
		Viewport: model.NewViewport(0, 0, 1, 1),
		Hotels: []model.Hotel{{
			HotelID:         "H1",
			Name:            "Hotel A",
			Latitude:        0.5,
			Longitude:       0.5,
			Price:           100,
			Currency:        "EUR",
			HasAvailability: true,
			DeepLink:        "https://x/H1",
		}},
	}
}

func parisWeather() *model.WeatherData {
	return &model.WeatherData{
		Latitude:    48.85,
		Longitude:   2.3,
		Temperature: 19.6,
		Description: "clear sky",
		Icon:        "01d",
		City:        "Paris",
	}
}
