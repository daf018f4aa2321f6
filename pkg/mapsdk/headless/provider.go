// Package headless - провайдер карты без отрисовки. Хранит камеру, маркеры, слои
// тепловой карты и контролы как данные, вычисляет видимую область в проекции
// Web Mercator и рассылает изменения видимой области с debounce.
//
// Используется в playground, в тестах и на сервере, где нет браузера.
package headless

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hotel-price-map/pkg/mapsdk"
	"github.com/hotel-price-map/pkg/model"
	"go.uber.org/zap"
)

const (
	DefaultStyle        = "mapbox://styles/mapbox/streets-v12"
	DefaultZoom         = 8.0
	DefaultDebounce     = time.Second
	DefaultWidth        = 1024
	DefaultHeight       = 768
	DefaultMaxFitZoom   = 15.0
	MinZoom             = 0.0
	MaxZoom             = 22.0
	maxMercatorLat      = 85.0511
	tileSize            = 512.0
	NavigationControlID = "navigation"
	GeolocateControlID  = "geolocate"
)

var (
	ErrAlreadyInitialized = errors.New("map already initialized")
	ErrControlExists      = errors.New("control already added")
	ErrControlNotFound    = errors.New("control not found")
)

type builtinControl string

func (c builtinControl) ID() string { return string(c) }

type markerEntry struct {
	marker  mapsdk.Marker
	visible bool
}

type heatmapLayer struct {
	id       string
	sourceID string
	paint    mapsdk.HeatmapPaintStyle
	visible  bool
}

type controlEntry struct {
	control  mapsdk.Control
	position mapsdk.ControlPosition
}

type listener struct {
	id       string
	callback func(model.Viewport)
}

// Provider - реализация mapsdk.MapProvider без отрисовки
type Provider struct {
	logger     *zap.Logger
	debounce   time.Duration
	maxFitZoom float64

	mu          sync.Mutex
	initialized bool
	container   string
	style       string
	accessToken string

	width, height      int
	pendingW, pendingH int
	center             model.LngLat
	zoom               float64
	bounds             model.Viewport

	markers  []*markerEntry
	sources  map[string]FeatureCollection
	layers   map[string]*heatmapLayer
	controls []controlEntry

	listeners  []listener
	timer      *time.Timer
	generation uint64

	// dispatchMu упорядочивает доставку событий подписчикам
	dispatchMu sync.Mutex
}

// Option - настройка провайдера
type Option func(*Provider)

// WithDebounce задает паузу после последнего движения карты перед уведомлением подписчиков
func WithDebounce(d time.Duration) Option {
	return func(p *Provider) { p.debounce = d }
}

// WithCanvasSize задает размер области отрисовки в пикселях
func WithCanvasSize(width, height int) Option {
	return func(p *Provider) {
		p.width, p.height = width, height
		p.pendingW, p.pendingH = width, height
	}
}

// WithMaxFitZoom ограничивает приближение при кадрировании по рамке
func WithMaxFitZoom(zoom float64) Option {
	return func(p *Provider) { p.maxFitZoom = zoom }
}

// New создает провайдер; карта готова к работе после Initialize
func New(logger *zap.Logger, opts ...Option) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provider{
		logger:     logger,
		debounce:   DefaultDebounce,
		maxFitZoom: DefaultMaxFitZoom,
		width:      DefaultWidth,
		height:     DefaultHeight,
		pendingW:   DefaultWidth,
		pendingH:   DefaultHeight,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Factory - фабрика для mapsdk.Dependencies.NewProvider
func Factory(logger *zap.Logger, opts ...Option) func() mapsdk.MapProvider {
	return func() mapsdk.MapProvider {
		return New(logger, opts...)
	}
}

func (p *Provider) Initialize(ctx context.Context, cfg mapsdk.ProviderConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return ErrAlreadyInitialized
	}

	p.container = strings.TrimPrefix(cfg.Selector, "#")
	p.accessToken = cfg.AccessToken
	p.style = cfg.Style
	if p.style == "" {
		p.style = DefaultStyle
	}

	p.center = model.LngLat{0, 0}
	if cfg.Center != nil {
		p.center = clampCenter(*cfg.Center)
	}
	p.zoom = DefaultZoom
	if cfg.Zoom != nil && *cfg.Zoom != 0 {
		p.zoom = clampZoom(*cfg.Zoom)
	}
	p.bounds = p.boundsFor(p.center, p.zoom)

	p.markers = nil
	p.sources = make(map[string]FeatureCollection)
	p.layers = make(map[string]*heatmapLayer)
	p.controls = []controlEntry{
		{control: builtinControl(NavigationControlID), position: mapsdk.PositionTopRight},
		{control: builtinControl(GeolocateControlID), position: mapsdk.PositionTopRight},
	}
	p.initialized = true

	p.logger.Debug("Headless map initialized",
		zap.String("container", p.container),
		zap.String("style", p.style),
		zap.Float64("zoom", p.zoom))

	return nil
}

func (p *Provider) SetCenter(lng, lat float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	p.moveLocked(model.LngLat{lng, lat}, p.zoom)
	return nil
}

func (p *Provider) SetZoom(zoom float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	p.moveLocked(p.center, zoom)
	return nil
}

// Pan сдвигает центр карты, имитируя перетаскивание пользователем
func (p *Provider) Pan(dLng, dLat float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	p.moveLocked(model.LngLat{p.center.Lng() + dLng, p.center.Lat() + dLat}, p.zoom)
	return nil
}

// SetContainerSize меняет размер контейнера; область отрисовки обновится после Resize
func (p *Provider) SetContainerSize(width, height int) {
	p.mu.Lock()
	p.pendingW, p.pendingH = width, height
	p.mu.Unlock()
}

func (p *Provider) Resize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	if p.pendingW > 0 && p.pendingH > 0 {
		p.width, p.height = p.pendingW, p.pendingH
	}
	p.moveLocked(p.center, p.zoom)
	return nil
}

func (p *Provider) Viewport() (model.Viewport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return model.Viewport{}, mapsdk.ErrNotInitialized
	}
	return p.bounds, nil
}

// SetViewport кадрирует карту так, чтобы рамка целиком попала в область отрисовки.
// Приближение ограничено maxFitZoom, чтобы не увеличивать карту слишком сильно для одного отеля.
func (p *Provider) SetViewport(viewport model.Viewport) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	if !viewport.Valid() {
		return fmt.Errorf("invalid viewport %s", viewport)
	}

	center := viewport.Center()
	p.moveLocked(model.LngLat{center.Longitude, center.Latitude}, p.fitZoom(viewport))
	return nil
}

func (p *Provider) OnViewportChange(callback func(model.Viewport)) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, mapsdk.ErrNotInitialized
	}

	id := uuid.NewString()
	p.listeners = append(p.listeners, listener{id: id, callback: callback})

	var once sync.Once
	return func() {
		once.Do(func() { p.removeListener(id) })
	}, nil
}

func (p *Provider) RenderMarkers(markers []mapsdk.Marker) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	for _, m := range markers {
		p.markers = append(p.markers, &markerEntry{marker: m, visible: true})
	}
	return nil
}

func (p *Provider) ClearMarkers() {
	p.mu.Lock()
	p.markers = nil
	p.mu.Unlock()
}

func (p *Provider) SetMarkersVisibility(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, m := range p.markers {
		m.visible = visible
	}
}

func (p *Provider) RenderHeatmap(data mapsdk.HeatmapData) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}

	collection := pointsToFeatureCollection(data.Points)
	if _, ok := p.sources[data.SourceID]; ok {
		p.sources[data.SourceID] = collection
		return nil
	}

	paint := data.Paint
	if paint == nil {
		paint = DefaultHeatmapPaint
	}
	p.sources[data.SourceID] = collection
	p.layers[data.LayerID] = &heatmapLayer{
		id:       data.LayerID,
		sourceID: data.SourceID,
		paint:    paint,
		visible:  false,
	}
	return nil
}

func (p *Provider) SetHeatmapVisibility(visibility mapsdk.HeatmapVisibility) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	if layer, ok := p.layers[visibility.LayerID]; ok {
		layer.visible = visibility.Visible
	}
	return nil
}

func (p *Provider) AddControl(control mapsdk.Control, position mapsdk.ControlPosition) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	for _, c := range p.controls {
		if c.control.ID() == control.ID() {
			return fmt.Errorf("%w: %s", ErrControlExists, control.ID())
		}
	}
	if position == "" {
		position = mapsdk.PositionTopRight
	}
	p.controls = append(p.controls, controlEntry{control: control, position: position})
	return nil
}

func (p *Provider) RemoveControl(control mapsdk.Control) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return mapsdk.ErrNotInitialized
	}
	for i, c := range p.controls {
		if c.control.ID() == control.ID() {
			p.controls = append(p.controls[:i], p.controls[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrControlNotFound, control.ID())
}

// Destroy останавливает отложенную рассылку и сбрасывает маркеры, слои, контролы и подписки
func (p *Provider) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.generation++
	p.listeners = nil
	p.markers = nil
	p.sources = nil
	p.layers = nil
	p.controls = nil

	if p.initialized {
		p.logger.Debug("Headless map destroyed", zap.String("container", p.container))
	}
	p.initialized = false
}

// moveLocked меняет камеру и планирует уведомление подписчиков. Вызывается под p.mu.
func (p *Provider) moveLocked(center model.LngLat, zoom float64) {
	p.center = clampCenter(center)
	p.zoom = clampZoom(zoom)
	p.bounds = p.boundsFor(p.center, p.zoom)
	p.scheduleViewportChangeLocked()
}

// scheduleViewportChangeLocked перезапускает таймер debounce. Вызывается под p.mu.
func (p *Provider) scheduleViewportChangeLocked() {
	if len(p.listeners) == 0 {
		return
	}

	p.generation++
	gen := p.generation
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, func() {
		p.fireViewportChange(gen)
	})
}

func (p *Provider) fireViewportChange(gen uint64) {
	p.dispatchMu.Lock()
	defer p.dispatchMu.Unlock()

	p.mu.Lock()
	if !p.initialized || gen != p.generation {
		p.mu.Unlock()
		return
	}
	viewport := p.bounds
	callbacks := make([]func(model.Viewport), 0, len(p.listeners))
	for _, l := range p.listeners {
		callbacks = append(callbacks, l.callback)
	}
	p.mu.Unlock()

	for _, cb := range callbacks {
		cb(viewport)
	}
}

func (p *Provider) removeListener(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, l := range p.listeners {
		if l.id == id {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

// degreesPerPixel - градусов долготы на пиксель при данном zoom
func degreesPerPixel(zoom float64) float64 {
	return 360 / (tileSize * math.Pow(2, zoom))
}

func (p *Provider) boundsFor(center model.LngLat, zoom float64) model.Viewport {
	dpp := degreesPerPixel(zoom)
	halfLng := float64(p.width) * dpp / 2
	halfLat := float64(p.height) * dpp * math.Cos(center.Lat()*math.Pi/180) / 2

	return model.NewViewport(
		math.Max(center.Lat()-halfLat, -maxMercatorLat),
		math.Max(center.Lng()-halfLng, -180),
		math.Min(center.Lat()+halfLat, maxMercatorLat),
		math.Min(center.Lng()+halfLng, 180),
	)
}

// fitZoom - максимальный zoom, при котором рамка целиком видна
func (p *Provider) fitZoom(viewport model.Viewport) float64 {
	zoom := p.maxFitZoom

	lngSpan := viewport.East() - viewport.West()
	if lngSpan > 0 {
		zoom = math.Min(zoom, math.Log2(float64(p.width)*360/(tileSize*lngSpan)))
	}

	latSpan := viewport.North() - viewport.South()
	if latSpan > 0 {
		cosLat := math.Cos(viewport.Center().Latitude * math.Pi / 180)
		zoom = math.Min(zoom, math.Log2(float64(p.height)*360*cosLat/(tileSize*latSpan)))
	}

	return clampZoom(zoom)
}

func clampZoom(zoom float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, zoom))
}

func clampCenter(c model.LngLat) model.LngLat {
	return model.LngLat{
		math.Max(-180, math.Min(180, c.Lng())),
		math.Max(-maxMercatorLat, math.Min(maxMercatorLat, c.Lat())),
	}
}
