package mapsdk

import (
	"context"
	"errors"

	"github.com/hotel-price-map/pkg/model"
)

// ErrNotInitialized возвращается провайдером, если карта не инициализирована или уже уничтожена.
var ErrNotInitialized = errors.New("map not initialized")

// ProviderConfig - параметры инициализации провайдера карты
type ProviderConfig struct {
	Selector    string
	AccessToken string
	Style       string
	Center      *model.LngLat
	Zoom        *float64
}

// MarkerType - тип маркера на карте
type MarkerType string

const (
	MarkerTypeHotel   MarkerType = "Hotel"
	MarkerTypeWeather MarkerType = "Weather"
)

// Marker - визуальный маркер: подпись, ссылка и подсказка вместо DOM-элемента
type Marker struct {
	Label  string       `json:"label"`
	Link   string       `json:"link,omitempty"`
	Title  string       `json:"title,omitempty"`
	LngLat model.LngLat `json:"lnglat"`
	Type   MarkerType   `json:"type"`
}

// HeatmapPoint - точка тепловой карты. Вес по умолчанию 1.
type HeatmapPoint struct {
	LngLat model.LngLat `json:"lnglat"`
	Weight *float64     `json:"weight,omitempty"`
}

// EffectiveWeight возвращает вес точки или 1, если вес не задан
func (p HeatmapPoint) EffectiveWeight() float64 {
	if p.Weight == nil {
		return 1
	}
	return *p.Weight
}

// HeatmapPaintStyle - paint-свойства слоя тепловой карты в виде выражений стиля
type HeatmapPaintStyle map[string]interface{}

// HeatmapData - данные и идентификаторы источника/слоя тепловой карты
type HeatmapData struct {
	Points   []HeatmapPoint
	SourceID string
	LayerID  string
	Paint    HeatmapPaintStyle
}

// HeatmapVisibility - видимость слоя тепловой карты
type HeatmapVisibility struct {
	Visible bool
	LayerID string
}

// ControlPosition - угол карты, в котором размещается контрол
type ControlPosition string

const (
	PositionTopLeft     ControlPosition = "top-left"
	PositionTopRight    ControlPosition = "top-right"
	PositionBottomLeft  ControlPosition = "bottom-left"
	PositionBottomRight ControlPosition = "bottom-right"
)

// Control - контрол, который провайдер размещает поверх карты
type Control interface {
	ID() string
}

// MapProvider - абстракция движка отрисовки карты.
// Фичи работают с картой только через этот интерфейс.
type MapProvider interface {
	// Initialize блокируется до готовности карты или отмены ctx
	Initialize(ctx context.Context, cfg ProviderConfig) error

	SetCenter(lng, lat float64) error
	SetZoom(zoom float64) error
	Resize() error
	Viewport() (model.Viewport, error)
	SetViewport(viewport model.Viewport) error

	// OnViewportChange подписывает callback на изменение видимой области после окончания
	// движения карты. Провайдер сам выполняет debounce. Возвращает функцию отписки.
	OnViewportChange(callback func(model.Viewport)) (func(), error)

	RenderMarkers(markers []Marker) error
	ClearMarkers()
	SetMarkersVisibility(visible bool)

	RenderHeatmap(data HeatmapData) error
	SetHeatmapVisibility(visibility HeatmapVisibility) error

	AddControl(control Control, position ControlPosition) error
	RemoveControl(control Control) error

	// Destroy освобождает карту вместе со всеми маркерами, слоями, контролами и подписками
	Destroy()
}
