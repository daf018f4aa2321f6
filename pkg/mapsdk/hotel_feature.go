package mapsdk

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hotel-price-map/pkg/model"
	"go.uber.org/zap"
)

const (
	HotelHeatmapSourceID = "hotel-heatmap-source"
	HotelHeatmapLayerID  = "hotel-heatmap-layer"
)

var (
	ErrNoHotelLoader = errors.New("hotel loader is not configured")
	ErrEmptyResponse = errors.New("empty hotels response")
)

// HotelHeatmapPaint - палитра от синего (дешево) к красному (дорого)
var HotelHeatmapPaint = HeatmapPaintStyle{
	"heatmap-weight":    []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"get", "weight"}, 0, 0, 1, 1},
	"heatmap-intensity": []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"zoom"}, 0, 1, 15, 3},
	"heatmap-color": []interface{}{
		"interpolate", []interface{}{"linear"}, []interface{}{"heatmap-density"},
		0, "rgba(33,102,172,0)",
		0.2, "rgb(103,169,207)",
		0.4, "rgb(209,229,240)",
		0.6, "rgb(253,219,199)",
		0.8, "rgb(239,138,98)",
		1, "rgb(178,24,43)",
	},
	"heatmap-radius":  []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"zoom"}, 0, 2, 9, 20},
	"heatmap-opacity": []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"zoom"}, 7, 1, 9, 0.6},
}

// heatmapState - переключатель тепловой карты и последние точки.
// Эффективная видимость не хранится, а вычисляется из этих двух полей.
type heatmapState struct {
	points  []HeatmapPoint
	visible bool
}

func (s heatmapState) effective() bool {
	return s.visible && len(s.points) > 0
}

// HotelFeature - загрузка отелей, маркеры цен и взаимоисключающий слой тепловой карты
type HotelFeature struct {
	provider MapProvider
	state    *SessionState
	loader   HotelLoader
	logger   *zap.Logger

	mu      sync.Mutex
	heatmap heatmapState
}

// NewHotelFeature - создание фичи отелей поверх общего провайдера и состояния сессии
func NewHotelFeature(provider MapProvider, state *SessionState, loader HotelLoader, logger *zap.Logger) *HotelFeature {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HotelFeature{
		provider: provider,
		state:    state,
		loader:   loader,
		logger:   logger,
	}
}

// LoadHotels загружает отели, кадрирует карту по рамке ответа, рисует маркеры
// и пересчитывает тепловую карту. При ошибке загрузки состояние не меняется.
//
// Параллельные вызовы не упорядочиваются: побеждает ответ, пришедший последним.
func (f *HotelFeature) LoadHotels(ctx context.Context, params model.FetchHotelsParams) error {
	if f.loader == nil {
		return ErrNoHotelLoader
	}

	resp, err := f.loader.FetchPlaceHotels(ctx, params)
	if err != nil {
		return fmt.Errorf("load hotels: %w", err)
	}
	if resp == nil {
		return ErrEmptyResponse
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.provider.SetViewport(resp.Viewport); err != nil {
		return fmt.Errorf("frame hotels viewport: %w", err)
	}

	f.state.SetHotels(resp.Hotels)

	f.provider.ClearMarkers()
	if err := f.provider.RenderMarkers(hotelMarkers(resp.Hotels)); err != nil {
		return fmt.Errorf("render hotel markers: %w", err)
	}

	return f.updateHeatmap(heatmapPoints(resp.Hotels))
}

// Hotels возвращает копию текущего списка отелей
func (f *HotelFeature) Hotels() []model.Hotel {
	return f.state.Hotels()
}

// ToggleHeatmap переключает тепловую карту на противоположное состояние
func (f *HotelFeature) ToggleHeatmap() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.heatmap.visible = !f.heatmap.visible
	f.syncLayers()
}

// SetHeatmapVisible включает или выключает тепловую карту
func (f *HotelFeature) SetHeatmapVisible(visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.heatmap.visible = visible
	f.syncLayers()
}

// IsHeatmapVisible - true только если переключатель включен и есть хотя бы одна точка
func (f *HotelFeature) IsHeatmapVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.heatmap.effective()
}

// Close убирает маркеры и сбрасывает состояние тепловой карты
func (f *HotelFeature) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.provider.ClearMarkers()
	f.heatmap = heatmapState{}
}

// updateHeatmap вызывается под f.mu
func (f *HotelFeature) updateHeatmap(points []HeatmapPoint) error {
	f.heatmap.points = points

	if err := f.provider.RenderHeatmap(HeatmapData{
		Points:   points,
		SourceID: HotelHeatmapSourceID,
		LayerID:  HotelHeatmapLayerID,
		Paint:    HotelHeatmapPaint,
	}); err != nil {
		return fmt.Errorf("render hotel heatmap: %w", err)
	}

	f.syncLayers()
	return nil
}

// syncLayers приводит слои провайдера к состоянию фичи: маркеры и тепловая карта
// взаимоисключающие. Без точек переключатель принудительно выключается.
// Вызывается под f.mu.
func (f *HotelFeature) syncLayers() {
	if len(f.heatmap.points) == 0 {
		f.heatmap.visible = false
	}

	show := f.heatmap.effective()

	if err := f.provider.SetHeatmapVisibility(HeatmapVisibility{
		Visible: show,
		LayerID: HotelHeatmapLayerID,
	}); err != nil {
		f.logger.Warn("Failed to set heatmap visibility", zap.Bool("visible", show), zap.Error(err))
	}
	f.provider.SetMarkersVisibility(!show)
}

func hotelMarkers(hotels []model.Hotel) []Marker {
	markers := make([]Marker, 0, len(hotels))
	for _, h := range hotels {
		markers = append(markers, Marker{
			Label:  PriceLabel(h.Price, h.Currency),
			Link:   h.DeepLink,
			Title:  h.Name,
			LngLat: h.LngLat(),
			Type:   MarkerTypeHotel,
		})
	}
	return markers
}

func heatmapPoints(hotels []model.Hotel) []HeatmapPoint {
	points := make([]HeatmapPoint, 0, len(hotels))
	for _, h := range hotels {
		weight := h.Price
		points = append(points, HeatmapPoint{
			LngLat: h.LngLat(),
			Weight: &weight,
		})
	}
	return points
}
