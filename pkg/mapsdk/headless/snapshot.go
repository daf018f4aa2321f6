package headless

import (
	"sort"

	"github.com/hotel-price-map/pkg/mapsdk"
	"github.com/hotel-price-map/pkg/model"
)

// Snapshot - состояние карты на момент вызова
type Snapshot struct {
	Initialized bool           `json:"initialized"`
	Container   string         `json:"container"`
	Style       string         `json:"style"`
	Center      model.LngLat   `json:"center"`
	Zoom        float64        `json:"zoom"`
	Viewport    model.Viewport `json:"viewport"`
	Markers     []MarkerState  `json:"markers"`
	Heatmaps    []HeatmapState `json:"heatmaps"`
	Controls    []ControlState `json:"controls"`
	Listeners   int            `json:"listeners"`
}

type MarkerState struct {
	mapsdk.Marker
	Visible bool `json:"visible"`
}

type HeatmapState struct {
	LayerID  string                   `json:"layerId"`
	SourceID string                   `json:"sourceId"`
	Visible  bool                     `json:"visible"`
	Paint    mapsdk.HeatmapPaintStyle `json:"paint"`
	Data     FeatureCollection        `json:"data"`
}

type ControlState struct {
	ID       string                 `json:"id"`
	Position mapsdk.ControlPosition `json:"position"`
}

// Snapshot возвращает копию текущего состояния карты
func (p *Provider) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		Initialized: p.initialized,
		Container:   p.container,
		Style:       p.style,
		Center:      p.center,
		Zoom:        p.zoom,
		Viewport:    p.bounds,
		Markers:     make([]MarkerState, 0, len(p.markers)),
		Heatmaps:    make([]HeatmapState, 0, len(p.layers)),
		Controls:    make([]ControlState, 0, len(p.controls)),
		Listeners:   len(p.listeners),
	}

	for _, m := range p.markers {
		snap.Markers = append(snap.Markers, MarkerState{Marker: m.marker, Visible: m.visible})
	}
	for _, l := range p.layers {
		snap.Heatmaps = append(snap.Heatmaps, HeatmapState{
			LayerID:  l.id,
			SourceID: l.sourceID,
			Visible:  l.visible,
			Paint:    l.paint,
			Data:     p.sources[l.sourceID],
		})
	}
	sort.Slice(snap.Heatmaps, func(i, j int) bool {
		return snap.Heatmaps[i].LayerID < snap.Heatmaps[j].LayerID
	})
	for _, c := range p.controls {
		snap.Controls = append(snap.Controls, ControlState{ID: c.control.ID(), Position: c.position})
	}

	return snap
}

// Heatmap возвращает состояние слоя тепловой карты по идентификатору
func (p *Provider) Heatmap(layerID string) (HeatmapState, bool) {
	for _, h := range p.Snapshot().Heatmaps {
		if h.LayerID == layerID {
			return h, true
		}
	}
	return HeatmapState{}, false
}
