package headless

import "github.com/hotel-price-map/pkg/mapsdk"

// FeatureCollection - GeoJSON-коллекция точек источника тепловой карты
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature - GeoJSON-объект с точечной геометрией
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry - точечная геометрия [lng, lat]
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func pointsToFeatureCollection(points []mapsdk.HeatmapPoint) FeatureCollection {
	features := make([]Feature, 0, len(points))
	for _, p := range points {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{p.LngLat.Lng(), p.LngLat.Lat()},
			},
			Properties: map[string]interface{}{
				"weight": p.EffectiveWeight(),
			},
		})
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// DefaultHeatmapPaint - стиль слоя, если фича не передала свой
var DefaultHeatmapPaint = mapsdk.HeatmapPaintStyle{
	"heatmap-weight":    []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"get", "weight"}, 0, 0, 1, 1},
	"heatmap-intensity": []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"zoom"}, 0, 1, 15, 3},
	"heatmap-color": []interface{}{
		"interpolate", []interface{}{"linear"}, []interface{}{"heatmap-density"},
		0, "rgba(0,0,255,0)",
		0.5, "rgb(0,255,0)",
		1, "rgb(255,0,0)",
	},
	"heatmap-radius":  []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"zoom"}, 0, 2, 9, 20},
	"heatmap-opacity": []interface{}{"interpolate", []interface{}{"linear"}, []interface{}{"zoom"}, 7, 1, 9, 0.6},
}
