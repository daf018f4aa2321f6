package model

import (
	"encoding/json"
	"fmt"
)

// Coordinates - точка в градусах WGS84
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LngLat - пара [lng, lat] в порядке GeoJSON
type LngLat [2]float64

func (p LngLat) Lng() float64 { return p[0] }
func (p LngLat) Lat() float64 { return p[1] }

// Viewport - ограничивающий прямоугольник видимой области карты.
// Каноническое представление - углы Low (юго-запад) и High (северо-восток),
// скалярные south/west/north/east вычисляются из них.
type Viewport struct {
	Low  Coordinates
	High Coordinates
}

// NewViewport - создание Viewport из скалярных границ
func NewViewport(south, west, north, east float64) Viewport {
	return Viewport{
		Low:  Coordinates{Latitude: south, Longitude: west},
		High: Coordinates{Latitude: north, Longitude: east},
	}
}

func (v Viewport) South() float64 { return v.Low.Latitude }
func (v Viewport) West() float64  { return v.Low.Longitude }
func (v Viewport) North() float64 { return v.High.Latitude }
func (v Viewport) East() float64  { return v.High.Longitude }

// Center - середина между углами Low и High
func (v Viewport) Center() Coordinates {
	return Coordinates{
		Latitude:  (v.Low.Latitude + v.High.Latitude) / 2,
		Longitude: (v.Low.Longitude + v.High.Longitude) / 2,
	}
}

// Valid проверяет south <= north и west <= east.
// Прямоугольники, пересекающие антимеридиан, не поддерживаются.
func (v Viewport) Valid() bool {
	return v.South() <= v.North() && v.West() <= v.East()
}

// Contains проверяет, попадает ли точка в прямоугольник (границы включительно)
func (v Viewport) Contains(lat, lng float64) bool {
	return lat >= v.South() && lat <= v.North() && lng >= v.West() && lng <= v.East()
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%f,%f → %f,%f]", v.South(), v.West(), v.North(), v.East())
}

type viewportJSON struct {
	South *float64     `json:"south,omitempty"`
	West  *float64     `json:"west,omitempty"`
	North *float64     `json:"north,omitempty"`
	East  *float64     `json:"east,omitempty"`
	High  *Coordinates `json:"high,omitempty"`
	Low   *Coordinates `json:"low,omitempty"`
}

// MarshalJSON пишет обе формы: скаляры и пары углов.
// SDK и провайдер отелей обмениваются именно таким форматом.
func (v Viewport) MarshalJSON() ([]byte, error) {
	south, west, north, east := v.South(), v.West(), v.North(), v.East()
	low, high := v.Low, v.High
	return json.Marshal(viewportJSON{
		South: &south,
		West:  &west,
		North: &north,
		East:  &east,
		High:  &high,
		Low:   &low,
	})
}

// UnmarshalJSON принимает любую из форм; если углы присутствуют, они приоритетнее скаляров.
func (v *Viewport) UnmarshalJSON(data []byte) error {
	var raw viewportJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode viewport: %w", err)
	}

	var out Viewport
	if raw.South != nil {
		out.Low.Latitude = *raw.South
	}
	if raw.West != nil {
		out.Low.Longitude = *raw.West
	}
	if raw.North != nil {
		out.High.Latitude = *raw.North
	}
	if raw.East != nil {
		out.High.Longitude = *raw.East
	}
	if raw.Low != nil {
		out.Low = *raw.Low
	}
	if raw.High != nil {
		out.High = *raw.High
	}

	*v = out
	return nil
}
