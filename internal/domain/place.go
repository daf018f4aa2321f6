package domain

import "github.com/hotel-price-map/pkg/model"

// UpstreamError - конверт ошибки LiteAPI, приходящий в теле ответа с кодом 200
type UpstreamError struct {
	Message string `json:"message"`
}

// Place - место LiteAPI (город, район, достопримечательность)
type Place struct {
	PlaceID          string             `json:"placeId,omitempty"`
	DisplayName      string             `json:"displayName,omitempty"`
	FormattedAddress string             `json:"formattedAddress,omitempty"`
	Types            []string           `json:"types,omitempty"`
	Viewport         *model.Viewport    `json:"viewport,omitempty"`
	Location         *model.Coordinates `json:"location,omitempty"`
}

// PlaceResponse - ответ GET /data/places/{placeId}
type PlaceResponse struct {
	Data  *Place         `json:"data"`
	Error *UpstreamError `json:"error,omitempty"`
}

// Valid - у места есть и рамка, и центр
func (p *PlaceResponse) Valid() bool {
	return p != nil && p.Data != nil && p.Data.Viewport != nil && p.Data.Location != nil
}
