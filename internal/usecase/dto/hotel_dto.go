package dto

import "github.com/hotel-price-map/pkg/model"

// PlaceHotelsRequest - тело POST /api/map/places/{placeId}/hotels
type PlaceHotelsRequest struct {
	Checkin          string            `json:"checkin" validate:"required,isodate"`
	Checkout         string            `json:"checkout" validate:"required,isodate"`
	Adults           int               `json:"adults,omitempty" validate:"omitempty,min=1,max=50"`
	Rooms            int               `json:"rooms,omitempty" validate:"omitempty,min=1,max=20"`
	Currency         string            `json:"currency,omitempty" validate:"omitempty,len=3"`
	Language         string            `json:"language,omitempty" validate:"omitempty,min=2,max=5"`
	GuestNationality string            `json:"guestNationality,omitempty" validate:"omitempty,min=2,max=3"`
	Occupancies      []model.Occupancy `json:"occupancies" validate:"omitempty,max=20,dive"`
}

// ApplyDefaults заполняет необязательные поля: валюта EUR, язык en,
// взрослые - сумма по номерам (иначе 2), номера - число размещений (иначе 1)
func (r *PlaceHotelsRequest) ApplyDefaults(guestNationality string) {
	if r.Currency == "" {
		r.Currency = "EUR"
	}
	if r.Language == "" {
		r.Language = "en"
	}
	if r.GuestNationality == "" {
		r.GuestNationality = guestNationality
	}
	if r.GuestNationality == "" {
		r.GuestNationality = "EU"
	}
	if r.Occupancies == nil {
		r.Occupancies = []model.Occupancy{}
	}
	if r.Adults == 0 {
		for _, occ := range r.Occupancies {
			r.Adults += occ.Adults
		}
		if r.Adults == 0 {
			r.Adults = 2
		}
	}
	if r.Rooms == 0 {
		r.Rooms = len(r.Occupancies)
		if r.Rooms == 0 {
			r.Rooms = 1
		}
	}
}

// PlaceResponse - рамка и центр места
type PlaceResponse struct {
	PlaceID          string            `json:"placeId"`
	DisplayName      string            `json:"displayName,omitempty"`
	FormattedAddress string            `json:"formattedAddress,omitempty"`
	Viewport         model.Viewport    `json:"viewport"`
	Location         model.Coordinates `json:"location"`
}
