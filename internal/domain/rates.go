package domain

import "github.com/hotel-price-map/pkg/model"

// RatesRequest - тело POST /hotels/rates
type RatesRequest struct {
	PlaceID          string            `json:"placeId"`
	Checkin          string            `json:"checkin"`
	Checkout         string            `json:"checkout"`
	Occupancies      []model.Occupancy `json:"occupancies"`
	Currency         string            `json:"currency"`
	Language         string            `json:"language"`
	GuestNationality string            `json:"guestNationality"`
	MaxRatesPerHotel int               `json:"maxRatesPerHotel,omitempty"`
}

// Amount - сумма в валюте
type Amount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type RetailRate struct {
	Total                 []Amount `json:"total,omitempty"`
	SuggestedSellingPrice []Amount `json:"suggestedSellingPrice,omitempty"`
}

type Rate struct {
	RateID     string     `json:"rateId,omitempty"`
	Name       string     `json:"name,omitempty"`
	RetailRate RetailRate `json:"retailRate"`
}

type RoomType struct {
	RoomTypeID            string  `json:"roomTypeId,omitempty"`
	OfferID               string  `json:"offerId,omitempty"`
	OfferRetailRate       *Amount `json:"offerRetailRate,omitempty"`
	SuggestedSellingPrice *Amount `json:"suggestedSellingPrice,omitempty"`
	Rates                 []Rate  `json:"rates,omitempty"`
}

// HotelRates - предложения одного отеля
type HotelRates struct {
	HotelID   string     `json:"hotelId"`
	RoomTypes []RoomType `json:"roomTypes"`
}

// HotelInfo - справочные данные отеля из ответа тарифов
type HotelInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MainPhoto string  `json:"main_photo,omitempty"`
	Address   string  `json:"address,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
}

// RatesResponse - ответ POST /hotels/rates
type RatesResponse struct {
	Data   []HotelRates   `json:"data"`
	Hotels []HotelInfo    `json:"hotels"`
	Error  *UpstreamError `json:"error,omitempty"`
}

// Valid - в ответе есть оба массива
func (r *RatesResponse) Valid() bool {
	return r != nil && r.Data != nil && r.Hotels != nil
}

// Price - цена первого типа номера. Порядок: offerRetailRate, suggestedSellingPrice,
// затем suggestedSellingPrice и total первого тарифа. false, если цены нет.
func (h HotelRates) Price() (Amount, bool) {
	if len(h.RoomTypes) == 0 {
		return Amount{}, false
	}
	rt := h.RoomTypes[0]

	if rt.OfferRetailRate != nil {
		return *rt.OfferRetailRate, true
	}
	if rt.SuggestedSellingPrice != nil {
		return *rt.SuggestedSellingPrice, true
	}
	if len(rt.Rates) > 0 {
		retail := rt.Rates[0].RetailRate
		if len(retail.SuggestedSellingPrice) > 0 {
			return retail.SuggestedSellingPrice[0], true
		}
		if len(retail.Total) > 0 {
			return retail.Total[0], true
		}
	}
	return Amount{}, false
}
