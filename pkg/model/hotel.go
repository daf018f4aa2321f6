package model

// Hotel - отель с ценой и ссылкой на бронирование
type Hotel struct {
	HotelID         string  `json:"hotelId"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	HasAvailability bool    `json:"hasAvailability"`
	DeepLink        string  `json:"deepLink"`
}

// LngLat - координаты отеля в порядке GeoJSON
func (h Hotel) LngLat() LngLat {
	return LngLat{h.Longitude, h.Latitude}
}

// Occupancy - состав гостей одного номера
type Occupancy struct {
	Adults   int   `json:"adults" validate:"required,min=1,max=10"`
	Children []int `json:"children,omitempty" validate:"omitempty,dive,min=0,max=17"`
}

// PlaceHotelsResponse - ответ BFF на запрос отелей места
type PlaceHotelsResponse struct {
	Viewport Viewport `json:"viewport"`
	Hotels   []Hotel  `json:"hotels"`
}

// FetchHotelsParams - параметры загрузки отелей из SDK
type FetchHotelsParams struct {
	PlaceID          string      `json:"placeId"`
	Checkin          string      `json:"checkin"`
	Checkout         string      `json:"checkout"`
	Occupancies      []Occupancy `json:"occupancies"`
	Currency         string      `json:"currency"`
	GuestNationality string      `json:"guestNationality"`
	ProxyBaseURL     string      `json:"proxyBaseURL"`
}
