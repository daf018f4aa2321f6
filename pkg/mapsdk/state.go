package mapsdk

import (
	"sync"

	"github.com/hotel-price-map/pkg/model"
)

// SessionState - общее состояние сессии карты. Один экземпляр на карту,
// разделяется по ссылке между HotelFeature и корнем композиции.
type SessionState struct {
	mu     sync.RWMutex
	hotels []model.Hotel
}

// NewSessionState - создание пустого состояния сессии
func NewSessionState() *SessionState {
	return &SessionState{hotels: []model.Hotel{}}
}

// Hotels возвращает копию текущего списка отелей
func (s *SessionState) Hotels() []model.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Hotel, len(s.hotels))
	copy(out, s.hotels)
	return out
}

// SetHotels заменяет список отелей целиком
func (s *SessionState) SetHotels(hotels []model.Hotel) {
	next := make([]model.Hotel, len(hotels))
	copy(next, hotels)

	s.mu.Lock()
	s.hotels = next
	s.mu.Unlock()
}

// Clear очищает список отелей
func (s *SessionState) Clear() {
	s.mu.Lock()
	s.hotels = []model.Hotel{}
	s.mu.Unlock()
}
