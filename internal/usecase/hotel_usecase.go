package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hotel-price-map/internal/config"
	"github.com/hotel-price-map/internal/domain"
	"github.com/hotel-price-map/internal/domain/repository"
	"github.com/hotel-price-map/internal/infrastructure/httpx"
	"github.com/hotel-price-map/internal/pkg/errors"
	"github.com/hotel-price-map/internal/pkg/metrics"
	"github.com/hotel-price-map/internal/pkg/utils"
	"github.com/hotel-price-map/internal/usecase/dto"
	"github.com/hotel-price-map/pkg/model"
)

// HotelUseCase - use case для отелей места: цены, ссылки на бронирование, координаты маркеров
type HotelUseCase struct {
	liteAPIRepo repository.LiteAPIRepository
	cacheRepo   repository.CacheRepository
	hotelsCfg   config.HotelsConfig
	logger      *zap.Logger
	cacheTTL    time.Duration

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewHotelUseCase - создание нового HotelUseCase. cacheRepo может быть nil (кеш выключен),
// rnd nil - источник случайности от текущего времени.
func NewHotelUseCase(
	liteAPIRepo repository.LiteAPIRepository,
	cacheRepo repository.CacheRepository,
	hotelsCfg config.HotelsConfig,
	rnd *rand.Rand,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *HotelUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HotelUseCase{
		liteAPIRepo: liteAPIRepo,
		cacheRepo:   cacheRepo,
		hotelsCfg:   hotelsCfg,
		logger:      logger,
		cacheTTL:    cacheTTL,
		rnd:         rnd,
	}
}

// GetPlace - рамка и центр места (с кешированием)
func (uc *HotelUseCase) GetPlace(ctx context.Context, placeID string) (*dto.PlaceResponse, error) {
	place, err := uc.place(ctx, placeID)
	if err != nil {
		return nil, err
	}

	return &dto.PlaceResponse{
		PlaceID:          placeID,
		DisplayName:      place.Data.DisplayName,
		FormattedAddress: place.Data.FormattedAddress,
		Viewport:         *place.Data.Viewport,
		Location:         *place.Data.Location,
	}, nil
}

// GetPlaceHotels - отели места с ценами. Отели без цены отбрасываются.
func (uc *HotelUseCase) GetPlaceHotels(ctx context.Context, placeID string, req dto.PlaceHotelsRequest) (*model.PlaceHotelsResponse, error) {
	req.ApplyDefaults(uc.hotelsCfg.GuestNationality)

	place, err := uc.place(ctx, placeID)
	if err != nil {
		return nil, err
	}

	rates, err := uc.liteAPIRepo.GetHotelRates(ctx, domain.RatesRequest{
		PlaceID:          placeID,
		Checkin:          req.Checkin,
		Checkout:         req.Checkout,
		Occupancies:      req.Occupancies,
		Currency:         req.Currency,
		Language:         req.Language,
		GuestNationality: req.GuestNationality,
	})
	if err != nil {
		uc.logger.Error("Failed to fetch hotel rates", zap.String("place_id", placeID), zap.Error(err))
		return nil, upstreamError(err)
	}
	if !rates.Valid() {
		uc.logger.Warn("Invalid rates data received", zap.String("place_id", placeID))
		return nil, errors.ErrInvalidRatesData
	}

	// Цена по hotelId
	prices := make(map[string]domain.Amount, len(rates.Data))
	for _, r := range rates.Data {
		if price, ok := r.Price(); ok {
			prices[r.HotelID] = price
		}
	}

	hotels := make([]model.Hotel, 0, len(prices))
	for _, h := range rates.Hotels {
		price, ok := prices[h.ID]
		if !ok {
			continue
		}

		lat, lon := uc.jitter(place.Data.Location.Latitude, place.Data.Location.Longitude)
		hotels = append(hotels, model.Hotel{
			HotelID:         h.ID,
			Name:            h.Name,
			Latitude:        lat,
			Longitude:       lon,
			Price:           price.Amount,
			Currency:        price.Currency,
			HasAvailability: true,
			DeepLink:        uc.DeepLink(h.ID, placeID, req),
		})
	}

	metrics.HotelsReturned.Observe(float64(len(hotels)))
	uc.logger.Info("Place hotels resolved",
		zap.String("place_id", placeID),
		zap.Int("rates", len(rates.Data)),
		zap.Int("hotels", len(hotels)))

	return &model.PlaceHotelsResponse{
		Viewport: *place.Data.Viewport,
		Hotels:   hotels,
	}, nil
}

// DeepLink - ссылка на страницу отеля white-label сайта.
// Порядок параметров: placeId, checkin, checkout, currency, language, rooms, adults.
func (uc *HotelUseCase) DeepLink(hotelID, placeID string, req dto.PlaceHotelsRequest) string {
	params := [][2]string{
		{"placeId", placeID},
		{"checkin", req.Checkin},
		{"checkout", req.Checkout},
		{"currency", req.Currency},
		{"language", req.Language},
		{"rooms", strconv.Itoa(req.Rooms)},
		{"adults", strconv.Itoa(req.Adults)},
	}

	var query strings.Builder
	for i, p := range params {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(p[0]))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p[1]))
	}

	return fmt.Sprintf("%s/hotels/%s?%s", uc.hotelsCfg.DeepLinkBaseURL, url.PathEscape(hotelID), query.String())
}

func (uc *HotelUseCase) place(ctx context.Context, placeID string) (*domain.PlaceResponse, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPlace(ctx, placeID)
		if err != nil {
			uc.logger.Warn("Failed to get place from cache", zap.String("place_id", placeID), zap.Error(err))
		}
		if cached.Valid() {
			return cached, nil
		}
	}

	place, err := uc.liteAPIRepo.GetPlace(ctx, placeID)
	if err != nil {
		uc.logger.Error("Failed to fetch place", zap.String("place_id", placeID), zap.Error(err))
		return nil, upstreamError(err)
	}
	if !place.Valid() {
		uc.logger.Warn("Invalid place data received", zap.String("place_id", placeID))
		return nil, errors.ErrInvalidPlaceData
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPlace(ctx, placeID, place, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache place", zap.String("place_id", placeID), zap.Error(err))
		}
	}

	return place, nil
}

func (uc *HotelUseCase) jitter(lat, lon float64) (float64, float64) {
	uc.rndMu.Lock()
	defer uc.rndMu.Unlock()
	return utils.RandomPointNear(uc.rnd, lat, lon, uc.hotelsCfg.JitterRadiusKm)
}

// upstreamError - ошибка LiteAPI в AppError: открытый breaker -> 503, прочее -> 500 с текстом
func upstreamError(err error) error {
	if stderrors.Is(err, httpx.ErrCircuitOpen) {
		return errors.ErrServiceUnavailable
	}
	return errors.ErrHotelsFetchFailed.WithDetails(map[string]interface{}{
		"message": err.Error(),
	})
}
