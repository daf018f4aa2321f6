package mapsdk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hotel-price-map/pkg/model"
)

func newHotelFeatureForTest(loader HotelLoader) (*HotelFeature, *fakeProvider) {
	provider := newFakeProvider()
	provider.initialized = true
	return NewHotelFeature(provider, NewSessionState(), loader, zap.NewNop()), provider
}

func TestHotelFeature_LoadHotels(t *testing.T) {
	ctx := context.Background()

	t.Run("place with one hotel", func(t *testing.T) {
		loader := new(MockHotelLoader)
		params := model.FetchHotelsParams{PlaceID: "P1", ProxyBaseURL: "http://localhost:3001"}
		loader.On("FetchPlaceHotels", mock.Anything, params).Return(placeP1Response(), nil)

		feature, provider := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, params))

		assert.Equal(t, placeP1Response().Hotels, feature.Hotels())

		require.Len(t, provider.setViewportCalls, 1)
		assert.Equal(t, model.NewViewport(0, 0, 1, 1), provider.setViewportCalls[0])

		require.Len(t, provider.renderedMarkers, 1)
		require.Len(t, provider.renderedMarkers[0], 1)
		marker := provider.renderedMarkers[0][0]
		assert.Contains(t, marker.Label, "100")
		assert.Contains(t, marker.Label, "€")
		assert.Equal(t, "https://x/H1", marker.Link)
		assert.Equal(t, "Hotel A", marker.Title)
		assert.Equal(t, model.LngLat{0.5, 0.5}, marker.LngLat)
		assert.Equal(t, MarkerTypeHotel, marker.Type)

		require.Len(t, provider.heatmapData, 1)
		data := provider.heatmapData[0]
		assert.Equal(t, HotelHeatmapSourceID, data.SourceID)
		assert.Equal(t, HotelHeatmapLayerID, data.LayerID)
		require.Len(t, data.Points, 1)
		assert.Equal(t, 100.0, data.Points[0].EffectiveWeight())

		// тепловая карта выключена по умолчанию, маркеры видны
		visible, ok := provider.lastMarkersVisibility()
		require.True(t, ok)
		assert.True(t, visible)
		assert.False(t, feature.IsHeatmapVisible())

		loader.AssertExpectations(t)
	})

	t.Run("markers are replaced on reload", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(placeP1Response(), nil)

		feature, provider := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))

		assert.Equal(t, 2, provider.clearMarkersCalls)
		assert.Len(t, provider.renderedMarkers, 2)
		assert.Len(t, feature.Hotels(), 1)
	})

	t.Run("fetch error leaves state untouched", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.MatchedBy(func(p model.FetchHotelsParams) bool {
			return p.PlaceID == "P1"
		})).Return(placeP1Response(), nil)
		upstreamErr := errors.New("status 502")
		loader.On("FetchPlaceHotels", mock.Anything, mock.MatchedBy(func(p model.FetchHotelsParams) bool {
			return p.PlaceID == "BROKEN"
		})).Return(nil, upstreamErr)

		feature, provider := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))

		err := feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "BROKEN"})
		require.Error(t, err)
		assert.ErrorIs(t, err, upstreamErr)

		assert.Len(t, feature.Hotels(), 1)
		assert.Len(t, provider.setViewportCalls, 1)
		assert.Len(t, provider.renderedMarkers, 1)
	})

	t.Run("nil response", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(nil, nil)

		feature, _ := newHotelFeatureForTest(loader)
		assert.ErrorIs(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}), ErrEmptyResponse)
	})

	t.Run("no loader", func(t *testing.T) {
		feature, _ := newHotelFeatureForTest(nil)
		assert.ErrorIs(t, feature.LoadHotels(ctx, model.FetchHotelsParams{}), ErrNoHotelLoader)
	})

	t.Run("hotels are returned as a copy", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(placeP1Response(), nil)

		feature, _ := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))

		hotels := feature.Hotels()
		hotels[0].Name = "changed"
		assert.Equal(t, "Hotel A", feature.Hotels()[0].Name)
	})
}

// Параллельные загрузки не упорядочены: в состоянии остается ответ, пришедший последним,
// даже если запрос был отправлен раньше.
func TestHotelFeature_LoadHotels_LastResponseWins(t *testing.T) {
	release := make(chan struct{})
	slowStarted := make(chan struct{})

	slow := &model.PlaceHotelsResponse{
		Viewport: model.NewViewport(10, 10, 11, 11),
		Hotels:   []model.Hotel{{HotelID: "SLOW", Price: 1, Currency: "USD"}},
	}
	fast := &model.PlaceHotelsResponse{
		Viewport: model.NewViewport(20, 20, 21, 21),
		Hotels:   []model.Hotel{{HotelID: "FAST", Price: 2, Currency: "USD"}},
	}

	loader := new(MockHotelLoader)
	loader.On("FetchPlaceHotels", mock.Anything, mock.MatchedBy(func(p model.FetchHotelsParams) bool {
		return p.PlaceID == "SLOW"
	})).Run(func(mock.Arguments) {
		close(slowStarted)
		<-release
	}).Return(slow, nil)
	loader.On("FetchPlaceHotels", mock.Anything, mock.MatchedBy(func(p model.FetchHotelsParams) bool {
		return p.PlaceID == "FAST"
	})).Return(fast, nil)

	feature, provider := newHotelFeatureForTest(loader)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, feature.LoadHotels(context.Background(), model.FetchHotelsParams{PlaceID: "SLOW"}))
	}()

	select {
	case <-slowStarted:
	case <-time.After(time.Second):
		t.Fatal("slow request did not start")
	}

	require.NoError(t, feature.LoadHotels(context.Background(), model.FetchHotelsParams{PlaceID: "FAST"}))
	assert.Equal(t, "FAST", feature.Hotels()[0].HotelID)

	close(release)
	wg.Wait()

	assert.Equal(t, "SLOW", feature.Hotels()[0].HotelID)
	require.Len(t, provider.setViewportCalls, 2)
	assert.Equal(t, slow.Viewport, provider.setViewportCalls[1])
}

func TestHotelFeature_Heatmap(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle on shows heatmap and hides markers", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(placeP1Response(), nil)

		feature, provider := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))

		feature.SetHeatmapVisible(true)

		assert.True(t, feature.IsHeatmapVisible())
		vis, ok := provider.lastHeatmapVisibility()
		require.True(t, ok)
		assert.Equal(t, HeatmapVisibility{Visible: true, LayerID: "hotel-heatmap-layer"}, vis)
		markers, _ := provider.lastMarkersVisibility()
		assert.False(t, markers)

		feature.SetHeatmapVisible(false)

		assert.False(t, feature.IsHeatmapVisible())
		vis, _ = provider.lastHeatmapVisibility()
		assert.False(t, vis.Visible)
		markers, _ = provider.lastMarkersVisibility()
		assert.True(t, markers)
	})

	t.Run("markers and heatmap are never both visible", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(placeP1Response(), nil)

		feature, provider := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))

		for i := 0; i < 4; i++ {
			feature.ToggleHeatmap()
			heatmap, _ := provider.lastHeatmapVisibility()
			markers, _ := provider.lastMarkersVisibility()
			assert.NotEqual(t, heatmap.Visible, markers)
			assert.Equal(t, feature.IsHeatmapVisible(), heatmap.Visible)
		}
	})

	t.Run("double toggle restores state", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(placeP1Response(), nil)

		feature, _ := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))

		initial := feature.IsHeatmapVisible()
		feature.ToggleHeatmap()
		assert.NotEqual(t, initial, feature.IsHeatmapVisible())
		feature.ToggleHeatmap()
		assert.Equal(t, initial, feature.IsHeatmapVisible())
	})

	t.Run("empty hotel list keeps heatmap off", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(&model.PlaceHotelsResponse{
			Viewport: model.NewViewport(0, 0, 1, 1),
			Hotels:   []model.Hotel{},
		}, nil)

		feature, provider := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "EMPTY"}))

		feature.SetHeatmapVisible(true)
		assert.False(t, feature.IsHeatmapVisible())
		feature.ToggleHeatmap()
		assert.False(t, feature.IsHeatmapVisible())

		markers, _ := provider.lastMarkersVisibility()
		assert.True(t, markers)
	})

	t.Run("reload with empty list switches heatmap off", func(t *testing.T) {
		loader := new(MockHotelLoader)
		loader.On("FetchPlaceHotels", mock.Anything, mock.MatchedBy(func(p model.FetchHotelsParams) bool {
			return p.PlaceID == "P1"
		})).Return(placeP1Response(), nil)
		loader.On("FetchPlaceHotels", mock.Anything, mock.MatchedBy(func(p model.FetchHotelsParams) bool {
			return p.PlaceID == "EMPTY"
		})).Return(&model.PlaceHotelsResponse{Viewport: model.NewViewport(0, 0, 1, 1)}, nil)

		feature, provider := newHotelFeatureForTest(loader)
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))
		feature.SetHeatmapVisible(true)
		require.True(t, feature.IsHeatmapVisible())

		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "EMPTY"}))
		assert.False(t, feature.IsHeatmapVisible())
		vis, _ := provider.lastHeatmapVisibility()
		assert.False(t, vis.Visible)

		// переключатель сброшен, а не просто скрыт
		require.NoError(t, feature.LoadHotels(ctx, model.FetchHotelsParams{PlaceID: "P1"}))
		assert.False(t, feature.IsHeatmapVisible())
	})

	t.Run("toggle before any load", func(t *testing.T) {
		feature, provider := newHotelFeatureForTest(new(MockHotelLoader))

		feature.ToggleHeatmap()
		assert.False(t, feature.IsHeatmapVisible())
		vis, _ := provider.lastHeatmapVisibility()
		assert.False(t, vis.Visible)
	})
}

func TestHotelFeature_Close(t *testing.T) {
	loader := new(MockHotelLoader)
	loader.On("FetchPlaceHotels", mock.Anything, mock.Anything).Return(placeP1Response(), nil)

	feature, provider := newHotelFeatureForTest(loader)
	require.NoError(t, feature.LoadHotels(context.Background(), model.FetchHotelsParams{PlaceID: "P1"}))
	feature.SetHeatmapVisible(true)

	feature.Close()

	assert.False(t, feature.IsHeatmapVisible())
	assert.Equal(t, 2, provider.clearMarkersCalls)
}
