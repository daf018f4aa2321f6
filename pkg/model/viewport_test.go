package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-price-map/pkg/model"
)

func TestViewport_Center(t *testing.T) {
	vp := model.NewViewport(40, 2, 42, 4)

	center := vp.Center()
	assert.Equal(t, 41.0, center.Latitude)
	assert.Equal(t, 3.0, center.Longitude)
	assert.True(t, vp.Valid())
	assert.True(t, vp.Contains(41, 3))
	assert.False(t, vp.Contains(43, 3))
}

func TestViewport_Invalid(t *testing.T) {
	assert.False(t, model.NewViewport(2, 0, 1, 1).Valid())
	assert.False(t, model.NewViewport(0, 5, 1, 1).Valid())
}

func TestViewport_MarshalJSON_WritesBothForms(t *testing.T) {
	data, err := json.Marshal(model.NewViewport(0, 0, 1, 1))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, 0.0, raw["south"])
	assert.Equal(t, 0.0, raw["west"])
	assert.Equal(t, 1.0, raw["north"])
	assert.Equal(t, 1.0, raw["east"])
	assert.Equal(t, map[string]interface{}{"latitude": 1.0, "longitude": 1.0}, raw["high"])
	assert.Equal(t, map[string]interface{}{"latitude": 0.0, "longitude": 0.0}, raw["low"])
}

func TestViewport_UnmarshalJSON(t *testing.T) {
	t.Run("corners only", func(t *testing.T) {
		var vp model.Viewport
		err := json.Unmarshal([]byte(`{"low":{"latitude":48.8,"longitude":2.2},"high":{"latitude":48.9,"longitude":2.4}}`), &vp)
		require.NoError(t, err)

		assert.Equal(t, 48.8, vp.South())
		assert.Equal(t, 2.2, vp.West())
		assert.Equal(t, 48.9, vp.North())
		assert.Equal(t, 2.4, vp.East())
	})

	t.Run("scalars only", func(t *testing.T) {
		var vp model.Viewport
		err := json.Unmarshal([]byte(`{"south":1,"west":2,"north":3,"east":4}`), &vp)
		require.NoError(t, err)

		assert.Equal(t, model.NewViewport(1, 2, 3, 4), vp)
	})

	t.Run("corners win over scalars", func(t *testing.T) {
		var vp model.Viewport
		err := json.Unmarshal([]byte(`{"south":9,"west":9,"north":9,"east":9,"low":{"latitude":0,"longitude":0},"high":{"latitude":1,"longitude":1}}`), &vp)
		require.NoError(t, err)

		assert.Equal(t, model.NewViewport(0, 0, 1, 1), vp)
	})

	t.Run("malformed", func(t *testing.T) {
		var vp model.Viewport
		err := json.Unmarshal([]byte(`{"low":"nope"}`), &vp)
		assert.Error(t, err)
	})
}

func TestPlaceHotelsResponse_RoundTrip(t *testing.T) {
	body := `{"viewport":{"south":0,"west":0,"north":1,"east":1,"low":{"latitude":0,"longitude":0},"high":{"latitude":1,"longitude":1}},` +
		`"hotels":[{"hotelId":"H1","name":"Hotel A","latitude":0.5,"longitude":0.5,"price":100,"currency":"EUR","hasAvailability":true,"deepLink":"https://x/H1"}]}`

	var resp model.PlaceHotelsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "H1", resp.Hotels[0].HotelID)
	assert.Equal(t, model.LngLat{0.5, 0.5}, resp.Hotels[0].LngLat())
	assert.Equal(t, model.NewViewport(0, 0, 1, 1), resp.Viewport)
}
