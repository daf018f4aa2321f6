package mapsdk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-price-map/pkg/model"
)

func TestWeatherControl(t *testing.T) {
	c := NewWeatherControl()

	assert.True(t, strings.HasPrefix(c.ID(), "weather-control-"))
	assert.NotEqual(t, c.ID(), NewWeatherControl().ID())
	assert.False(t, c.Visible())
	assert.Equal(t, "Loading...", c.Text())
	assert.Empty(t, c.IconURL())

	weather := parisWeather()
	c.SetWeather(weather)
	weather.City = "changed"

	require.NotNil(t, c.Weather())
	assert.Equal(t, "Paris", c.Weather().City)
	assert.Equal(t, "20°C clear sky Paris", c.Text())
	assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", c.IconURL())

	c.SetWeather(&model.WeatherData{Temperature: -3.4, Description: "snow"})
	assert.Equal(t, "-3°C snow", c.Text())

	c.Show()
	assert.True(t, c.Visible())
	c.Hide()
	assert.False(t, c.Visible())

	c.SetWeather(nil)
	assert.Nil(t, c.Weather())
	assert.Equal(t, "Loading...", c.Text())
}

func TestSessionState(t *testing.T) {
	s := NewSessionState()
	assert.NotNil(t, s.Hotels())
	assert.Empty(t, s.Hotels())

	hotels := []model.Hotel{{HotelID: "H1"}, {HotelID: "H2"}}
	s.SetHotels(hotels)
	hotels[0].HotelID = "changed"
	assert.Equal(t, "H1", s.Hotels()[0].HotelID)

	s.Clear()
	assert.Empty(t, s.Hotels())
}
