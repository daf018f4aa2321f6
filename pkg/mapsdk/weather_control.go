package mapsdk

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hotel-price-map/pkg/model"
)

const weatherIconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// WeatherControl - контрол с погодой в одной точке. Только отображает то, что ему передали;
// источник истины о видимости слоя - WeatherFeature.
type WeatherControl struct {
	id string

	mu      sync.RWMutex
	weather *model.WeatherData
	visible bool
}

// NewWeatherControl - создание скрытого контрола без данных
func NewWeatherControl() *WeatherControl {
	return &WeatherControl{id: "weather-control-" + uuid.NewString()}
}

func (c *WeatherControl) ID() string { return c.id }

// SetWeather заменяет отображаемые данные; nil показывает заглушку загрузки
func (c *WeatherControl) SetWeather(weather *model.WeatherData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if weather == nil {
		c.weather = nil
		return
	}
	cp := *weather
	c.weather = &cp
}

func (c *WeatherControl) Show() {
	c.mu.Lock()
	c.visible = true
	c.mu.Unlock()
}

func (c *WeatherControl) Hide() {
	c.mu.Lock()
	c.visible = false
	c.mu.Unlock()
}

func (c *WeatherControl) Visible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visible
}

// Weather возвращает копию отображаемых данных или nil
func (c *WeatherControl) Weather() *model.WeatherData {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.weather == nil {
		return nil
	}
	cp := *c.weather
	return &cp
}

// Text - текстовое содержимое контрола
func (c *WeatherControl) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.weather == nil {
		return "Loading..."
	}

	parts := []string{
		fmt.Sprintf("%d°C", int(math.Round(c.weather.Temperature))),
		c.weather.Description,
	}
	if c.weather.City != "" {
		parts = append(parts, c.weather.City)
	}
	return strings.Join(parts, " ")
}

// IconURL - адрес иконки погоды или пустая строка без данных
func (c *WeatherControl) IconURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.weather == nil || c.weather.Icon == "" {
		return ""
	}
	return fmt.Sprintf(weatherIconURLTemplate, c.weather.Icon)
}
