package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hotel-price-map/internal/pkg/errors"
	"github.com/hotel-price-map/internal/pkg/utils"
	"github.com/hotel-price-map/internal/pkg/validator"
	"github.com/hotel-price-map/internal/usecase"
	"github.com/hotel-price-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// WeatherHandler - обработчик для погоды
type WeatherHandler struct {
	weatherUC *usecase.WeatherUseCase
	logger    *zap.Logger
}

// NewWeatherHandler - создание нового WeatherHandler
func NewWeatherHandler(weatherUC *usecase.WeatherUseCase, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		weatherUC: weatherUC,
		logger:    logger,
	}
}

// GetWeather godoc
// @Summary Текущая погода в точке
// @Description Возвращает текущую погоду OpenWeather (metric). Ответ без конверта. Статус ошибки upstream передается клиенту.
// @Tags Weather
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} model.WeatherData
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/weather [get]
func (h *WeatherHandler) GetWeather(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	req := dto.WeatherRequest{Lat: lat, Lon: lon}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	result, err := h.weatherUC.GetWeather(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
