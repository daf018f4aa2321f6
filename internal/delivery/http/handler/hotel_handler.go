package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hotel-price-map/internal/pkg/errors"
	"github.com/hotel-price-map/internal/pkg/utils"
	"github.com/hotel-price-map/internal/pkg/validator"
	"github.com/hotel-price-map/internal/usecase"
	"github.com/hotel-price-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// HotelHandler - обработчик для отелей и мест
type HotelHandler struct {
	hotelUC *usecase.HotelUseCase
	logger  *zap.Logger
}

// NewHotelHandler - создание нового HotelHandler
func NewHotelHandler(hotelUC *usecase.HotelUseCase, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{
		hotelUC: hotelUC,
		logger:  logger,
	}
}

// GetPlaceHotels godoc
// @Summary Отели места с ценами
// @Description Возвращает рамку места и отели с ценой, ссылкой на бронирование и координатами маркера. Отели без цены не возвращаются. Ответ без конверта: {viewport, hotels}.
// @Tags Hotels
// @Accept json
// @Produce json
// @Param placeId path string true "Идентификатор места LiteAPI"
// @Param request body dto.PlaceHotelsRequest true "Даты и состав гостей"
// @Success 200 {object} model.PlaceHotelsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/map/places/{placeId}/hotels [post]
func (h *HotelHandler) GetPlaceHotels(c *fiber.Ctx) error {
	placeID := c.Params("placeId")

	var req dto.PlaceHotelsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.hotelUC.GetPlaceHotels(c.UserContext(), placeID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetPlace godoc
// @Summary Рамка и центр места
// @Description Возвращает viewport и координаты центра места LiteAPI
// @Tags Hotels
// @Produce json
// @Param placeId path string true "Идентификатор места LiteAPI"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/map/places/{placeId} [get]
func (h *HotelHandler) GetPlace(c *fiber.Ctx) error {
	result, err := h.hotelUC.GetPlace(c.UserContext(), c.Params("placeId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
