package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"latitude and longitude are required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidPlaceData = New(
		"INVALID_PLACE_DATA",
		"Invalid place data received",
		http.StatusInternalServerError,
	)

	ErrInvalidRatesData = New(
		"INVALID_RATES_DATA",
		"Invalid rates data received",
		http.StatusInternalServerError,
	)

	ErrHotelsFetchFailed = New(
		"HOTELS_FETCH_FAILED",
		"Failed to fetch hotel data",
		http.StatusInternalServerError,
	)

	ErrWeatherNotConfigured = New(
		"WEATHER_NOT_CONFIGURED",
		"Weather service not configured",
		http.StatusInternalServerError,
	)

	ErrWeatherFetchFailed = New(
		"WEATHER_FETCH_FAILED",
		"Failed to fetch weather data",
		http.StatusBadGateway,
	)

	ErrInvalidWeatherData = New(
		"INVALID_WEATHER_DATA",
		"Invalid weather data received",
		http.StatusInternalServerError,
	)

	ErrServiceUnavailable = New(
		"SERVICE_UNAVAILABLE",
		"Upstream service temporarily unavailable",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
