package utils

import (
	"math"
	"math/rand"
)

// KmPerDegree - километров в одном градусе широты
const KmPerDegree = 111.32

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// RandomPointNear возвращает случайную точку в круге радиусом radiusKm вокруг центра,
// равномерно распределенную по площади. Смещение по долготе масштабируется на cos(lat).
func RandomPointNear(rnd *rand.Rand, lat, lon, radiusKm float64) (float64, float64) {
	angle := rnd.Float64() * 2 * math.Pi
	radius := math.Sqrt(rnd.Float64()) * radiusKm / KmPerDegree

	dLat := radius * math.Cos(angle)
	scale := math.Cos(lat * math.Pi / 180)
	if scale == 0 {
		scale = 1
	}
	dLon := radius * math.Sin(angle) / scale

	return lat + dLat, lon + dLon
}

// GridKey округляет координаты до сетки ~1 км для ключей кэша
func GridKey(lat, lon float64) (float64, float64) {
	return math.Round(lat*100) / 100, math.Round(lon*100) / 100
}
