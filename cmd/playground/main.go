// Command playground - демонстрация SDK без браузера: карта в headless-провайдере,
// отели и погода загружаются через запущенный BFF, итоговое состояние карты печатается в JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hotel-price-map/internal/pkg/logger"
	"github.com/hotel-price-map/pkg/mapsdk"
	"github.com/hotel-price-map/pkg/mapsdk/headless"
	"github.com/hotel-price-map/pkg/model"
)

func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PLAYGROUND")
	v.AutomaticEnv()

	v.SetDefault("PROXY_BASE_URL", "http://localhost:8080")
	v.SetDefault("PLACE_ID", "ChIJu1K2erNv5kcR6HyzBQieKJ0")
	v.SetDefault("CURRENCY", "EUR")
	v.SetDefault("GUEST_NATIONALITY", "EU")
	v.SetDefault("ADULTS", 2)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEOUT", 60)
	return v
}

func main() {
	v := loadConfig()

	log, err := logger.New(v.GetString("LOG_LEVEL"), "console")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(v.GetInt("TIMEOUT"))*time.Second)
	defer cancel()

	if err := run(ctx, v, log); err != nil {
		log.Error("Playground failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, v *viper.Viper, log *zap.Logger) error {
	proxyBaseURL := v.GetString("PROXY_BASE_URL")

	tomorrow := time.Now().AddDate(0, 0, 1)
	query := &model.FetchHotelsParams{
		PlaceID:          v.GetString("PLACE_ID"),
		Checkin:          tomorrow.Format("2006-01-02"),
		Checkout:         tomorrow.AddDate(0, 0, 1).Format("2006-01-02"),
		Occupancies:      []model.Occupancy{{Adults: v.GetInt("ADULTS")}},
		Currency:         v.GetString("CURRENCY"),
		GuestNationality: v.GetString("GUEST_NATIONALITY"),
		ProxyBaseURL:     proxyBaseURL,
	}

	log.Info("Initializing map", zap.String("sdk_version", mapsdk.Version), zap.String("place_id", query.PlaceID))

	var provider *headless.Provider
	m, err := mapsdk.Init(ctx, mapsdk.InitOptions{
		Selector:    "#map",
		HotelsQuery: query,
	}, mapsdk.Dependencies{
		NewProvider: func() mapsdk.MapProvider {
			provider = headless.New(log, headless.WithDebounce(200*time.Millisecond))
			return provider
		},
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("init map: %w", err)
	}
	defer m.Destroy()

	log.Info("Hotels loaded", zap.Int("hotels", len(m.Hotels())))

	if err := m.LoadWeather(ctx, proxyBaseURL); err != nil {
		log.Warn("Failed to load weather", zap.Error(err))
	} else {
		m.ToggleWeatherLayer(true)
		log.Info("Weather loaded", zap.String("text", m.Control().Text()))
	}

	m.ToggleHeatmap()
	log.Info("Heatmap toggled", zap.Bool("visible", m.IsHeatmapVisible()))

	snapshot, err := json.MarshalIndent(provider.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	fmt.Println(string(snapshot))

	return nil
}
