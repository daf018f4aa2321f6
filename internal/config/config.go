package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	LiteAPI     LiteAPIConfig
	OpenWeather OpenWeatherConfig
	Hotels      HotelsConfig
	Upstream    UpstreamConfig
	Redis       RedisConfig
	Cache       CacheConfig
	Log         LogConfig
	CORS        CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LiteAPIConfig struct {
	BaseURL string
	APIKey  string
}

type OpenWeatherConfig struct {
	BaseURL string
	APIKey  string
}

type HotelsConfig struct {
	DeepLinkBaseURL  string
	JitterRadiusKm   float64
	GuestNationality string
}

// UpstreamConfig - таймаут и политика повторов для LiteAPI и OpenWeather
type UpstreamConfig struct {
	Timeout         time.Duration
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled         bool
	PlaceCacheTTL   time.Duration
	WeatherCacheTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowOrigins string
}

var ErrLiteAPIKeyRequired = errors.New("LITEAPI_KEY environment variable is required")

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper собирает конфигурацию из готового экземпляра viper
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		LiteAPI: LiteAPIConfig{
			BaseURL: strings.TrimRight(v.GetString("LITEAPI_BASE"), "/"),
			APIKey:  v.GetString("LITEAPI_KEY"),
		},
		OpenWeather: OpenWeatherConfig{
			BaseURL: strings.TrimRight(v.GetString("OPENWEATHER_BASE_URL"), "/"),
			APIKey:  v.GetString("OPENWEATHER_API_KEY"),
		},
		Hotels: HotelsConfig{
			DeepLinkBaseURL:  strings.TrimRight(v.GetString("DEEPLINK_BASE_URL"), "/"),
			JitterRadiusKm:   v.GetFloat64("JITTER_RADIUS_KM"),
			GuestNationality: v.GetString("GUEST_NATIONALITY"),
		},
		Upstream: UpstreamConfig{
			Timeout:         time.Duration(v.GetInt("UPSTREAM_TIMEOUT")) * time.Second,
			MaxRetries:      v.GetInt("UPSTREAM_MAX_RETRIES"),
			InitialInterval: time.Duration(v.GetInt("UPSTREAM_BACKOFF_INITIAL_MS")) * time.Millisecond,
			MaxInterval:     time.Duration(v.GetInt("UPSTREAM_BACKOFF_MAX_MS")) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:         v.GetBool("CACHE_ENABLED"),
			PlaceCacheTTL:   time.Duration(v.GetInt("PLACE_CACHE_TTL")) * time.Second,
			WeatherCacheTTL: time.Duration(v.GetInt("WEATHER_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
	}

	if cfg.LiteAPI.APIKey == "" {
		return nil, ErrLiteAPIKeyRequired
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LITEAPI_BASE", "https://api.liteapi.travel/v3.0")
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("DEEPLINK_BASE_URL", "https://whitelabel.nuitee.link")
	v.SetDefault("JITTER_RADIUS_KM", 8)
	v.SetDefault("GUEST_NATIONALITY", "EU")
	v.SetDefault("UPSTREAM_TIMEOUT", 15)
	v.SetDefault("UPSTREAM_MAX_RETRIES", 3)
	v.SetDefault("UPSTREAM_BACKOFF_INITIAL_MS", 500)
	v.SetDefault("UPSTREAM_BACKOFF_MAX_MS", 5000)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("PLACE_CACHE_TTL", 3600)
	v.SetDefault("WEATHER_CACHE_TTL", 600)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
}

// Defaults возвращает viper с установленными значениями по умолчанию
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// WeatherConfigured - задан ли ключ OpenWeather
func (c *Config) WeatherConfigured() bool {
	return c.OpenWeather.APIKey != ""
}
