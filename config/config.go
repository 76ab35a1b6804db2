package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisPlanDB   int    `mapstructure:"REDIS_PLAN_DB"`
	RedisChatDB   int    `mapstructure:"REDIS_CHAT_DB"`

	// External provider credentials.
	GoogleAPIKey       string `mapstructure:"GOOGLE_API_KEY"`
	OpenWeatherAPIKey  string `mapstructure:"OPENWEATHER_API_KEY"`
	GeminiAPIKey       string `mapstructure:"GEMINI_API_KEY"`
	ServiceAccountFile string `mapstructure:"SERVICE_ACCOUNT_FILE"`

	// Fallback point for group-level lookups (weather) that must not wait
	// on per-participant location fixes.
	AnchorLat float64 `mapstructure:"ANCHOR_LAT"`
	AnchorLng float64 `mapstructure:"ANCHOR_LNG"`

	// Per-role provider timeouts and the global plan deadline, in seconds.
	ProviderTimeoutSec int `mapstructure:"PROVIDER_TIMEOUT_SEC"`
	PlanDeadlineSec    int `mapstructure:"PLAN_DEADLINE_SEC"`
	RoutingTimeoutSec  int `mapstructure:"ROUTING_TIMEOUT_SEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_PLAN_DB", 0)
	viper.SetDefault("REDIS_CHAT_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("SERVICE_ACCOUNT_FILE", "service_account.json")
	viper.SetDefault("ANCHOR_LAT", 51.5074)
	viper.SetDefault("ANCHOR_LNG", -0.1278)
	viper.SetDefault("PROVIDER_TIMEOUT_SEC", 5)
	viper.SetDefault("PLAN_DEADLINE_SEC", 20)
	viper.SetDefault("ROUTING_TIMEOUT_SEC", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ProviderTimeout returns the per-role provider call timeout.
func ProviderTimeout() time.Duration {
	return time.Duration(AppConfig.ProviderTimeoutSec) * time.Second
}

// PlanDeadline returns the global deadline for one plan request.
func PlanDeadline() time.Duration {
	return time.Duration(AppConfig.PlanDeadlineSec) * time.Second
}

// RoutingTimeout returns the timeout for per-participant routing calls.
func RoutingTimeout() time.Duration {
	return time.Duration(AppConfig.RoutingTimeoutSec) * time.Second
}
