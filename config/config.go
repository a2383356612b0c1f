package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAIContextDB int    `mapstructure:"REDIS_AI_CONTEXT_DB"`

	// Gemini API key for the generative fallback.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Base URLs of the external collaborators.
	CatalogAPIURL string `mapstructure:"CATALOG_API_URL"`
	TablesAPIURL  string `mapstructure:"TABLES_API_URL"`
	OrdersAPIURL  string `mapstructure:"ORDERS_API_URL"`

	// How long a fetched catalog snapshot may be served from cache.
	CatalogCacheTTLSeconds int `mapstructure:"CATALOG_CACHE_TTL_SECONDS"`

	// Flat fee charged to hold a table reservation.
	ReservationFee float64 `mapstructure:"RESERVATION_FEE"`
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AI_CONTEXT_DB", 1)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("CATALOG_API_URL", "http://localhost:5000/api")
	viper.SetDefault("TABLES_API_URL", "http://localhost:5000/api")
	viper.SetDefault("ORDERS_API_URL", "http://localhost:5000/api")
	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 15)
	viper.SetDefault("RESERVATION_FEE", 500.0)

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
