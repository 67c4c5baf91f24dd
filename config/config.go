// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// JWT verification secret for viewer tokens. Empty disables viewer identity.
	JWTSecret string

	// Server
	Debug       bool
	Port        string
	TLSDomains  []string
	ServiceName string

	// Redis backs the forecast cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Weather
	WeatherBaseURL   string
	WeatherUserAgent string
	WeatherTimeout   time.Duration
	ForecastCacheTTL time.Duration

	// Search
	BookingCutoff     time.Duration
	SearchDefaultTake int

	// Tracing – empty endpoint disables export.
	OTLPEndpoint string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("DB_USER", "teemarket")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "teemarket")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("SERVICE_NAME", "teemarket-search")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("WEATHER_BASE_URL", "https://api.weather.gov")
	v.SetDefault("WEATHER_USER_AGENT", "teemarket-search (ops@teemarket.app)")
	v.SetDefault("WEATHER_TIMEOUT", "15s")
	v.SetDefault("FORECAST_CACHE_TTL", "30m")
	v.SetDefault("BOOKING_CUTOFF", "30m")
	v.SetDefault("SEARCH_DEFAULT_TAKE", 5)

	cfg := &Config{
		DatabaseURL:       v.GetString("DATABASE_URL"),
		DBUser:            v.GetString("DB_USER"),
		DBPass:            v.GetString("DB_PASS"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBName:            v.GetString("DB_NAME"),
		DBSSLMode:         v.GetString("DB_SSLMODE"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		Debug:             v.GetBool("DEBUG"),
		Port:              v.GetString("PORT"),
		TLSDomains:        splitTrimmed(v.GetString("TLS_DOMAINS")),
		ServiceName:       v.GetString("SERVICE_NAME"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		WeatherBaseURL:    v.GetString("WEATHER_BASE_URL"),
		WeatherUserAgent:  v.GetString("WEATHER_USER_AGENT"),
		WeatherTimeout:    v.GetDuration("WEATHER_TIMEOUT"),
		ForecastCacheTTL:  v.GetDuration("FORECAST_CACHE_TTL"),
		BookingCutoff:     v.GetDuration("BOOKING_CUTOFF"),
		SearchDefaultTake: v.GetInt("SEARCH_DEFAULT_TAKE"),
		OTLPEndpoint:      v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

func (c *Config) validate() {
	if c.DatabaseURL == "" && c.DBPass == "" {
		log.Fatal("config: DATABASE_URL or DB_PASS must be set")
	}
	if c.BookingCutoff < 0 {
		log.Fatal("config: BOOKING_CUTOFF must not be negative")
	}
	if c.JWTSecret == "" {
		log.Println("config: JWT_SECRET not set, all searches are anonymous")
	}
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
