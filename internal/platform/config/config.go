package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ecbDailyRatesURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Currency rate settings
	BaseCurrency        string        // Pivot currency the feed's rates are expressed against
	RatesURL            string        // External rate feed endpoint
	RateCacheTTL        time.Duration // Sliding expiration of the in-process snapshot cache
	RateFetchTimeout    time.Duration // Hard timeout on a single feed fetch
	RateRefreshInterval time.Duration // How often the scheduler tries a refresh

	RateLimitRPM int // Per-IP requests per minute on the API group
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "EUR")
	viper.SetDefault("RATES_URL", ecbDailyRatesURL)
	viper.SetDefault("RATE_CACHE_TTL", "10m")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "10s")
	viper.SetDefault("RATE_REFRESH_INTERVAL", "1m")
	viper.SetDefault("RATE_LIMIT_RPM", 300)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to EUR.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "EUR"
	}

	cfg.RatesURL = viper.GetString("RATES_URL")

	cfg.RateCacheTTL = durationOrDefault("RATE_CACHE_TTL", 10*time.Minute)
	cfg.RateFetchTimeout = durationOrDefault("RATE_FETCH_TIMEOUT", 10*time.Second)
	cfg.RateRefreshInterval = durationOrDefault("RATE_REFRESH_INTERVAL", time.Minute)

	cfg.RateLimitRPM = viper.GetInt("RATE_LIMIT_RPM")
	if cfg.RateLimitRPM <= 0 {
		log.Println("Warning: Invalid value for RATE_LIMIT_RPM. Defaulting to 300.")
		cfg.RateLimitRPM = 300
	}

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}
