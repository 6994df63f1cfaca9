package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all runtime settings. Everything comes from the environment
// with local-development defaults; a .env file is loaded when present.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Payment provider settings.
	ProviderAPIURL          string
	ProviderPublicKey       string
	ProviderIntegritySecret string
	ProviderCurrency        string
	ProviderPollAttempts    int
	ProviderPollDelay       time.Duration

	// Regional sales tax applied on top of price*quantity.
	TaxRate decimal.Decimal
}

func Load() *Config {
	// Best effort; production supplies real env vars.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "card_checkout"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ProviderAPIURL:          getEnv("PROVIDER_API_URL", "https://sandbox.provider.co/v1"),
		ProviderPublicKey:       getEnv("PROVIDER_PUBLIC_KEY", ""),
		ProviderIntegritySecret: getEnv("PROVIDER_INTEGRITY_SECRET", ""),
		ProviderCurrency:        getEnv("PROVIDER_CURRENCY", "COP"),
		ProviderPollAttempts:    getEnvInt("PROVIDER_POLL_ATTEMPTS", 5),
		ProviderPollDelay:       getEnvDuration("PROVIDER_POLL_DELAY", 5*time.Second),

		TaxRate: getEnvDecimal("TAX_RATE", decimal.NewFromFloat(0.19)),
	}
}

// GetDBConnectionString builds the lib/pq connection string.
func (c *Config) GetDBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func getEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}
