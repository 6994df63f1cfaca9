package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "COP", cfg.ProviderCurrency)
	assert.Equal(t, 5, cfg.ProviderPollAttempts)
	assert.Equal(t, 5*time.Second, cfg.ProviderPollDelay)
	assert.True(t, decimal.NewFromFloat(0.19).Equal(cfg.TaxRate))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PROVIDER_POLL_ATTEMPTS", "3")
	t.Setenv("PROVIDER_POLL_DELAY", "100ms")
	t.Setenv("TAX_RATE", "0.08")
	t.Setenv("PROVIDER_API_URL", "http://localhost:9999")

	cfg := Load()

	assert.Equal(t, 3, cfg.ProviderPollAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.ProviderPollDelay)
	assert.True(t, decimal.NewFromFloat(0.08).Equal(cfg.TaxRate))
	assert.Equal(t, "http://localhost:9999", cfg.ProviderAPIURL)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("PROVIDER_POLL_ATTEMPTS", "-2")
	t.Setenv("PROVIDER_POLL_DELAY", "not-a-duration")
	t.Setenv("TAX_RATE", "-1")

	cfg := Load()

	assert.Equal(t, 5, cfg.ProviderPollAttempts)
	assert.Equal(t, 5*time.Second, cfg.ProviderPollDelay)
	assert.True(t, decimal.NewFromFloat(0.19).Equal(cfg.TaxRate))
}

func TestGetDBConnectionString(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "checkout")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "payments")

	cfg := Load()

	assert.Equal(t,
		"host=db.internal port=5433 user=checkout password=s3cret dbname=payments sslmode=disable",
		cfg.GetDBConnectionString())
}
