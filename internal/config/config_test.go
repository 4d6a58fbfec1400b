package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Second, cfg.GetReadTimeout())
	assert.Equal(t, 15*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.GetCacheTTL())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 12, cfg.Business.DefaultPaymentsPerYear)
	assert.Equal(t, 600, cfg.Business.MaxSchedulePeriods)
	assert.True(t, cfg.GetMaxAmount().Equal(decimal.NewFromInt(1000000000)))
	assert.Equal(t, 5*time.Second, cfg.GetHealthTimeout())
}

func TestLoadFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("DEFAULT_PAYMENTS_PER_YEAR", "4")
	t.Setenv("CACHE_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 4, cfg.Business.DefaultPaymentsPerYear)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad read timeout", key: "SERVER_READ_TIMEOUT", value: "soon"},
		{name: "bad write timeout", key: "SERVER_WRITE_TIMEOUT", value: "whenever"},
		{name: "bad cache ttl", key: "CACHE_TTL", value: "forever"},
		{name: "bad health timeout", key: "HEALTH_CHECK_TIMEOUT", value: "5 minutes"},
		{name: "bad max amount", key: "MAX_AMOUNT", value: "a lot"},
		{name: "zero payments per year", key: "DEFAULT_PAYMENTS_PER_YEAR", value: "0"},
		{name: "zero schedule bound", key: "MAX_SCHEDULE_PERIODS", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
		},
		Cache: CacheConfig{TTL: "1h"},
		Business: BusinessConfig{
			DefaultPaymentsPerYear: 12,
			MaxSchedulePeriods:     600,
			MaxAmount:              "1000000000",
		},
		Health: HealthConfig{Timeout: "5s"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())
}
