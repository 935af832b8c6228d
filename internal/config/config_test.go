package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint16(8080), cfg.HTTP.Port)
	require.Equal(t, "x-api-key", cfg.HTTP.APIKeyHeader)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, 5, cfg.Attribution.CodeAttempts)
	require.Equal(t, 168*time.Hour, cfg.Attribution.FreeTrial)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
	require.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_API_KEY_HEADER", "x-brand-key")
	t.Setenv("ATTRIBUTION_FREE_TRIAL", "72h")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5433/attr?sslmode=disable")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint16(9090), cfg.HTTP.Port)
	require.Equal(t, "x-brand-key", cfg.HTTP.APIKeyHeader)
	require.Equal(t, 72*time.Hour, cfg.Attribution.FreeTrial)
	require.Equal(t, "db:5433", cfg.Psql.Addr.Host)
	require.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}
