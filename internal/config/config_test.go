package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("APP_MODE", "dev")

		cfg, err := Load()
		require.NoError(t, err)
		require.True(t, cfg.IsDev())
		require.Equal(t, "3000", cfg.Port)
		require.Equal(t, 4, cfg.Tracking.Workers)
		require.Equal(t, 1024, cfg.Tracking.QueueSize)
		require.Equal(t, 30*time.Minute, cfg.Tracking.SessionTTL)
		require.Equal(t, "@every 5m", cfg.Tracking.SweepSpec)
		require.Equal(t, "*", cfg.GetAllowedOrigins())
	})

	t.Run("prod prefixes", func(t *testing.T) {
		t.Setenv("APP_MODE", "prod")
		t.Setenv("PROD_DB_HOST", "db.internal")
		t.Setenv("PROD_JWT_SECRET", "s3cret")
		t.Setenv("TRACKING_WRITE_TIMEOUT", "2s")

		cfg, err := Load()
		require.NoError(t, err)
		require.True(t, cfg.IsProd())
		require.Equal(t, "db.internal", cfg.Database.Host)
		require.Equal(t, "s3cret", cfg.JWT.Secret)
		require.Equal(t, 2*time.Second, cfg.Tracking.WriteTimeout)
		require.Equal(t, "https://finz.vn", cfg.GetAllowedOrigins())
	})

	t.Run("prod requires a secret", func(t *testing.T) {
		t.Setenv("APP_MODE", "prod")
		t.Setenv("PROD_JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("invalid mode", func(t *testing.T) {
		t.Setenv("APP_MODE", "staging")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("APP_MODE", "dev")
		t.Setenv("TRACKING_WRITE_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestDSNConfig(t *testing.T) {
	dc := dsnConfig(DatabaseConfig{Host: "db", Port: "3307", User: "finz", Password: "p@ss", DBName: "affiliate"})

	dsn := dc.FormatDSN()
	require.Contains(t, dsn, "finz:p@ss@tcp(db:3307)/affiliate")
	require.Contains(t, dsn, "parseTime=true")
	require.Contains(t, dsn, "charset=utf8mb4")
}
