package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"GRAMPANCHAYAT_PRIMARY__ENV":                   "test",
		"GRAMPANCHAYAT_SERVER__PORT":                   "8080",
		"GRAMPANCHAYAT_SERVER__READ_TIMEOUT":           "30",
		"GRAMPANCHAYAT_SERVER__WRITE_TIMEOUT":          "30",
		"GRAMPANCHAYAT_SERVER__IDLE_TIMEOUT":           "60",
		"GRAMPANCHAYAT_SERVER__CORS_ALLOWED_ORIGINS":   "http://localhost:3000,https://gp.example.org",
		"GRAMPANCHAYAT_DATABASE__HOST":                 "localhost",
		"GRAMPANCHAYAT_DATABASE__PORT":                 "5432",
		"GRAMPANCHAYAT_DATABASE__USER":                 "postgres",
		"GRAMPANCHAYAT_DATABASE__PASSWORD":             "postgres",
		"GRAMPANCHAYAT_DATABASE__NAME":                 "grampanchayat",
		"GRAMPANCHAYAT_DATABASE__SSL_MODE":             "disable",
		"GRAMPANCHAYAT_DATABASE__MAX_OPEN_CONNS":       "10",
		"GRAMPANCHAYAT_DATABASE__MAX_IDLE_CONNS":       "5",
		"GRAMPANCHAYAT_DATABASE__CONN_MAX_LIFETIME":    "300",
		"GRAMPANCHAYAT_DATABASE__CONN_MAX_IDLE_TIME":   "60",
		"GRAMPANCHAYAT_REDIS__ADDRESS":                 "localhost:6379",
		"GRAMPANCHAYAT_AUTH__JWT_SECRET":               "0123456789abcdef0123",
		"GRAMPANCHAYAT_STORAGE__URL":                   "https://project.supabase.co/storage/v1",
		"GRAMPANCHAYAT_STORAGE__SERVICE_KEY":           "service-key",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://gp.example.org"}, cfg.Server.CORSAllowedOrigins)

	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, "grampanchayat-files", cfg.Storage.Bucket)
		assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, "admin@grampanchayat.gov.in", cfg.Admin.Email)
		assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxImageSize)
		assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxDocumentSize)
		require.NotNil(t, cfg.Observability)
		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "test", cfg.Observability.Environment)
	})
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GRAMPANCHAYAT_STORAGE__BUCKET", "village-files")
	t.Setenv("GRAMPANCHAYAT_AUTH__TOKEN_TTL", "12h")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "village-files", cfg.Storage.Bucket)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GRAMPANCHAYAT_AUTH__JWT_SECRET", "short")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWTSecret")
}

func TestObservabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *ObservabilityConfig) {}},
		{
			name:    "bad level",
			mutate:  func(c *ObservabilityConfig) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad format",
			mutate:  func(c *ObservabilityConfig) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
		{
			name:    "negative slow query threshold",
			mutate:  func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second },
			wantErr: "slow_query_threshold",
		},
		{
			name:    "unknown check",
			mutate:  func(c *ObservabilityConfig) { c.HealthChecks.Checks = []string{"database", "kafka"} },
			wantErr: "unknown health check: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultObservabilityConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Level = ""

	c.Environment = "production"
	assert.Equal(t, "info", c.GetLogLevel())

	c.Environment = "development"
	assert.Equal(t, "debug", c.GetLogLevel())

	c.Logging.Level = "warn"
	assert.Equal(t, "warn", c.GetLogLevel())
}

func TestLoadConfigLists(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GRAMPANCHAYAT_SERVER__CORS_ALLOWED_ORIGINS", " http://localhost:3000 , https://gp.example.org,")
	t.Setenv("GRAMPANCHAYAT_SERVER__TRUSTED_PROXIES", "10.0.0.0/8,172.16.0.0/12")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:3000", "https://gp.example.org"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.0/12"}, cfg.Server.TrustedProxies)

	t.Run("bad proxy range", func(t *testing.T) {
		t.Setenv("GRAMPANCHAYAT_SERVER__TRUSTED_PROXIES", "10.0.0.1")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TrustedProxies")
	})
}

func TestLoadConfigAdminPassword(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "admin123", cfg.Admin.Password)

	t.Setenv("GRAMPANCHAYAT_PRIMARY__ENV", "production")

	_, err = LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin password is required")

	t.Setenv("GRAMPANCHAYAT_ADMIN__PASSWORD", "a-long-village-secret")

	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "a-long-village-secret", cfg.Admin.Password)
}
