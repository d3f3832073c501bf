package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(context.Context) error { return nil }

func fail(context.Context) error { return errors.New("connection refused") }

func newTestMonitor(cfg config.HealthChecksConfig, checks ...Check) *Monitor {
	logger := zerolog.Nop()
	return New(cfg, &logger, nil, checks...)
}

func defaultChecksConfig() config.HealthChecksConfig {
	return config.HealthChecksConfig{
		Enabled:  true,
		Interval: time.Hour,
		Timeout:  time.Second,
		Checks:   []string{"database", "redis", "storage"},
	}
}

func TestRunAllHealthy(t *testing.T) {
	m := newTestMonitor(defaultChecksConfig(),
		Check{Name: "database", Required: true, Probe: ok},
		Check{Name: "redis", Probe: ok},
	)

	report := m.Run(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.True(t, report.Healthy())
	require.Len(t, report.Checks, 2)
	assert.Equal(t, StatusHealthy, report.Checks["database"].Status)
	require.NotNil(t, m.Last())
	assert.Equal(t, report.Checks, m.Last().Checks)
}

func TestRunOptionalFailureDegrades(t *testing.T) {
	m := newTestMonitor(defaultChecksConfig(),
		Check{Name: "database", Required: true, Probe: ok},
		Check{Name: "redis", Probe: fail},
	)

	report := m.Run(context.Background())

	assert.Equal(t, StatusDegraded, report.Status)
	assert.True(t, report.Healthy())
	assert.Equal(t, "connection refused", report.Checks["redis"].Error)
}

func TestRunRequiredFailure(t *testing.T) {
	m := newTestMonitor(defaultChecksConfig(),
		Check{Name: "database", Required: true, Probe: fail},
		Check{Name: "storage", Probe: fail},
	)

	report := m.Run(context.Background())
	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.False(t, report.Healthy())
}

func TestRunRespectsTimeout(t *testing.T) {
	cfg := defaultChecksConfig()
	cfg.Timeout = 20 * time.Millisecond

	m := newTestMonitor(cfg, Check{Name: "database", Required: true, Probe: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	report := m.Run(context.Background())
	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.Contains(t, report.Checks["database"].Error, "deadline exceeded")
}

func TestNewFiltersByConfiguredNames(t *testing.T) {
	cfg := defaultChecksConfig()
	cfg.Checks = []string{"database"}

	m := newTestMonitor(cfg,
		Check{Name: "database", Required: true, Probe: ok},
		Check{Name: "redis", Probe: fail},
	)

	report := m.Run(context.Background())
	assert.Equal(t, StatusHealthy, report.Status)
	assert.NotContains(t, report.Checks, "redis")
}

func TestStartDisabled(t *testing.T) {
	cfg := defaultChecksConfig()
	cfg.Enabled = false

	m := newTestMonitor(cfg)
	require.NoError(t, m.Start())
	assert.Nil(t, m.cron)
	m.Stop()
}

func TestStartAndStop(t *testing.T) {
	m := newTestMonitor(defaultChecksConfig(), Check{Name: "database", Probe: ok})
	require.NoError(t, m.Start())
	assert.NotNil(t, m.cron)
	m.Stop()
	assert.Nil(t, m.cron)
}
