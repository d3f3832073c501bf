// Package monitor runs named dependency checks on demand and on a cron
// schedule, and reports failures to the log and to New Relic.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDegraded  = "degraded"
)

// Check is one dependency probe.
// A failing Required check makes the whole report unhealthy.
type Check struct {
	Name     string
	Required bool
	Probe    func(ctx context.Context) error
}

// Result is the outcome of a single Check.
type Result struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// Report aggregates the results of one run.
type Report struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]Result `json:"checks"`
}

// Healthy reports whether every required check passed.
func (r Report) Healthy() bool {
	return r.Status != StatusUnhealthy
}

// Monitor owns the configured checks and the cron scheduler.
type Monitor struct {
	cfg    config.HealthChecksConfig
	checks []Check
	logger *zerolog.Logger
	app    *newrelic.Application

	mu   sync.Mutex
	cron *cron.Cron
	last *Report
}

// New creates a Monitor. Only checks named in cfg.Checks are kept;
// app may be nil.
func New(cfg config.HealthChecksConfig, logger *zerolog.Logger, app *newrelic.Application, checks ...Check) *Monitor {
	enabled := make(map[string]bool, len(cfg.Checks))
	for _, name := range cfg.Checks {
		enabled[name] = true
	}

	kept := make([]Check, 0, len(checks))
	for _, c := range checks {
		if len(cfg.Checks) == 0 || enabled[c.Name] {
			kept = append(kept, c)
		}
	}

	return &Monitor{
		cfg:    cfg,
		checks: kept,
		logger: logger,
		app:    app,
	}
}

// Run executes every check concurrently, each bounded by the configured timeout.
func (m *Monitor) Run(ctx context.Context) Report {
	report := Report{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]Result, len(m.checks)),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, c := range m.checks {
		wg.Add(1)
		go func(c Check) {
			defer wg.Done()
			result := m.probe(ctx, c)

			mu.Lock()
			defer mu.Unlock()
			report.Checks[c.Name] = result
			if result.Status == StatusHealthy {
				return
			}
			if c.Required {
				report.Status = StatusUnhealthy
			} else if report.Status == StatusHealthy {
				report.Status = StatusDegraded
			}
		}(c)
	}
	wg.Wait()

	m.mu.Lock()
	m.last = &report
	m.mu.Unlock()

	return report
}

func (m *Monitor) probe(ctx context.Context, c Check) Result {
	timeout := m.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := c.Probe(ctx)
	elapsed := time.Since(start)

	if err != nil {
		m.logger.Error().
			Err(err).
			Str("check", c.Name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		if m.app != nil {
			m.app.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       c.Name,
				"operation":        "health_check",
				"error_type":       c.Name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		return Result{Status: StatusUnhealthy, ResponseTime: elapsed.String(), Error: err.Error()}
	}

	m.logger.Debug().
		Str("check", c.Name).
		Dur("response_time", elapsed).
		Msg("health check passed")
	return Result{Status: StatusHealthy, ResponseTime: elapsed.String()}
}

// Last returns the most recent report, or nil before the first run.
func (m *Monitor) Last() *Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Start schedules Run every cfg.Interval. It does nothing when checks are disabled.
func (m *Monitor) Start() error {
	if !m.cfg.Enabled || m.cfg.Interval <= 0 {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc("@every "+m.cfg.Interval.String(), func() {
		report := m.Run(context.Background())
		if report.Status != StatusHealthy {
			m.logger.Warn().Str("status", report.Status).Msg("scheduled health check reported problems")
		}
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cron = c
	m.mu.Unlock()

	c.Start()
	m.logger.Info().Dur("interval", m.cfg.Interval).Int("checks", len(m.checks)).Msg("health monitor started")
	return nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (m *Monitor) Stop() {
	m.mu.Lock()
	c := m.cron
	m.cron = nil
	m.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}
