package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/grampanchayat/internal/lib/monitor"
	"github.com/deppfellow/grampanchayat/internal/middleware"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/labstack/echo/v4"
)

const healthTimeout = 10 * time.Second

// HealthHandler exposes dependency health for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type healthResponse struct {
	monitor.Report
	Environment string `json:"environment"`
}

// CheckHealth runs every configured check.
//
// It returns 200 when all required checks pass (redis and storage failures
// only degrade the status) and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	report := h.server.Monitor.Run(ctx)
	response := healthResponse{Report: report, Environment: h.server.Config.Primary.Env}

	if !report.Healthy() {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Str("status", report.Status).
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}
