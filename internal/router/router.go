// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/grampanchayat/internal/handler"
	"github.com/deppfellow/grampanchayat/internal/middleware"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and every route.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	m := middleware.NewMiddlewares(s, services.Auth)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler
	router.IPExtractor = m.Global.IPExtractor()

	router.Use(
		m.Global.CORS(),
		m.Global.Secure(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Gzip(),
		m.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	api.GET("/health", h.Health.CheckHealth)

	registerAuthRoutes(api, h, m, s.Config.Auth.LoginRatePerMinute)
	registerUserRoutes(api, h, m)
	registerContentRoutes(api, h, m)
	registerWebsiteRoutes(api, h)

	return router
}
