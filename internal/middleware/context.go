package middleware

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/logger"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Keys of the values auth and context middleware store on the echo context.
const (
	UserKey        = "user"
	UserIDKey      = "user_id"
	UserRoleKey    = "user_role"
	PermissionsKey = "permissions"
	LoggerKey      = "logger"
)

type loggerCtxKey struct{}

// ContextEnhancer builds the request-scoped logger.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext stores a logger carrying request_id, method, path, ip and,
// when available, the New Relic trace ids and the authenticated user.
// The logger is reachable from the echo context and from the request context.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			contextLogger = withUser(c, contextLogger)
			setLogger(c, &contextLogger)

			return next(c)
		}
	}
}

func withUser(c echo.Context, l zerolog.Logger) zerolog.Logger {
	if userID := GetUserID(c); userID != "" {
		l = l.With().Str("user_id", userID).Logger()
	}
	if role, ok := c.Get(UserRoleKey).(string); ok && role != "" {
		l = l.With().Str("user_role", role).Logger()
	}
	return l
}

func setLogger(c echo.Context, l *zerolog.Logger) {
	c.Set(LoggerKey, l)
	ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, l)
	c.SetRequest(c.Request().WithContext(ctx))
}

// setUser records the authenticated user and adds it to the request logger.
func setUser(c echo.Context, u *model.User) {
	c.Set(UserKey, u)
	c.Set(UserIDKey, u.ID.String())
	c.Set(UserRoleKey, string(u.Role))
	c.Set(PermissionsKey, u.Permissions)

	l := withUser(c, *GetLogger(c))
	setLogger(c, &l)
}

func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetUser returns the user set by RequireAuth, or nil on public routes.
func GetUser(c echo.Context) *model.User {
	if u, ok := c.Get(UserKey).(*model.User); ok {
		return u
	}
	return nil
}

// GetUserUUID returns the authenticated user's id.
func GetUserUUID(c echo.Context) (uuid.UUID, bool) {
	if u := GetUser(c); u != nil {
		return u.ID, true
	}
	return uuid.Nil, false
}

// GetLogger retrieves the request-scoped logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}
	logger := zerolog.Nop()
	return &logger
}

// LoggerFromContext is GetLogger for code that only sees a context.Context.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return logger
	}
	logger := zerolog.Nop()
	return &logger
}
