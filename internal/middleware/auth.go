package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/labstack/echo/v4"
)

// Authenticator resolves an access token to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type AuthMiddleware struct {
	server *server.Server
	auth   Authenticator
}

func NewAuthMiddleware(s *server.Server, auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>"
// header and stores the user (id, role, permissions) on the echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errs.NewUnauthorizedError("Access token required", true)
		}

		user, err := auth.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("authentication failed")
			return err
		}

		setUser(c, user)

		GetLogger(c).Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

// RequireWrite allows reads for every authenticated user and other methods
// only for users allowed to perform task. Must run after RequireAuth.
func (auth *AuthMiddleware) RequireWrite(task model.Task) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetUser(c)
			if user == nil {
				return errs.NewUnauthorizedError("Access token required", true)
			}

			if denial := model.CanWrite(c.Request().Method, user.Role, user.Permissions, task); denial != model.DenialNone {
				GetLogger(c).Warn().
					Str("task", string(task)).
					Str("reason", string(denial)).
					Msg("permission denied")
				return errs.NewForbiddenError(string(denial), true)
			}

			return next(c)
		}
	}
}

// RequireAdmin restricts a route to admins. Must run after RequireAuth.
func (auth *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := GetUser(c)
		if user == nil {
			return errs.NewUnauthorizedError("Access token required", true)
		}
		if user.Role != model.RoleAdmin {
			return errs.NewForbiddenError("Only admins can manage users", true)
		}
		return next(c)
	}
}
