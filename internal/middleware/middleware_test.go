package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	users map[string]*model.User
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*model.User, error) {
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, errs.NewUnauthorizedError("Invalid or expired token", true)
}

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{CORSAllowedOrigins: []string{"http://localhost:3000"}, BodyLimit: "1M"},
		},
		Logger: &logger,
	}
}

func newTestEcho(m *Middlewares) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.ContextEnhancer.EnhanceContext())
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAuthAndWrite(t *testing.T) {
	editor := &model.User{Base: model.Base{ID: uuid.New()}, Role: model.RoleEditor, Permissions: []string{"task1"}, IsActive: true}
	viewer := &model.User{Base: model.Base{ID: uuid.New()}, Role: model.RoleViewer, Permissions: []string{"*"}, IsActive: true}
	admin := &model.User{Base: model.Base{ID: uuid.New()}, Role: model.RoleAdmin, IsActive: true}

	m := NewMiddlewares(testServer(), &fakeAuthenticator{users: map[string]*model.User{
		"editor": editor, "viewer": viewer, "admin": admin,
	}})
	e := newTestEcho(m)

	ok := func(c echo.Context) error {
		assert.Equal(t, GetUser(c).ID.String(), GetUserID(c))
		return c.NoContent(http.StatusNoContent)
	}
	reps := e.Group("/api/representatives", m.Auth.RequireAuth, m.Auth.RequireWrite(model.TaskRepresentatives))
	reps.GET("", ok)
	reps.POST("", ok)
	docs := e.Group("/api/documents", m.Auth.RequireAuth, m.Auth.RequireWrite(model.TaskDocuments))
	docs.POST("", ok)
	users := e.Group("/api/users", m.Auth.RequireAuth, m.Auth.RequireAdmin)
	users.GET("", ok)

	tests := []struct {
		name       string
		method     string
		path       string
		auth       string
		wantStatus int
		wantMsg    string
	}{
		{"no token", http.MethodPost, "/api/representatives", "", http.StatusUnauthorized, "Access token required"},
		{"wrong scheme", http.MethodPost, "/api/representatives", "Basic editor", http.StatusUnauthorized, "Access token required"},
		{"bad token", http.MethodPost, "/api/representatives", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"editor with task", http.MethodPost, "/api/representatives", "Bearer editor", http.StatusNoContent, ""},
		{"editor without task", http.MethodPost, "/api/documents", "Bearer editor", http.StatusForbidden, "Insufficient permissions"},
		{"viewer reads", http.MethodGet, "/api/representatives", "Bearer viewer", http.StatusNoContent, ""},
		{"viewer writes", http.MethodPost, "/api/representatives", "Bearer viewer", http.StatusForbidden, "Viewers have read-only access"},
		{"admin writes anything", http.MethodPost, "/api/documents", "bearer admin", http.StatusNoContent, ""},
		{"editor on users", http.MethodGet, "/api/users", "Bearer editor", http.StatusForbidden, "Only admins can manage users"},
		{"admin on users", http.MethodGet, "/api/users", "Bearer admin", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.auth)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantMsg != "" {
				body := decodeError(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, tt.wantMsg, body.Message)
				assert.Equal(t, tt.wantStatus, body.Status)
			}
		})
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	m := NewMiddlewares(testServer(), &fakeAuthenticator{})
	e := newTestEcho(m)

	e.GET("/not-found-row", func(c echo.Context) error {
		return sqlerr.NoRows("certificates")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection refused")
	})
	e.GET("/too-large", func(c echo.Context) error {
		return errs.NewPayloadTooLargeError("File too large. Maximum size is 5 MB")
	})

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"/not-found-row", http.StatusNotFound, "NOT_FOUND", "Certificate not found"},
		{"/boom", http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error"},
		{"/too-large", http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File too large. Maximum size is 5 MB"},
		{"/missing-route", http.StatusNotFound, "NOT_FOUND", "Route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestRateLimitPerIP(t *testing.T) {
	m := NewMiddlewares(testServer(), &fakeAuthenticator{})
	e := newTestEcho(m)
	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.RateLimit.PerIP(2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = bearerToken("abc.def")
	assert.False(t, ok)
}
