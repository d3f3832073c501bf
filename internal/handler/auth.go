package handler

import (
	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/middleware"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Handler: NewHandler(s), auth: auth}
}

func (h *AuthHandler) Login(c echo.Context, p *model.LoginPayload) (*model.LoginResponse, error) {
	return h.auth.Login(c.Request().Context(), p)
}

func (h *AuthHandler) Me(c echo.Context, _ *model.Empty) (*model.User, error) {
	id, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.auth.Me(c.Request().Context(), id)
}

func (h *AuthHandler) ChangePassword(c echo.Context, p *model.ChangePasswordPayload) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	return h.auth.ChangePassword(c.Request().Context(), id, p)
}

// currentUserID returns the id RequireAuth stored on the context.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetUserUUID(c)
	if !ok {
		return uuid.Nil, errs.NewUnauthorizedError("Access token required", false)
	}
	return id, nil
}
