package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.Empty) ([]model.User, error) {
	return h.users.ListUsers(c.Request().Context())
}

func (h *UserHandler) Me(c echo.Context, _ *model.Empty) (*model.User, error) {
	id, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.users.GetUser(c.Request().Context(), id)
}

func (h *UserHandler) CreateUser(c echo.Context, p *model.CreateUserPayload) (*model.User, error) {
	return h.users.CreateUser(c.Request().Context(), p)
}

func (h *UserHandler) UpdateUser(c echo.Context, p *model.UpdateUserPayload) (*model.User, error) {
	return h.users.UpdateUser(c.Request().Context(), p)
}

func (h *UserHandler) DeleteUser(c echo.Context, p *model.IDParam) error {
	actor, err := currentUserID(c)
	if err != nil {
		return err
	}
	return h.users.DeleteUser(c.Request().Context(), actor, p.ID)
}
