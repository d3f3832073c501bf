package router

import (
	"net/http"

	"github.com/deppfellow/grampanchayat/internal/handler"
	"github.com/deppfellow/grampanchayat/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares, loginRatePerMinute int) {
	a := h.Auth
	auth := api.Group("/auth")

	auth.POST("/login", handler.HandleWithMessage(a.Handler, a.Login, http.StatusOK, "Login successful"),
		m.RateLimit.PerIP(loginRatePerMinute))
	auth.GET("/me", handler.Handle(a.Handler, a.Me, http.StatusOK), m.Auth.RequireAuth)
	auth.PUT("/change-password",
		handler.HandleNoContent(a.Handler, a.ChangePassword, http.StatusOK, "Password changed successfully"),
		m.Auth.RequireAuth)
}

func registerUserRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	u := h.Users
	users := api.Group("/users", m.Auth.RequireAuth)

	users.GET("/me", handler.Handle(u.Handler, u.Me, http.StatusOK))

	users.GET("", handler.Handle(u.Handler, u.ListUsers, http.StatusOK), m.Auth.RequireAdmin)
	users.POST("", handler.HandleWithMessage(u.Handler, u.CreateUser, http.StatusCreated, "User created successfully"),
		m.Auth.RequireAdmin)
	users.PUT("/:id", handler.HandleWithMessage(u.Handler, u.UpdateUser, http.StatusOK, "User updated successfully"),
		m.Auth.RequireAdmin)
	users.DELETE("/:id", handler.HandleNoContent(u.Handler, u.DeleteUser, http.StatusOK, "User deleted successfully"),
		m.Auth.RequireAdmin)
}
