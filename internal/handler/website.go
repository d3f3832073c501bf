package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

// WebsiteHandler serves the cached, read-only payloads the public site renders from.
type WebsiteHandler struct {
	Handler
	website *service.WebsiteService
}

func NewWebsiteHandler(s *server.Server, website *service.WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{Handler: NewHandler(s), website: website}
}

func (h *WebsiteHandler) GetAll(c echo.Context, _ *model.Empty) (*model.WebsiteData, error) {
	return h.website.GetAll(c.Request().Context())
}

func (h *WebsiteHandler) GetOfficials(c echo.Context, _ *model.Empty) ([]model.Representative, error) {
	return h.website.GetOfficials(c.Request().Context())
}

func (h *WebsiteHandler) GetGallery(c echo.Context, _ *model.Empty) ([]model.Image, error) {
	return h.website.GetGallery(c.Request().Context())
}
