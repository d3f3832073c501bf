package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

type GrampanchayatHandler struct {
	Handler
	grampanchayat *service.GrampanchayatService
}

func NewGrampanchayatHandler(s *server.Server, grampanchayat *service.GrampanchayatService) *GrampanchayatHandler {
	return &GrampanchayatHandler{Handler: NewHandler(s), grampanchayat: grampanchayat}
}

// GetGrampanchayat returns the office details, or null before they are first saved.
func (h *GrampanchayatHandler) GetGrampanchayat(c echo.Context, _ *model.Empty) (*model.Grampanchayat, error) {
	return h.grampanchayat.GetGrampanchayat(c.Request().Context())
}

func (h *GrampanchayatHandler) SaveGrampanchayat(c echo.Context, p *model.SaveGrampanchayatPayload) (*model.Grampanchayat, error) {
	return h.grampanchayat.SaveGrampanchayat(c.Request().Context(), p)
}
