package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

// HistoricalHandler serves village history: events, places and awards.
type HistoricalHandler struct {
	Handler
	historical *service.HistoricalService
}

func NewHistoricalHandler(s *server.Server, historical *service.HistoricalService) *HistoricalHandler {
	return &HistoricalHandler{Handler: NewHandler(s), historical: historical}
}

func (h *HistoricalHandler) GetHistorical(c echo.Context, _ *model.Empty) (*model.Historical, error) {
	return h.historical.GetHistorical(c.Request().Context())
}

func (h *HistoricalHandler) SaveHistorical(c echo.Context, p *model.SaveHistoricalPayload) (*model.Historical, error) {
	return h.historical.SaveHistorical(c.Request().Context(), p)
}

func (h *HistoricalHandler) DeleteEvent(c echo.Context, p *model.IDParam) error {
	return h.historical.DeleteEvent(c.Request().Context(), p.ID)
}

func (h *HistoricalHandler) DeletePlace(c echo.Context, p *model.IDParam) error {
	return h.historical.DeletePlace(c.Request().Context(), p.ID)
}

func (h *HistoricalHandler) DeleteAward(c echo.Context, p *model.IDParam) error {
	return h.historical.DeleteAward(c.Request().Context(), p.ID)
}
