package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

type RepresentativeHandler struct {
	Handler
	representatives *service.RepresentativeService
}

func NewRepresentativeHandler(s *server.Server, representatives *service.RepresentativeService) *RepresentativeHandler {
	return &RepresentativeHandler{Handler: NewHandler(s), representatives: representatives}
}

func (h *RepresentativeHandler) ListRepresentatives(c echo.Context, _ *model.Empty) ([]model.Representative, error) {
	return h.representatives.ListRepresentatives(c.Request().Context())
}

func (h *RepresentativeHandler) SaveRepresentatives(c echo.Context, p *model.SaveRepresentativesPayload) ([]model.Representative, error) {
	return h.representatives.SaveRepresentatives(c.Request().Context(), p)
}

func (h *RepresentativeHandler) UploadImage(c echo.Context, p *model.UploadPayload) (*model.UploadResult, error) {
	fh, err := formFile(c, "image")
	if err != nil {
		return nil, err
	}
	return h.representatives.UploadImage(c.Request().Context(), fh, p.Category)
}

func (h *RepresentativeHandler) DeleteRepresentative(c echo.Context, p *model.IDParam) error {
	return h.representatives.DeleteRepresentative(c.Request().Context(), p.ID)
}
