package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

// HeroImageHandler serves the homepage slider. At most three images are active.
type HeroImageHandler struct {
	Handler
	heroImages *service.HeroImageService
}

func NewHeroImageHandler(s *server.Server, heroImages *service.HeroImageService) *HeroImageHandler {
	return &HeroImageHandler{Handler: NewHandler(s), heroImages: heroImages}
}

func (h *HeroImageHandler) ListHeroImages(c echo.Context, _ *model.Empty) ([]model.HeroImage, error) {
	return h.heroImages.ListHeroImages(c.Request().Context())
}

func (h *HeroImageHandler) UploadHeroImage(c echo.Context, _ *model.Empty) (*model.HeroImage, error) {
	fh, err := formFile(c, "image")
	if err != nil {
		return nil, err
	}
	return h.heroImages.UploadHeroImage(c.Request().Context(), fh)
}

func (h *HeroImageHandler) UpdateOrder(c echo.Context, p *model.UpdateHeroOrderPayload) (*model.HeroImage, error) {
	return h.heroImages.UpdateOrder(c.Request().Context(), p)
}

func (h *HeroImageHandler) DeleteHeroImage(c echo.Context, p *model.IDParam) (*model.HeroImage, error) {
	return h.heroImages.DeleteHeroImage(c.Request().Context(), p.ID)
}
