package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

// ImageHandler serves the gallery image endpoints.
type ImageHandler struct {
	Handler
	images *service.ImageService
}

func NewImageHandler(s *server.Server, images *service.ImageService) *ImageHandler {
	return &ImageHandler{Handler: NewHandler(s), images: images}
}

func (h *ImageHandler) ListImages(c echo.Context, q *model.ListImagesQuery) ([]model.Image, error) {
	return h.images.ListImages(c.Request().Context(), q)
}

func (h *ImageHandler) UploadImage(c echo.Context, p *model.UploadImagePayload) (*model.Image, error) {
	fh, err := formFile(c, "image")
	if err != nil {
		return nil, err
	}
	return h.images.UploadImage(c.Request().Context(), fh, p)
}

func (h *ImageHandler) DeleteImage(c echo.Context, p *model.IDParam) error {
	return h.images.DeleteImage(c.Request().Context(), p.ID)
}
