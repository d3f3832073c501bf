package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

type AnnouncementHandler struct {
	Handler
	announcements *service.AnnouncementService
}

func NewAnnouncementHandler(s *server.Server, announcements *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{Handler: NewHandler(s), announcements: announcements}
}

func (h *AnnouncementHandler) ListAnnouncements(c echo.Context, _ *model.Empty) ([]model.Announcement, error) {
	return h.announcements.ListAnnouncements(c.Request().Context())
}

func (h *AnnouncementHandler) SaveAnnouncements(c echo.Context, p *model.SaveAnnouncementsPayload) ([]model.Announcement, error) {
	return h.announcements.SaveAnnouncements(c.Request().Context(), p)
}

func (h *AnnouncementHandler) UploadDocument(c echo.Context, p *model.UploadPayload) (*model.UploadResult, error) {
	fh, err := formFile(c, "document")
	if err != nil {
		return nil, err
	}
	return h.announcements.UploadDocument(c.Request().Context(), fh, p.Category)
}

func (h *AnnouncementHandler) DeleteAnnouncement(c echo.Context, p *model.IDParam) error {
	return h.announcements.DeleteAnnouncement(c.Request().Context(), p.ID)
}
