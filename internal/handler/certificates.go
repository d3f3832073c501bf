package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

type CertificateHandler struct {
	Handler
	certificates *service.CertificateService
}

func NewCertificateHandler(s *server.Server, certificates *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{Handler: NewHandler(s), certificates: certificates}
}

func (h *CertificateHandler) ListCertificates(c echo.Context, _ *model.Empty) ([]model.Certificate, error) {
	return h.certificates.ListCertificates(c.Request().Context())
}

func (h *CertificateHandler) SaveCertificates(c echo.Context, p *model.SaveCertificatesPayload) ([]model.Certificate, error) {
	return h.certificates.SaveCertificates(c.Request().Context(), p)
}

func (h *CertificateHandler) DeleteCertificate(c echo.Context, p *model.IDParam) error {
	return h.certificates.DeleteCertificate(c.Request().Context(), p.ID)
}
