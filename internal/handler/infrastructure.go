package handler

import (
	"net/url"

	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

type InfrastructureHandler struct {
	Handler
	infrastructure *service.InfrastructureService
}

func NewInfrastructureHandler(s *server.Server, infrastructure *service.InfrastructureService) *InfrastructureHandler {
	return &InfrastructureHandler{Handler: NewHandler(s), infrastructure: infrastructure}
}

func (h *InfrastructureHandler) ListInfrastructure(c echo.Context, _ *model.Empty) ([]model.Infrastructure, error) {
	return h.infrastructure.ListInfrastructure(c.Request().Context())
}

func (h *InfrastructureHandler) ListBySubcategory(c echo.Context, p *model.SubcategoryParam) ([]model.Infrastructure, error) {
	// echo matches on the raw path when it holds escapes such as %2F.
	subcategory, err := url.PathUnescape(p.Subcategory)
	if err != nil {
		return nil, errs.NewBadRequestError("Invalid subcategory", true, nil, nil, nil)
	}
	return h.infrastructure.ListBySubcategory(c.Request().Context(), subcategory)
}

func (h *InfrastructureHandler) SaveInfrastructure(c echo.Context, p *model.SaveInfrastructurePayload) ([]model.Infrastructure, error) {
	return h.infrastructure.SaveInfrastructure(c.Request().Context(), p)
}

func (h *InfrastructureHandler) DeleteInfrastructure(c echo.Context, p *model.IDParam) error {
	return h.infrastructure.DeleteInfrastructure(c.Request().Context(), p.ID)
}
