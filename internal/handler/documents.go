package handler

import (
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/labstack/echo/v4"
)

type DocumentHandler struct {
	Handler
	documents *service.DocumentService
}

func NewDocumentHandler(s *server.Server, documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{Handler: NewHandler(s), documents: documents}
}

func (h *DocumentHandler) ListDocuments(c echo.Context, q *model.ListDocumentsQuery) ([]model.Document, error) {
	return h.documents.ListDocuments(c.Request().Context(), q)
}

func (h *DocumentHandler) GetDocument(c echo.Context, p *model.IDParam) (*model.Document, error) {
	return h.documents.GetDocument(c.Request().Context(), p.ID)
}

func (h *DocumentHandler) CreateDocuments(c echo.Context, p *model.CreateDocumentsPayload) ([]model.Document, error) {
	return h.documents.CreateDocuments(c.Request().Context(), p)
}

func (h *DocumentHandler) UpdateDocument(c echo.Context, p *model.UpdateDocumentPayload) (*model.Document, error) {
	return h.documents.UpdateDocument(c.Request().Context(), p)
}

func (h *DocumentHandler) DeleteDocument(c echo.Context, p *model.IDParam) error {
	return h.documents.DeleteDocument(c.Request().Context(), p.ID)
}

func (h *DocumentHandler) DeleteDocuments(c echo.Context, p *model.DeleteDocumentsPayload) (*model.DeletedCount, error) {
	return h.documents.DeleteDocuments(c.Request().Context(), p)
}
