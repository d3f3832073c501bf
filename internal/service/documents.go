package service

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
)

type documentRepository interface {
	ListDocuments(ctx context.Context, category string) ([]model.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*model.Document, error)
	CreateDocuments(ctx context.Context, docs []model.DocumentInput) ([]model.Document, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, in model.DocumentInput) (*model.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) (*model.Document, error)
	DeleteDocuments(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type DocumentService struct {
	repo  documentRepository
	cache *ContentCache
}

func NewDocumentService(repo documentRepository, cache *ContentCache) *DocumentService {
	return &DocumentService{repo: repo, cache: cache}
}

func (s *DocumentService) ListDocuments(ctx context.Context, q *model.ListDocumentsQuery) ([]model.Document, error) {
	return s.repo.ListDocuments(ctx, q.Category)
}

func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	return s.repo.GetDocument(ctx, id)
}

func (s *DocumentService) CreateDocuments(ctx context.Context, p *model.CreateDocumentsPayload) ([]model.Document, error) {
	docs, err := s.repo.CreateDocuments(ctx, p.Documents)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return docs, nil
}

func (s *DocumentService) UpdateDocument(ctx context.Context, p *model.UpdateDocumentPayload) (*model.Document, error) {
	doc, err := s.repo.UpdateDocument(ctx, p.ID, p.DocumentInput)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return doc, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.DeleteDocument(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *DocumentService) DeleteDocuments(ctx context.Context, p *model.DeleteDocumentsPayload) (*model.DeletedCount, error) {
	n, err := s.repo.DeleteDocuments(ctx, p.IDs)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &model.DeletedCount{DeletedCount: n}, nil
}
