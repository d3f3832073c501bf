package service

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
)

type infrastructureRepository interface {
	ListInfrastructure(ctx context.Context) ([]model.Infrastructure, error)
	ListBySubcategory(ctx context.Context, subcategory string) ([]model.Infrastructure, error)
	SaveInfrastructure(ctx context.Context, items []model.InfrastructureInput, replace *string) ([]model.Infrastructure, error)
	DeleteInfrastructure(ctx context.Context, id uuid.UUID) (*model.Infrastructure, error)
}

type InfrastructureService struct {
	repo  infrastructureRepository
	cache *ContentCache
}

func NewInfrastructureService(repo infrastructureRepository, cache *ContentCache) *InfrastructureService {
	return &InfrastructureService{repo: repo, cache: cache}
}

func (s *InfrastructureService) ListInfrastructure(ctx context.Context) ([]model.Infrastructure, error) {
	return s.repo.ListInfrastructure(ctx)
}

func (s *InfrastructureService) ListBySubcategory(ctx context.Context, subcategory string) ([]model.Infrastructure, error) {
	return s.repo.ListBySubcategory(ctx, subcategory)
}

func (s *InfrastructureService) SaveInfrastructure(ctx context.Context, p *model.SaveInfrastructurePayload) ([]model.Infrastructure, error) {
	items, err := s.repo.SaveInfrastructure(ctx, p.Infrastructure, p.Subcategory)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return items, nil
}

func (s *InfrastructureService) DeleteInfrastructure(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.DeleteInfrastructure(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
