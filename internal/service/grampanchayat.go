package service

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
)

type grampanchayatRepository interface {
	GetGrampanchayat(ctx context.Context) (*model.Grampanchayat, error)
	SaveGrampanchayat(ctx context.Context, p model.SaveGrampanchayatPayload) (*model.Grampanchayat, error)
}

type GrampanchayatService struct {
	repo  grampanchayatRepository
	cache *ContentCache
}

func NewGrampanchayatService(repo grampanchayatRepository, cache *ContentCache) *GrampanchayatService {
	return &GrampanchayatService{repo: repo, cache: cache}
}

// GetGrampanchayat returns nil when the info was never saved.
func (s *GrampanchayatService) GetGrampanchayat(ctx context.Context) (*model.Grampanchayat, error) {
	return s.repo.GetGrampanchayat(ctx)
}

func (s *GrampanchayatService) SaveGrampanchayat(ctx context.Context, p *model.SaveGrampanchayatPayload) (*model.Grampanchayat, error) {
	info, err := s.repo.SaveGrampanchayat(ctx, *p)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return info, nil
}
