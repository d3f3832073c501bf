package service

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
)

type historicalRepository interface {
	GetHistorical(ctx context.Context) (*model.Historical, error)
	SaveHistorical(ctx context.Context, p model.SaveHistoricalPayload) (*model.Historical, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) (*model.HistoricalEvent, error)
	DeletePlace(ctx context.Context, id uuid.UUID) (*model.HistoricalPlace, error)
	DeleteAward(ctx context.Context, id uuid.UUID) (*model.HistoricalAward, error)
}

type HistoricalService struct {
	repo  historicalRepository
	files *FileRemover
	cache *ContentCache
}

func NewHistoricalService(repo historicalRepository, files *FileRemover, cache *ContentCache) *HistoricalService {
	return &HistoricalService{repo: repo, files: files, cache: cache}
}

func (s *HistoricalService) GetHistorical(ctx context.Context) (*model.Historical, error) {
	return s.repo.GetHistorical(ctx)
}

func (s *HistoricalService) SaveHistorical(ctx context.Context, p *model.SaveHistoricalPayload) (*model.Historical, error) {
	h, err := s.repo.SaveHistorical(ctx, *p)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return h, nil
}

func (s *HistoricalService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *HistoricalService) DeletePlace(ctx context.Context, id uuid.UUID) error {
	place, err := s.repo.DeletePlace(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	if place.Image != nil {
		s.files.Remove(ctx, *place.Image)
	}
	return nil
}

func (s *HistoricalService) DeleteAward(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.DeleteAward(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
