package service

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/google/uuid"
)

type certificateRepository interface {
	ListActiveCertificates(ctx context.Context) ([]model.Certificate, error)
	SaveCertificates(ctx context.Context, certs []model.CertificateInput) ([]model.Certificate, error)
	DeleteCertificate(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
}

type CertificateService struct {
	repo  certificateRepository
	cache *ContentCache
}

func NewCertificateService(repo certificateRepository, cache *ContentCache) *CertificateService {
	return &CertificateService{repo: repo, cache: cache}
}

func (s *CertificateService) ListCertificates(ctx context.Context) ([]model.Certificate, error) {
	return s.repo.ListActiveCertificates(ctx)
}

func (s *CertificateService) SaveCertificates(ctx context.Context, p *model.SaveCertificatesPayload) ([]model.Certificate, error) {
	certs, err := s.repo.SaveCertificates(ctx, p.Certificates)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return certs, nil
}

func (s *CertificateService) DeleteCertificate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.DeleteCertificate(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
