package service

import (
	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/lib/job"
	"github.com/deppfellow/grampanchayat/internal/repository"
	"github.com/deppfellow/grampanchayat/internal/server"
)

type Services struct {
	Auth            *AuthService
	Users           *UserService
	Uploads         *UploadService
	Representatives *RepresentativeService
	Documents       *DocumentService
	Certificates    *CertificateService
	Images          *ImageService
	HeroImages      *HeroImageService
	Infrastructure  *InfrastructureService
	Historical      *HistoricalService
	Grampanchayat   *GrampanchayatService
	Announcements   *AnnouncementService
	Website         *WebsiteService
	Job             *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	uploads := NewUploadService(s)
	files := NewFileRemover(s)
	contentCache := NewContentCache(s)

	// Welcome emails need both the queue and a configured email client.
	var welcome welcomeEnqueuer
	if s.Job != nil && s.Email != nil {
		welcome = s.Job
	}

	services := &Services{
		Auth:            NewAuthService(s.Config.Auth, repos.Users, s.Logger),
		Users:           NewUserService(repos.Users, welcome, s.Config.Admin, s.Logger),
		Uploads:         uploads,
		Representatives: NewRepresentativeService(repos.Representatives, uploads, files, contentCache),
		Documents:       NewDocumentService(repos.Documents, contentCache),
		Certificates:    NewCertificateService(repos.Certificates, contentCache),
		Images:          NewImageService(repos.Images, uploads, files, contentCache, s.Logger),
		HeroImages:      NewHeroImageService(repos.HeroImages, uploads, files, contentCache),
		Infrastructure:  NewInfrastructureService(repos.Infrastructure, contentCache),
		Historical:      NewHistoricalService(repos.Historical, files, contentCache),
		Grampanchayat:   NewGrampanchayatService(repos.Grampanchayat, contentCache),
		Announcements:   NewAnnouncementService(repos.Announcements, uploads, files, contentCache),
		Job:             s.Job,
	}

	ttl := config.DefaultCacheConfig().TTL
	if s.Config.Cache != nil {
		ttl = s.Config.Cache.TTL
	}
	services.Website = NewWebsiteService(services, s.Cache, ttl, s.Logger)

	return services, nil
}
