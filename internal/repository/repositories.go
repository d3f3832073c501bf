package repository

import (
	"github.com/deppfellow/grampanchayat/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users           *UserRepository
	Representatives *RepresentativeRepository
	Documents       *DocumentRepository
	Certificates    *CertificateRepository
	Images          *ImageRepository
	HeroImages      *HeroImageRepository
	Infrastructure  *InfrastructureRepository
	Historical      *HistoricalRepository
	Grampanchayat   *GrampanchayatRepository
	Announcements   *AnnouncementRepository
}

// NewRepositories builds every repository on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(s),
		Representatives: NewRepresentativeRepository(s),
		Documents:       NewDocumentRepository(s),
		Certificates:    NewCertificateRepository(s),
		Images:          NewImageRepository(s),
		HeroImages:      NewHeroImageRepository(s),
		Infrastructure:  NewInfrastructureRepository(s),
		Historical:      NewHistoricalRepository(s),
		Grampanchayat:   NewGrampanchayatRepository(s),
		Announcements:   NewAnnouncementRepository(s),
	}
}
