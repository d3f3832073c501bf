package handler

import (
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Info            *InfoHandler
	Health          *HealthHandler
	OpenAPI         *OpenAPIHandler
	Auth            *AuthHandler
	Users           *UserHandler
	Representatives *RepresentativeHandler
	Documents       *DocumentHandler
	Certificates    *CertificateHandler
	Images          *ImageHandler
	HeroImages      *HeroImageHandler
	Infrastructure  *InfrastructureHandler
	Historical      *HistoricalHandler
	Grampanchayat   *GrampanchayatHandler
	Announcements   *AnnouncementHandler
	Website         *WebsiteHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Info:            NewInfoHandler(s),
		Health:          NewHealthHandler(s),
		OpenAPI:         NewOpenAPIHandler(s),
		Auth:            NewAuthHandler(s, services.Auth),
		Users:           NewUserHandler(s, services.Users),
		Representatives: NewRepresentativeHandler(s, services.Representatives),
		Documents:       NewDocumentHandler(s, services.Documents),
		Certificates:    NewCertificateHandler(s, services.Certificates),
		Images:          NewImageHandler(s, services.Images),
		HeroImages:      NewHeroImageHandler(s, services.HeroImages),
		Infrastructure:  NewInfrastructureHandler(s, services.Infrastructure),
		Historical:      NewHistoricalHandler(s, services.Historical),
		Grampanchayat:   NewGrampanchayatHandler(s, services.Grampanchayat),
		Announcements:   NewAnnouncementHandler(s, services.Announcements),
		Website:         NewWebsiteHandler(s, services.Website),
	}
}
