package service

import (
	"context"
	"time"

	"github.com/deppfellow/grampanchayat/internal/lib/cache"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// WebsiteService serves the public pages. Results are cached until the next
// content write or for ttl, whichever comes first.
type WebsiteService struct {
	representatives *RepresentativeService
	certificates    *CertificateService
	images          *ImageService
	heroImages      *HeroImageService
	infrastructure  *InfrastructureService
	historical      *HistoricalService
	grampanchayat   *GrampanchayatService
	announcements   *AnnouncementService

	store  cache.Store
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewWebsiteService(services *Services, store cache.Store, ttl time.Duration, logger *zerolog.Logger) *WebsiteService {
	return &WebsiteService{
		representatives: services.Representatives,
		certificates:    services.Certificates,
		images:          services.Images,
		heroImages:      services.HeroImages,
		infrastructure:  services.Infrastructure,
		historical:      services.Historical,
		grampanchayat:   services.Grampanchayat,
		announcements:   services.Announcements,
		store:           store,
		ttl:             ttl,
		logger:          logger,
	}
}

// cachedEntry is a website payload with the generation it was loaded under.
type cachedEntry[T any] struct {
	Generation string `json:"generation"`
	Value      T      `json:"value"`
}

// generation reads the current website cache generation. An empty string
// means no write has happened since the cache was created.
func (s *WebsiteService) generation(ctx context.Context) (string, error) {
	var gen string
	if _, err := s.store.Get(ctx, cache.KeyWebsiteGeneration, &gen); err != nil {
		return "", err
	}
	return gen, nil
}

// cached returns the value at key, loading and storing it on a miss. Entries
// from an older generation count as a miss. Cache failures are logged and
// fall through to load.
func cached[T any](ctx context.Context, s *WebsiteService, key string, load func(context.Context) (T, error)) (T, error) {
	if s.store == nil {
		return load(ctx)
	}

	gen, err := s.generation(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to read website cache generation")
		return load(ctx)
	}

	var entry cachedEntry[T]
	found, err := s.store.Get(ctx, key, &entry)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to read website cache")
	} else if found && entry.Generation == gen {
		return entry.Value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if s.ttl > 0 {
		entry = cachedEntry[T]{Generation: gen, Value: value}
		if err := s.store.Set(ctx, key, entry, s.ttl); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to write website cache")
		}
	}
	return value, nil
}

func (s *WebsiteService) GetAll(ctx context.Context) (*model.WebsiteData, error) {
	return cached(ctx, s, cache.KeyWebsiteAll, s.loadAll)
}

func (s *WebsiteService) loadAll(ctx context.Context) (*model.WebsiteData, error) {
	data := &model.WebsiteData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Representatives, err = s.representatives.ListRepresentatives(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Certificates, err = s.certificates.ListCertificates(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Images, err = s.images.ListImages(ctx, &model.ListImagesQuery{})
		return err
	})
	g.Go(func() (err error) {
		data.Infrastructure, err = s.infrastructure.ListInfrastructure(ctx)
		return err
	})
	g.Go(func() error {
		h, err := s.historical.GetHistorical(ctx)
		if err != nil {
			return err
		}
		data.Historical = *h
		return nil
	})
	g.Go(func() (err error) {
		data.Grampanchayat, err = s.grampanchayat.GetGrampanchayat(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.HeroImages, err = s.heroImages.ListHeroImages(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Announcements, err = s.announcements.ListAnnouncements(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *WebsiteService) GetOfficials(ctx context.Context) ([]model.Representative, error) {
	return cached(ctx, s, cache.KeyWebsiteOfficials, s.representatives.ListRepresentatives)
}

func (s *WebsiteService) GetGallery(ctx context.Context) ([]model.Image, error) {
	return cached(ctx, s, cache.KeyWebsiteGallery, func(ctx context.Context) ([]model.Image, error) {
		return s.images.ListImages(ctx, &model.ListImagesQuery{Category: model.ImageCategoryGallery})
	})
}
