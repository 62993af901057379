package catalog

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/killallgit/podcast-search/internal/models"
	"github.com/killallgit/podcast-search/internal/services/cache"
	apperrors "github.com/killallgit/podcast-search/pkg/errors"
	"github.com/killallgit/podcast-search/pkg/logger"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	serviceName = "catalog"
	cachePrefix = "catalog:search:"
)

type Service struct {
	fetcher        Fetcher
	repository     PodcastRepository
	cache          cache.Cache
	cacheTTL       time.Duration
	defaultLimit   int
	maxLimit       int
	mirrorFallback bool
	now            func() time.Time
}

// Option configures the catalog service
type Option func(*Service)

// WithRepository enables mirroring upstream pages into the database
func WithRepository(repo PodcastRepository) Option {
	return func(s *Service) { s.repository = repo }
}

// WithCache caches upstream pages for ttl
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithLimits overrides the default and maximum page size
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(s *Service) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
	}
}

// WithMirrorFallback serves pages from the mirror when the upstream fails
func WithMirrorFallback(enabled bool) Option {
	return func(s *Service) { s.mirrorFallback = enabled }
}

func NewService(fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher:      fetcher,
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.defaultLimit > s.maxLimit {
		s.defaultLimit = s.maxLimit
	}
	return s
}

// Normalize applies defaults and validates the page window.
// Zero page and limit mean "use the default".
func (s *Service) Normalize(q Query) (Query, error) {
	q.Search = strings.TrimSpace(q.Search)

	if q.Page < 0 {
		return q, apperrors.ValidationError("page", "must be at least 1")
	}
	if q.Page == 0 {
		q.Page = 1
	}

	if q.Limit == 0 {
		q.Limit = s.defaultLimit
	}
	if q.Limit < 1 || q.Limit > s.maxLimit {
		return q, apperrors.ValidationError("limit", "must be between 1 and "+strconv.Itoa(s.maxLimit))
	}

	return q, nil
}

// Search returns one page of podcasts: cache, then upstream, then mirror fallback
func (s *Service) Search(ctx context.Context, q Query) (*Page, error) {
	q, err := s.Normalize(q)
	if err != nil {
		return nil, err
	}
	log := logger.WithContext(ctx)

	key := cachePrefix + q.Values().Encode()
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, key); ok {
			var items []Podcast
			if err := json.Unmarshal(data, &items); err == nil {
				return &Page{Query: q, Items: items, Source: SourceCache}, nil
			}
			_ = s.cache.Delete(ctx, key)
		}
	}

	items, err := s.fetcher.List(ctx, q)
	if err != nil {
		upstreamErr := classify(err)
		if page, ok := s.fallback(ctx, q); ok {
			log.Warn().Err(err).Str("search", q.Search).Int("page", q.Page).
				Msg("catalog unavailable, serving mirror")
			return page, nil
		}
		return nil, upstreamErr
	}

	if s.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			_ = s.cache.Set(ctx, key, data, s.cacheTTL)
		}
	}
	s.mirror(ctx, items)

	return &Page{Query: q, Items: items, Source: SourceUpstream}, nil
}

// Get returns a single mirrored podcast
func (s *Service) Get(ctx context.Context, catalogID string) (*Podcast, error) {
	if s.repository == nil {
		return nil, apperrors.NotFound("podcast", catalogID)
	}
	row, err := s.repository.GetByCatalogID(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	p := FromModel(row)
	return &p, nil
}

// MirrorEnabled reports whether a repository is configured
func (s *Service) MirrorEnabled() bool {
	return s.repository != nil
}

func (s *Service) mirror(ctx context.Context, items []Podcast) {
	if s.repository == nil || len(items) == 0 {
		return
	}

	seenAt := s.now().UTC()
	rows := make([]models.Podcast, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		rows = append(rows, ToModel(item, seenAt))
	}

	if err := s.repository.UpsertMany(ctx, rows); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Int("items", len(rows)).Msg("failed to mirror catalog page")
	}
}

func (s *Service) fallback(ctx context.Context, q Query) (*Page, bool) {
	if !s.mirrorFallback || s.repository == nil {
		return nil, false
	}
	if ctx.Err() != nil {
		return nil, false
	}

	total, err := s.repository.Count(ctx)
	if err != nil || total == 0 {
		return nil, false
	}

	rows, err := s.repository.Search(ctx, q.Search, q.Page, q.Limit)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("mirror search failed")
		return nil, false
	}
	return &Page{Query: q, Items: FromModels(rows), Source: SourceMirror}, true
}

// classify maps upstream failures to application errors
func classify(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return apperrors.TimeoutError(serviceName, err)
	case errors.Is(err, ErrRateLimited):
		return apperrors.RateLimitError(serviceName)
	default:
		return apperrors.ExternalServiceError(serviceName, err)
	}
}
