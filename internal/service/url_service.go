package service

import (
	"context"
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"shrinkr/internal/cache"
	"shrinkr/internal/entities"
	"shrinkr/internal/metrics"
	"shrinkr/internal/models"
	"shrinkr/internal/repository"
)

const maxLongURLLength = 2048

// URLService defines the interface for URL business logic
type URLService interface {
	CreateShortURL(ctx context.Context, req *models.CreateURLRequest, creator CreatorIdentity) (*models.CreateURLResponse, error)
	Resolve(ctx context.Context, shortCode string) (*ResolveResult, error)
	ToggleFavorite(ctx context.Context, urlID, userID string) (*models.FavoriteResponse, error)
	GetUserURLs(ctx context.Context, userID string) (*models.UserURLsResponse, error)
	GetUserStats(ctx context.Context, userID string) (*models.StatsResponse, error)
	UpdateExpiration(ctx context.Context, urlID, userID, option string) (*models.URLResponse, error)
	DeleteURL(ctx context.Context, urlID, userID string) error
	GetQuotaUsage(ctx context.Context, address string) (*models.QuotaUsageResponse, error)
	ResetAnonymousQuota(ctx context.Context) (*models.ResetQuotaResponse, error)
	PurgeExpired(ctx context.Context, retention time.Duration) (int, error)
	ShortCodeExists(ctx context.Context, shortCode string) (bool, error)
	ShortURL(shortCode string) string
}

// URLServiceConfig holds the knobs of URLService. A nil Clock means the system clock.
type URLServiceConfig struct {
	BaseURL  string
	CacheTTL time.Duration
	Clock    Clock
}

type urlService struct {
	repo      repository.URLRepository
	allocator *CodeAllocator
	quota     *QuotaGuard
	resolver  *RedirectResolver
	owners    *OwnershipGuard
	stats     StatsAggregator
	policy    ExpirationPolicy
	cache     *urlCache
	clock     Clock
	baseURL   string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

var _ URLService = (*urlService)(nil)

// NewURLService creates a new URL service. cacheClient may be nil.
func NewURLService(
	repo repository.URLRepository,
	cacheClient cache.Cache,
	logger *zap.Logger,
	m *metrics.Metrics,
	cfg URLServiceConfig,
) URLService {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	c := &urlCache{cache: cacheClient, ttl: ttl, logger: logger, metrics: m}

	return &urlService{
		repo:      repo,
		allocator: NewCodeAllocator(repo, logger, m),
		quota:     NewQuotaGuard(repo),
		resolver:  newRedirectResolver(repo, NewClickTracker(repo), clock, c, m),
		owners:    NewOwnershipGuard(repo),
		cache:     c,
		clock:     clock,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		logger:    logger,
		metrics:   m,
	}
}

// CreateShortURL checks the anonymous quota when there is no owner, then
// allocates a code and persists the URL in one step
func (s *urlService) CreateShortURL(ctx context.Context, req *models.CreateURLRequest, creator CreatorIdentity) (*models.CreateURLResponse, error) {
	longURL, err := validateLongURL(req.LongURL)
	if err != nil {
		return nil, err
	}

	option, err := ParseExpirationOption(req.ExpirationOption)
	if err != nil {
		return nil, err
	}

	if !creator.IsOwned() {
		if err := s.quota.CheckAndAdmit(ctx, creator.Address()); err != nil {
			if errors.Is(err, ErrQuotaExceeded) {
				s.metrics.QuotaRejectionsTotal.Inc()
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	now := s.clock.Now()
	expiresAt := s.policy.ComputeExpiry(now, option)
	url := &entities.URL{
		LongURL:   longURL,
		CreatedAt: now,
		ExpiresAt: &expiresAt,
		IsActive:  true,
	}
	creator.apply(url)

	if err := s.allocator.Allocate(ctx, req.CustomSlug, url); err != nil {
		if isCallerError(err) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("short URL created",
		zap.String("short_code", url.ShortCode),
		zap.Bool("owned", creator.IsOwned()),
		zap.String("expiration_option", string(option)),
	)

	return &models.CreateURLResponse{
		ID:               url.ID,
		ShortCode:        url.ShortCode,
		LongURL:          url.LongURL,
		ShortURL:         s.ShortURL(url.ShortCode),
		Status:           string(s.policy.DeriveStatus(url, now)),
		ExpirationOption: string(option),
		ExpiresAt:        url.ExpiresAt,
		CreatedAt:        url.CreatedAt,
	}, nil
}

func (s *urlService) Resolve(ctx context.Context, shortCode string) (*ResolveResult, error) {
	return s.resolver.Resolve(ctx, shortCode)
}

func (s *urlService) ToggleFavorite(ctx context.Context, urlID, userID string) (*models.FavoriteResponse, error) {
	isFavorite, err := s.owners.ToggleFavorite(ctx, urlID, userID)
	if err != nil {
		return nil, err
	}
	return &models.FavoriteResponse{IsFavorite: isFavorite}, nil
}

// GetUserURLs lists the owner's URLs with status and the summary over them,
// both evaluated at the same instant
func (s *urlService) GetUserURLs(ctx context.Context, userID string) (*models.UserURLsResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	urls, err := s.repo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	now := s.clock.Now()
	responses := make([]*models.URLResponse, len(urls))
	for i, url := range urls {
		responses[i] = s.toURLResponse(url, now)
	}

	return &models.UserURLsResponse{
		URLs:  responses,
		Stats: toStatsResponse(s.stats.Summarize(urls, now)),
	}, nil
}

func (s *urlService) GetUserStats(ctx context.Context, userID string) (*models.StatsResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	urls, err := s.repo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	stats := toStatsResponse(s.stats.Summarize(urls, s.clock.Now()))
	return &stats, nil
}

// UpdateExpiration restarts an owned URL's lifetime from now with a new option
func (s *urlService) UpdateExpiration(ctx context.Context, urlID, userID, option string) (*models.URLResponse, error) {
	opt, err := ParseExpirationOption(option)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	url, err := s.owners.SetExpiry(ctx, urlID, userID, s.policy.ComputeExpiry(now, opt))
	if err != nil {
		return nil, err
	}

	s.cache.evict(ctx, url.ShortCode)
	return s.toURLResponse(url, now), nil
}

func (s *urlService) DeleteURL(ctx context.Context, urlID, userID string) error {
	url, err := s.owners.Delete(ctx, urlID, userID)
	if err != nil {
		return err
	}

	s.cache.evict(ctx, url.ShortCode)
	return nil
}

func (s *urlService) GetQuotaUsage(ctx context.Context, address string) (*models.QuotaUsageResponse, error) {
	usage, err := s.quota.Usage(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return &models.QuotaUsageResponse{
		Current:   usage.Current,
		Limit:     usage.Limit,
		Remaining: usage.Remaining,
	}, nil
}

// ResetAnonymousQuota deletes every anonymous URL. Callers must have
// obtained explicit confirmation before calling it.
func (s *urlService) ResetAnonymousQuota(ctx context.Context) (*models.ResetQuotaResponse, error) {
	codes, err := s.quota.Reset(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.cache.evict(ctx, codes...)
	s.logger.Warn("anonymous quota reset", zap.Int("deleted_count", len(codes)))

	return &models.ResetQuotaResponse{DeletedCount: len(codes)}, nil
}

// PurgeExpired deletes URLs that expired more than retention ago
func (s *urlService) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := s.clock.Now().Add(-retention)

	codes, err := s.repo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.cache.evict(ctx, codes...)
	s.metrics.PurgedURLsTotal.Add(float64(len(codes)))
	s.logger.Info("expired URLs purged", zap.Int("count", len(codes)), zap.Time("cutoff", cutoff))

	return len(codes), nil
}

func (s *urlService) ShortCodeExists(ctx context.Context, shortCode string) (bool, error) {
	if !IsWellFormedCode(shortCode) {
		return false, nil
	}
	exists, err := s.repo.ExistsByShortCode(ctx, shortCode)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return exists, nil
}

// ShortURL composes <base>/<shortCode>
func (s *urlService) ShortURL(shortCode string) string {
	return s.baseURL + "/" + shortCode
}

func (s *urlService) toURLResponse(url *entities.URL, now time.Time) *models.URLResponse {
	return &models.URLResponse{
		ID:         url.ID,
		ShortCode:  url.ShortCode,
		ShortURL:   s.ShortURL(url.ShortCode),
		LongURL:    url.LongURL,
		ClickCount: url.ClickCount,
		CreatedAt:  url.CreatedAt,
		ExpiresAt:  url.ExpiresAt,
		IsFavorite: url.IsFavorite,
		IsActive:   url.IsActive,
		Status:     string(s.policy.DeriveStatus(url, now)),
	}
}

func toStatsResponse(s Summary) models.StatsResponse {
	return models.StatsResponse{
		TotalURLs:       s.TotalURLs,
		TotalClicks:     s.TotalClicks,
		ActiveURLs:      s.ActiveURLs,
		ExpiredURLs:     s.ExpiredURLs,
		ExpiringURLs:    s.ExpiringURLs,
		ClickRate:       s.ClickRate,
		AvgClicksPerURL: s.AvgClicksPerURL,
		ClickedURLs:     s.ClickedURLs,
	}
}

// validateLongURL accepts absolute http and https URLs with a host
func validateLongURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", validationErrorf("long_url is required")
	}
	if len(raw) > maxLongURLLength {
		return "", validationErrorf("long_url must be at most %d characters long", maxLongURLLength)
	}

	parsed, err := neturl.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", validationErrorf("long_url must be an absolute URL such as https://example.com")
	}
	if scheme := strings.ToLower(parsed.Scheme); scheme != "http" && scheme != "https" {
		return "", validationErrorf("long_url must use http or https")
	}
	return raw, nil
}

// isCallerError reports errors that describe a problem with the request itself
func isCallerError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrReservedSlug) ||
		errors.Is(err, ErrSlugTaken) ||
		errors.Is(err, ErrQuotaExceeded)
}
