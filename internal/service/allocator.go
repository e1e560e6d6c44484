package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"shrinkr/internal/entities"
	"shrinkr/internal/metrics"
	"shrinkr/internal/repository"
)

const (
	DefaultCodeLength = 7
	MinSlugLength     = 3
	MaxSlugLength     = 50

	attemptsPerLength = 10
	maxWidenings      = 3
)

// codeAlphabet has 64 symbols, so masking a random byte with 63 is uniform
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// Reserved slugs that cannot be used, compared case-insensitively
var reservedSlugs = map[string]bool{
	"api":       true,
	"admin":     true,
	"www":       true,
	"mail":      true,
	"ftp":       true,
	"localhost": true,
	"health":    true,
	"auth":      true,
	"create":    true,
	"urls":      true,
}

// CodeAllocator assigns a unique short code to a URL and persists it in the
// same step. Uniqueness comes from the storage constraint, so a random code
// is never pre-checked.
type CodeAllocator struct {
	repo    repository.URLRepository
	random  io.Reader
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewCodeAllocator uses crypto/rand as the random source
func NewCodeAllocator(repo repository.URLRepository, logger *zap.Logger, m *metrics.Metrics) *CodeAllocator {
	return &CodeAllocator{repo: repo, random: rand.Reader, logger: logger, metrics: m}
}

// Allocate persists url under custom when given, otherwise under a random code.
// On success url.ShortCode, url.ID and url.ClickCount are filled in.
func (a *CodeAllocator) Allocate(ctx context.Context, custom *string, url *entities.URL) error {
	// a blank slug means none; anything else is validated exactly as given
	if custom != nil && strings.TrimSpace(*custom) != "" {
		return a.allocateCustom(ctx, *custom, url)
	}
	return a.allocateRandom(ctx, url)
}

func (a *CodeAllocator) allocateCustom(ctx context.Context, slug string, url *entities.URL) error {
	if err := ValidateSlug(slug); err != nil {
		return err
	}

	// The existence check gives a clean answer in the common case; the
	// unique constraint still decides when two requests race for the slug.
	exists, err := a.repo.ExistsByShortCode(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to check short code availability: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %q", ErrSlugTaken, slug)
	}

	url.ShortCode = slug
	if err := a.repo.Create(ctx, url); err != nil {
		if errors.Is(err, repository.ErrDuplicateShortCode) {
			return fmt.Errorf("%w: %q", ErrSlugTaken, slug)
		}
		return fmt.Errorf("failed to create URL: %w", err)
	}

	a.metrics.URLsCreatedTotal.WithLabelValues("custom").Inc()
	return nil
}

func (a *CodeAllocator) allocateRandom(ctx context.Context, url *entities.URL) error {
	length := DefaultCodeLength
	for widening := 0; widening <= maxWidenings; widening++ {
		for attempt := 0; attempt < attemptsPerLength; attempt++ {
			code, err := generateCode(a.random, length)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInternal, err)
			}

			url.ShortCode = code
			err = a.repo.Create(ctx, url)
			if err == nil {
				a.metrics.URLsCreatedTotal.WithLabelValues("random").Inc()
				return nil
			}
			if !errors.Is(err, repository.ErrDuplicateShortCode) {
				return fmt.Errorf("failed to create URL: %w", err)
			}
			a.metrics.AllocationCollisionsTotal.Inc()
		}

		a.logger.Warn("short code space crowded, widening generated codes",
			zap.Int("from_length", length),
			zap.Int("to_length", length+1),
		)
		length++
	}

	url.ShortCode = ""
	return fmt.Errorf("%w: failed to allocate a unique short code after %d attempts",
		ErrInternal, attemptsPerLength*(maxWidenings+1))
}

// ValidateSlug checks a custom slug's length, charset and reserved words
func ValidateSlug(slug string) error {
	if len(slug) < MinSlugLength {
		return validationErrorf("short code must be at least %d characters long", MinSlugLength)
	}
	if len(slug) > MaxSlugLength {
		return validationErrorf("short code must be at most %d characters long", MaxSlugLength)
	}
	if !isCodeCharset(slug) {
		return validationErrorf("short code can only contain letters, numbers, hyphens, and underscores")
	}
	if reservedSlugs[strings.ToLower(slug)] {
		return fmt.Errorf("%w: %q cannot be used", ErrReservedSlug, slug)
	}
	return nil
}

// IsWellFormedCode reports whether s could be a stored short code at all
func IsWellFormedCode(s string) bool {
	return len(s) >= MinSlugLength && len(s) <= MaxSlugLength && isCodeCharset(s)
}

func isCodeCharset(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(codeAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

func generateCode(r io.Reader, length int) (string, error) {
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[b&63]
	}
	return string(buf), nil
}
