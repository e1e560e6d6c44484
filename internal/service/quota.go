package service

import (
	"context"
	"fmt"
	"strings"

	"shrinkr/internal/repository"
)

// AnonymousQuotaLimit is how many URLs one origin address may create without signing in
const AnonymousQuotaLimit = 3

const ipv4MappedPrefix = "::ffff:"

// NormalizeAddress strips an IPv4-mapped IPv6 prefix so both forms of
// the same client count against one quota
func NormalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if len(addr) > len(ipv4MappedPrefix) && strings.EqualFold(addr[:len(ipv4MappedPrefix)], ipv4MappedPrefix) {
		rest := addr[len(ipv4MappedPrefix):]
		if strings.Contains(rest, ".") {
			return rest
		}
	}
	return addr
}

// QuotaUsage is an address's standing against the anonymous limit
type QuotaUsage struct {
	Current   int
	Limit     int
	Remaining int
}

// QuotaGuard limits anonymous URL creation per origin address.
// Every anonymous URL from the address counts, expired ones included.
type QuotaGuard struct {
	repo  repository.URLRepository
	limit int
}

func NewQuotaGuard(repo repository.URLRepository) *QuotaGuard {
	return &QuotaGuard{repo: repo, limit: AnonymousQuotaLimit}
}

// CheckAndAdmit returns nil when the address may create another URL,
// or a *QuotaExceededError when it has reached the limit
func (q *QuotaGuard) CheckAndAdmit(ctx context.Context, address string) error {
	current, err := q.repo.CountAnonymousByAddress(ctx, NormalizeAddress(address))
	if err != nil {
		return fmt.Errorf("failed to check anonymous quota: %w", err)
	}
	if current >= q.limit {
		return &QuotaExceededError{Current: current, Limit: q.limit}
	}
	return nil
}

// Usage reports current, limit and remaining for the address
func (q *QuotaGuard) Usage(ctx context.Context, address string) (*QuotaUsage, error) {
	current, err := q.repo.CountAnonymousByAddress(ctx, NormalizeAddress(address))
	if err != nil {
		return nil, fmt.Errorf("failed to read anonymous quota: %w", err)
	}
	return &QuotaUsage{
		Current:   current,
		Limit:     q.limit,
		Remaining: max(0, q.limit-current),
	}, nil
}

// Reset deletes every anonymous URL from every address and returns their codes.
// It cannot be undone.
func (q *QuotaGuard) Reset(ctx context.Context) ([]string, error) {
	codes, err := q.repo.DeleteAnonymous(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset anonymous quota: %w", err)
	}
	return codes, nil
}
