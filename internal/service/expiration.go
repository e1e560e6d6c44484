package service

import (
	"strings"
	"time"

	"shrinkr/internal/entities"
)

// ExpirationOption is one of the lifetimes a caller may pick for a URL
type ExpirationOption string

const (
	Expiration5Hours ExpirationOption = "5h"
	Expiration1Day   ExpirationOption = "1d"
	Expiration7Days  ExpirationOption = "7d"
	Expiration14Days ExpirationOption = "14d"

	DefaultExpirationOption = Expiration14Days
)

var expirationDurations = map[ExpirationOption]time.Duration{
	Expiration5Hours: 5 * time.Hour,
	Expiration1Day:   24 * time.Hour,
	Expiration7Days:  7 * 24 * time.Hour,
	Expiration14Days: 14 * 24 * time.Hour,
}

// ParseExpirationOption maps an empty string to the default and rejects unknown options
func ParseExpirationOption(s string) (ExpirationOption, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultExpirationOption, nil
	}
	opt := ExpirationOption(strings.ToLower(s))
	if _, ok := expirationDurations[opt]; !ok {
		return "", validationErrorf("invalid expiration option %q: use one of 5h, 1d, 7d, 14d", s)
	}
	return opt, nil
}

// Duration is zero for unknown options
func (o ExpirationOption) Duration() time.Duration {
	return expirationDurations[o]
}

// Status is the lifecycle state of a URL derived at read time
type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// ExpiringSoonWindow is how close to expiry a URL is reported as expiring_soon
const ExpiringSoonWindow = 24 * time.Hour

// ExpirationPolicy computes expiries and derives status. It holds no state.
type ExpirationPolicy struct{}

// ComputeExpiry returns from plus the option's lifetime
func (ExpirationPolicy) ComputeExpiry(from time.Time, opt ExpirationOption) time.Time {
	return from.Add(opt.Duration())
}

// IsExpired reports whether now is past the URL's expiry. A URL without an
// expiry is legacy data and always counts as expired.
func (ExpirationPolicy) IsExpired(url *entities.URL, now time.Time) bool {
	if url.ExpiresAt == nil {
		return true
	}
	return now.After(*url.ExpiresAt)
}

// DeriveStatus buckets a URL into active, expiring_soon or expired at now
func (p ExpirationPolicy) DeriveStatus(url *entities.URL, now time.Time) Status {
	if p.IsExpired(url, now) {
		return StatusExpired
	}
	if url.ExpiresAt.Before(now.Add(ExpiringSoonWindow)) {
		return StatusExpiringSoon
	}
	return StatusActive
}
