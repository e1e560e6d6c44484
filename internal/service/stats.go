package service

import (
	"math"
	"time"

	"shrinkr/internal/entities"
)

// Summary is a read-only roll-up of a set of URLs
type Summary struct {
	TotalURLs       int
	TotalClicks     int64
	ActiveURLs      int
	ExpiredURLs     int
	ExpiringURLs    int
	ClickRate       int64
	AvgClicksPerURL int64
	ClickedURLs     int
}

// StatsAggregator summarizes URLs using the expiration policy at a given time
type StatsAggregator struct {
	policy ExpirationPolicy
}

// Summarize buckets each URL by status at now and computes click rates.
// Rates are zero for an empty set.
func (a StatsAggregator) Summarize(urls []*entities.URL, now time.Time) Summary {
	var s Summary
	s.TotalURLs = len(urls)

	for _, url := range urls {
		s.TotalClicks += url.ClickCount
		if url.ClickCount > 0 {
			s.ClickedURLs++
		}

		switch a.policy.DeriveStatus(url, now) {
		case StatusActive:
			s.ActiveURLs++
		case StatusExpiringSoon:
			s.ExpiringURLs++
		case StatusExpired:
			s.ExpiredURLs++
		}
	}

	if s.TotalURLs > 0 {
		total := float64(s.TotalURLs)
		s.ClickRate = int64(math.Round(float64(s.ClickedURLs) / total * 100))
		s.AvgClicksPerURL = int64(math.Round(float64(s.TotalClicks) / total))
	}
	return s
}
