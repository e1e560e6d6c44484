package models

import "time"

// CreateURLResponse represents the response after creating a short URL
type CreateURLResponse struct {
	ID               string     `json:"id"`
	ShortCode        string     `json:"short_code"`
	LongURL          string     `json:"long_url"`
	ShortURL         string     `json:"short_url"` // Full short URL (base URL + short code)
	Status           string     `json:"status"`
	ExpirationOption string     `json:"expiration_option"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// URLResponse is a single owned URL with its derived status
type URLResponse struct {
	ID         string     `json:"id"`
	ShortCode  string     `json:"short_code"`
	ShortURL   string     `json:"short_url"`
	LongURL    string     `json:"long_url"`
	ClickCount int64      `json:"click_count"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	IsFavorite bool       `json:"is_favorite"`
	IsActive   bool       `json:"is_active"`
	Status     string     `json:"status"`
}

// StatsResponse summarizes an owner's URLs
type StatsResponse struct {
	TotalURLs       int   `json:"total_urls"`
	TotalClicks     int64 `json:"total_clicks"`
	ActiveURLs      int   `json:"active_urls"`
	ExpiredURLs     int   `json:"expired_urls"`
	ExpiringURLs    int   `json:"expiring_urls"`
	ClickRate       int64 `json:"click_rate"` // percent of URLs clicked at least once
	AvgClicksPerURL int64 `json:"avg_clicks_per_url"`
	ClickedURLs     int   `json:"clicked_urls"`
}

// UserURLsResponse is the owner's listing plus the summary over it
type UserURLsResponse struct {
	URLs  []*URLResponse `json:"urls"`
	Stats StatsResponse  `json:"stats"`
}

// ResolveResponse is the JSON form of a resolution
type ResolveResponse struct {
	TargetURL  string `json:"target_url"`
	ClickCount int64  `json:"click_count"`
}

// FavoriteResponse carries the favorite flag after a toggle
type FavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// QuotaUsageResponse reports anonymous quota usage for an address
type QuotaUsageResponse struct {
	Current   int `json:"current"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// ResetQuotaResponse reports how many anonymous URLs a reset removed
type ResetQuotaResponse struct {
	DeletedCount int `json:"deleted_count"`
}
