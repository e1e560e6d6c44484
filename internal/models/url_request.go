package models

// CreateURLRequest represents the request body for creating a short URL
type CreateURLRequest struct {
	LongURL          string  `json:"long_url" binding:"required"`
	CustomSlug       *string `json:"custom_slug,omitempty"`       // Optional custom short code
	ExpirationOption string  `json:"expiration_option,omitempty"` // 5h, 1d, 7d or 14d (default)
}

// UpdateExpirationRequest re-applies an expiration option starting now
type UpdateExpirationRequest struct {
	ExpirationOption string `json:"expiration_option" binding:"required"`
}

// ResetQuotaRequest must carry confirm=true for the reset to run
type ResetQuotaRequest struct {
	Confirm bool `json:"confirm"`
}
