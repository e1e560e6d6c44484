package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	devJWTSecret = "development-only-secret"
)

type Config struct {
	Env           string // development or production
	Port          int
	BaseURL       string // origin used to compose short URLs
	StorageDriver string
	DatabaseURL   string
	RedisURL      string // empty disables the cache
	CacheTTL      time.Duration
	JWTSecret     string // Secret key for JWT token signing
	JWTTTL        int    // JWT token expiration time in hours
	AdminToken    string // empty disables the admin endpoints
	LogLevel      string

	RateLimitRPS           float64 // general API endpoints, 0 disables
	RateLimitBurst         int
	RateLimitAuthRPS       float64
	RateLimitAuthBurst     int
	RateLimitShortenRPS    float64
	RateLimitShortenBurst  int
	RateLimitRedirectRPS   float64
	RateLimitRedirectBurst int

	CORSAllowedOrigins []string
	TrustedProxies     []string

	PurgeSchedule  string // cron spec, empty disables the purge job
	PurgeRetention time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", 8080)
	v.SetDefault("storage_driver", StorageDriverPostgres)
	v.SetDefault("cache_ttl", time.Hour)
	v.SetDefault("jwt_ttl_hours", 24)
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_limit_rps", 10.0)
	v.SetDefault("rate_limit_burst", 20)
	v.SetDefault("rate_limit_auth_rps", 5.0)
	v.SetDefault("rate_limit_auth_burst", 10)
	v.SetDefault("rate_limit_shorten_rps", 2.0)
	v.SetDefault("rate_limit_shorten_burst", 5)
	v.SetDefault("rate_limit_redirect_rps", 30.0)
	v.SetDefault("rate_limit_redirect_burst", 60)
	v.SetDefault("purge_schedule", "@every 1h")
	v.SetDefault("purge_retention", 7*24*time.Hour)
}

// Load reads configuration from an optional .env file, the environment and
// any flags already bound to v. A nil v starts from an empty viper instance.
func Load(v *viper.Viper) (*Config, error) {
	// Missing .env is fine, variables may come from the environment
	_ = godotenv.Load()

	if v == nil {
		v = viper.New()
	}
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Env:                    strings.ToLower(v.GetString("app_env")),
		Port:                   v.GetInt("port"),
		BaseURL:                v.GetString("base_url"),
		StorageDriver:          strings.ToLower(v.GetString("storage_driver")),
		DatabaseURL:            v.GetString("database_url"),
		RedisURL:               v.GetString("redis_url"),
		CacheTTL:               v.GetDuration("cache_ttl"),
		JWTSecret:              v.GetString("jwt_secret"),
		JWTTTL:                 v.GetInt("jwt_ttl_hours"),
		AdminToken:             v.GetString("admin_token"),
		LogLevel:               v.GetString("log_level"),
		RateLimitRPS:           v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:         v.GetInt("rate_limit_burst"),
		RateLimitAuthRPS:       v.GetFloat64("rate_limit_auth_rps"),
		RateLimitAuthBurst:     v.GetInt("rate_limit_auth_burst"),
		RateLimitShortenRPS:    v.GetFloat64("rate_limit_shorten_rps"),
		RateLimitShortenBurst:  v.GetInt("rate_limit_shorten_burst"),
		RateLimitRedirectRPS:   v.GetFloat64("rate_limit_redirect_rps"),
		RateLimitRedirectBurst: v.GetInt("rate_limit_redirect_burst"),
		CORSAllowedOrigins:     splitList(v.GetString("cors_allowed_origins")),
		TrustedProxies:         splitList(v.GetString("trusted_proxies")),
		PurgeSchedule:          strings.TrimSpace(v.GetString("purge_schedule")),
		PurgeRetention:         v.GetDuration("purge_retention"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORAGE_DRIVER is postgres")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q: use postgres or memory", c.StorageDriver)
	}

	if c.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		c.JWTSecret = devJWTSecret
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL_HOURS must be positive")
	}
	if c.PurgeRetention < 0 {
		return errors.New("PURGE_RETENTION cannot be negative")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
