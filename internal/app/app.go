package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"shrinkr/internal/cache"
	"shrinkr/internal/config"
	"shrinkr/internal/database"
	"shrinkr/internal/jwt"
	"shrinkr/internal/metrics"
	"shrinkr/internal/middleware"
	"shrinkr/internal/repository"
	"shrinkr/internal/service"
)

// Options adjusts how New assembles the application
type Options struct {
	Clock          service.Clock // nil means the system clock
	SkipMigrations bool
}

// App owns every long-lived dependency of the service
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	URLService  service.URLService
	AuthService service.AuthService
	JWT         *jwt.JWTService
	Metrics     *metrics.Metrics
	Router      *gin.Engine

	registry *prometheus.Registry
	db       *sqlx.DB
	cache    cache.Cache
	limiters []*middleware.RateLimiter
}

// New connects storage and cache, then wires services, controllers and routes
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	a := &App{
		Config:   cfg,
		Logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.Metrics = metrics.NewMetrics(a.registry)

	urlRepo, userRepo, err := a.openStorage(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Redis is optional, continue without cache if it is unavailable
	if cfg.RedisURL != "" {
		a.cache, err = cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
			a.cache = nil
		} else {
			logger.Info("connected to redis cache")
		}
	}

	a.JWT = jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)
	a.URLService = service.NewURLService(urlRepo, a.cache, logger, a.Metrics, service.URLServiceConfig{
		BaseURL:  cfg.BaseURL,
		CacheTTL: cfg.CacheTTL,
		Clock:    opts.Clock,
	})
	a.AuthService = service.NewAuthService(userRepo, a.JWT)

	if a.Router, err = a.newRouter(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) openStorage(ctx context.Context, opts Options) (repository.URLRepository, repository.UserRepository, error) {
	switch a.Config.StorageDriver {
	case config.StorageDriverMemory:
		a.Logger.Warn("using in-memory storage, data is lost on restart")
		return repository.NewMemoryURLRepository(), repository.NewMemoryUserRepository(), nil

	case config.StorageDriverPostgres:
		db, err := database.NewConnection(ctx, a.Config.DatabaseURL, a.Logger)
		if err != nil {
			return nil, nil, err
		}
		if !opts.SkipMigrations {
			if err := database.RunMigrations(db, a.Logger); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		a.db = db
		return repository.NewURLRepository(db), repository.NewUserRepository(db), nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", a.Config.StorageDriver)
}

// Close releases limiters, cache and database connections
func (a *App) Close() error {
	for _, l := range a.limiters {
		l.Stop()
	}

	var errs []error
	if a.cache != nil {
		errs = append(errs, a.cache.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
