package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"shrinkr/internal/controllers"
	"shrinkr/internal/middleware"
)

func (a *App) newLimiter(rps float64, burst int) *middleware.RateLimiter {
	l := middleware.NewRateLimiter(rate.Limit(rps), burst)
	a.limiters = append(a.limiters, l)
	return l
}

func (a *App) newRouter() (*gin.Engine, error) {
	cfg := a.Config

	responder := controllers.NewErrorResponder(a.Logger, !cfg.IsProduction())
	shortenerController := controllers.NewShortenerController(a.URLService, responder)
	authController := controllers.NewAuthController(a.AuthService, responder)
	qrcodeController := controllers.NewQRCodeController(a.URLService, responder)
	adminController := controllers.NewAdminController(a.URLService, responder)

	generalRateLimiter := a.newLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	authRateLimiter := a.newLimiter(cfg.RateLimitAuthRPS, cfg.RateLimitAuthBurst)
	shortenRateLimiter := a.newLimiter(cfg.RateLimitShortenRPS, cfg.RateLimitShortenBurst)
	redirectRateLimiter := a.newLimiter(cfg.RateLimitRedirectRPS, cfg.RateLimitRedirectBurst)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(a.Logger),
		middleware.MetricsMiddleware(a.Metrics),
	)
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/:shortCode", redirectRateLimiter.LimitMiddleware(), shortenerController.RedirectToURL)

	// everything under /api is safe from short codes because "api" is reserved
	api := router.Group("/api")
	api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	v1 := api.Group("/v1")
	v1.Use(generalRateLimiter.LimitMiddleware())
	{
		auth := v1.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		v1.POST("/shorten",
			shortenRateLimiter.LimitMiddleware(),
			middleware.OptionalAuthMiddleware(a.JWT),
			shortenerController.CreateShortURL,
		)
		v1.GET("/quota", shortenerController.GetQuotaUsage)
		v1.GET("/resolve/:shortCode", redirectRateLimiter.LimitMiddleware(), shortenerController.ResolveURL)
		v1.GET("/qrcode/:shortCode", qrcodeController.GenerateQRCode)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(a.JWT))
		{
			protected.GET("/urls", shortenerController.GetUserURLs)
			protected.GET("/stats", shortenerController.GetUserStats)
			protected.POST("/urls/:id/favorite", shortenerController.ToggleFavorite)
			protected.PATCH("/urls/:id", shortenerController.UpdateExpiration)
			protected.DELETE("/urls/:id", shortenerController.DeleteURL)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg.AdminToken))
		{
			admin.POST("/quota/reset", adminController.ResetAnonymousQuota)
		}
	}

	return router, nil
}
