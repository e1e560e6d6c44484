package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shrinkr/internal/middleware"
	"shrinkr/internal/models"
	"shrinkr/internal/service"
)

type ShortenerController struct {
	urlService service.URLService
	errors     ErrorResponder
}

func NewShortenerController(urlService service.URLService, responder ErrorResponder) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
		errors:     responder,
	}
}

// CreateShortURL handles POST /api/v1/shorten. Signed-in callers own the
// URL; anonymous callers are charged against their address quota.
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	creator := service.Anonymous(c.ClientIP())
	if userID, ok := middleware.UserID(c); ok {
		creator = service.Owned(userID)
	}

	response, err := sc.urlService.CreateShortURL(c.Request.Context(), &req, creator)
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// RedirectToURL handles GET /:shortCode
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	result, err := sc.urlService.Resolve(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	// browsers would otherwise replay the 301 without counting the click or rechecking expiry
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusMovedPermanently, result.TargetURL)
}

// ResolveURL handles GET /api/v1/resolve/:shortCode and counts a click like a redirect
func (sc *ShortenerController) ResolveURL(c *gin.Context) {
	result, err := sc.urlService.Resolve(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ResolveResponse{
		TargetURL:  result.TargetURL,
		ClickCount: result.ClickCount,
	})
}

// GetQuotaUsage handles GET /api/v1/quota for the caller's address
func (sc *ShortenerController) GetQuotaUsage(c *gin.Context) {
	usage, err := sc.urlService.GetQuotaUsage(c.Request.Context(), c.ClientIP())
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}

// GetUserURLs handles GET /api/v1/urls
func (sc *ShortenerController) GetUserURLs(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	urls, err := sc.urlService.GetUserURLs(c.Request.Context(), userID)
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, urls)
}

// GetUserStats handles GET /api/v1/stats
func (sc *ShortenerController) GetUserStats(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	stats, err := sc.urlService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ToggleFavorite handles POST /api/v1/urls/:id/favorite
func (sc *ShortenerController) ToggleFavorite(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	response, err := sc.urlService.ToggleFavorite(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateExpiration handles PATCH /api/v1/urls/:id
func (sc *ShortenerController) UpdateExpiration(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.UpdateExpirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	response, err := sc.urlService.UpdateExpiration(c.Request.Context(), c.Param("id"), userID, req.ExpirationOption)
	if err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteURL handles DELETE /api/v1/urls/:id
func (sc *ShortenerController) DeleteURL(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := sc.urlService.DeleteURL(c.Request.Context(), c.Param("id"), userID); err != nil {
		sc.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "URL deleted successfully",
	})
}
