package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shrinkr/internal/service"
)

// Machine-readable codes sent alongside error messages
const (
	codeValidation         = "VALIDATION_ERROR"
	codeReservedSlug       = "RESERVED_SLUG"
	codeSlugTaken          = "SLUG_TAKEN"
	codeQuotaExceeded      = "QUOTA_EXCEEDED"
	codeNotFound           = "NOT_FOUND"
	codeGone               = "GONE"
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeConflict           = "CONFLICT"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeInternal           = "INTERNAL_ERROR"
)

// ErrorResponder maps service errors onto HTTP responses. Internal error
// details are only sent when exposeDetails is set.
type ErrorResponder struct {
	logger        *zap.Logger
	exposeDetails bool
}

func NewErrorResponder(logger *zap.Logger, exposeDetails bool) ErrorResponder {
	return ErrorResponder{logger: logger, exposeDetails: exposeDetails}
}

func (r ErrorResponder) respond(c *gin.Context, err error) {
	var quotaErr *service.QuotaExceededError
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &quotaErr):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":     quotaErr.Error(),
			"code":      codeQuotaExceeded,
			"current":   quotaErr.Current,
			"limit":     quotaErr.Limit,
			"remaining": max(0, quotaErr.Limit-quotaErr.Current),
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "code": codeValidation})
	case errors.Is(err, service.ErrReservedSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeReservedSlug})
	case errors.Is(err, service.ErrSlugTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeSlugTaken})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found", "code": codeNotFound})
	case errors.Is(err, service.ErrGone):
		c.JSON(http.StatusGone, gin.H{"error": "Short URL has expired", "code": codeGone})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": codeUnauthenticated})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": codeConflict})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": codeInvalidCredentials})
	default:
		r.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		body := gin.H{"error": "Internal server error", "code": codeInternal}
		if r.exposeDetails {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func badRequestBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"code":    codeValidation,
		"details": err.Error(),
	})
}
