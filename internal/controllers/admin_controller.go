package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shrinkr/internal/models"
	"shrinkr/internal/service"
)

type AdminController struct {
	urlService service.URLService
	errors     ErrorResponder
}

func NewAdminController(urlService service.URLService, responder ErrorResponder) *AdminController {
	return &AdminController{
		urlService: urlService,
		errors:     responder,
	}
}

// ResetAnonymousQuota handles POST /api/v1/admin/quota/reset. It deletes
// every anonymous URL, so the body must carry {"confirm": true}.
func (ac *AdminController) ResetAnonymousQuota(c *gin.Context) {
	var req models.ResetQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}
	if !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": `Resetting the anonymous quota deletes every anonymous URL. Send {"confirm": true} to proceed.`,
			"code":  codeValidation,
		})
		return
	}

	response, err := ac.urlService.ResetAnonymousQuota(c.Request.Context())
	if err != nil {
		ac.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
