package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"shrinkr/internal/service"
)

const qrCodeSize = 256

type QRCodeController struct {
	urlService service.URLService
	errors     ErrorResponder
}

func NewQRCodeController(urlService service.URLService, responder ErrorResponder) *QRCodeController {
	return &QRCodeController{
		urlService: urlService,
		errors:     responder,
	}
}

// GenerateQRCode handles GET /api/v1/qrcode/:shortCode - PNG of the short URL
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	shortCode := c.Param("shortCode")

	exists, err := qc.urlService.ShortCodeExists(c.Request.Context(), shortCode)
	if err != nil {
		qc.errors.respond(c, err)
		return
	}
	if !exists {
		qc.errors.respond(c, service.ErrNotFound)
		return
	}

	pngData, err := qrcode.Encode(qc.urlService.ShortURL(shortCode), qrcode.Medium, qrCodeSize)
	if err != nil {
		qc.errors.respond(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
