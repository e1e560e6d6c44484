package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shrinkr/internal/models"
	"shrinkr/internal/service"
)

type AuthController struct {
	authService service.AuthService
	errors      ErrorResponder
}

func NewAuthController(authService service.AuthService, responder ErrorResponder) *AuthController {
	return &AuthController{
		authService: authService,
		errors:      responder,
	}
}

// Register handles POST /api/v1/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	response, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		ac.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/v1/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		ac.errors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
