package handler

import (
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/services"
	"github.com/gin-gonic/gin"
)

// AuthAPIController binds HTTP requests to the AuthAPIService
type AuthAPIController struct {
	Service *services.AuthAPIService
}

func NewAuthAPIController(s *services.AuthAPIService) *AuthAPIController {
	return &AuthAPIController{Service: s}
}

// Register handles POST /auth/register
func (c *AuthAPIController) Register(ctx *gin.Context, body *models.RegisterInput) (*models.TokenResponse, error) {
	return c.Service.Register(ctx.Request.Context(), body.Username, body.Password)
}

// Login handles POST /auth/login
func (c *AuthAPIController) Login(ctx *gin.Context, body *models.LoginInput) (*models.TokenResponse, error) {
	return c.Service.Login(ctx.Request.Context(), body.Username, body.Password)
}

// ForgotPassword handles POST /auth/forgot-password
func (c *AuthAPIController) ForgotPassword(ctx *gin.Context, body *models.ForgotPasswordInput) (*models.PasswordResetResponse, error) {
	return c.Service.ForgotPassword(ctx.Request.Context(), body.Username)
}
