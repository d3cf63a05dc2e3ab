package handler

import (
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/services"
	"github.com/gin-gonic/gin"
)

// CredentialsAPIController binds HTTP requests to the CredentialsAPIService
type CredentialsAPIController struct {
	Service *services.CredentialsAPIService
}

func NewCredentialsAPIController(s *services.CredentialsAPIService) *CredentialsAPIController {
	return &CredentialsAPIController{Service: s}
}

// ListCredentials handles GET /credentials
func (c *CredentialsAPIController) ListCredentials(ctx *gin.Context) ([]models.CredentialSummary, error) {
	return c.Service.List(ctx.Request.Context())
}

// UpsertCredential handles PUT /credentials
func (c *CredentialsAPIController) UpsertCredential(ctx *gin.Context, body *models.UpsertCredentialInput) (*models.CredentialConfirmation, error) {
	return c.Service.Upsert(ctx.Request.Context(), body.Provider, body.Secret)
}
