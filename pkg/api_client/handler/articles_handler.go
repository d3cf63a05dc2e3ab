package handler

import (
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/middleware"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/services"
	"github.com/gin-gonic/gin"
)

// ArticlesAPIController binds HTTP requests to the ArticlesAPIService
type ArticlesAPIController struct {
	Service *services.ArticlesAPIService
}

// NewArticlesAPIController creates a new controller
func NewArticlesAPIController(s *services.ArticlesAPIService) *ArticlesAPIController {
	return &ArticlesAPIController{Service: s}
}

// ListArticles handles GET /articles
func (c *ArticlesAPIController) ListArticles(ctx *gin.Context) ([]models.ArticleSummary, error) {
	return c.Service.ListArticles(ctx.Request.Context(), currentUserID(ctx))
}

// AddTitles handles POST /articles
func (c *ArticlesAPIController) AddTitles(ctx *gin.Context, body *models.AddTitlesInput) (*models.TitlesCreatedResponse, error) {
	created, err := c.Service.AddTitles(ctx.Request.Context(), currentUserID(ctx), body.Titles)
	if err != nil {
		return nil, err
	}
	return &models.TitlesCreatedResponse{Created: created}, nil
}

// ImportTitles handles POST /articles/import
func (c *ArticlesAPIController) ImportTitles(ctx *gin.Context, body *models.ImportTitlesInput) (*models.TitlesCreatedResponse, error) {
	created, err := c.Service.ImportTitles(ctx.Request.Context(), currentUserID(ctx), body.Csv)
	if err != nil {
		return nil, err
	}
	return &models.TitlesCreatedResponse{Created: created}, nil
}

// Generate handles POST /articles/:id/generate
func (c *ArticlesAPIController) Generate(ctx *gin.Context, params *models.ArticleParams) (*models.GenerateResponse, error) {
	return c.Service.Generate(ctx.Request.Context(), currentUserID(ctx), params.Id)
}

// Status handles GET /articles/:id/status
func (c *ArticlesAPIController) Status(ctx *gin.Context, params *models.ArticleParams) (*models.ArticleStatusResponse, error) {
	return c.Service.Status(ctx.Request.Context(), currentUserID(ctx), params.Id)
}

func currentUserID(ctx *gin.Context) string {
	return ctx.GetString(middleware.ContextUserID)
}
