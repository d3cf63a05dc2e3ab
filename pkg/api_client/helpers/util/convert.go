package util

import (
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
)

func ToArticleSummary(article *models.Article) models.ArticleSummary {
	return models.ArticleSummary{
		Id:          article.Id,
		Title:       article.Title,
		Status:      article.Status,
		Error:       article.Error,
		CreatedAt:   article.CreatedAt,
		CompletedAt: article.CompletedAt,
	}
}
