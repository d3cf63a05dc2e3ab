package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrContentRequired = errors.New("completed article requires content")
var ErrErrorRequired = errors.New("failed article requires an error cause")

type ArticleRepository interface {
	CreateBatch(ctx context.Context, titles []string, ownerID *string) (int, error)
	GetArticleByID(ctx context.Context, id string) (*models.Article, error)
	GetArticlesByOwner(ctx context.Context, ownerID string) ([]models.Article, error)
	ClaimProcessing(ctx context.Context, id string) (bool, error)
	MarkCompleted(ctx context.Context, id, content string) error
	MarkFailed(ctx context.Context, id, cause string) error
	GetStuckProcessing(ctx context.Context, olderThan time.Time) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// CreateBatch maakt per titel één artikel aan met status pending, alles in één
// transactie: bij een fout wordt er niets weggeschreven.
func (r *articleRepository) CreateBatch(ctx context.Context, titles []string, ownerID *string) (int, error) {
	if len(titles) == 0 {
		return 0, nil
	}

	articles := make([]models.Article, 0, len(titles))
	for _, title := range titles {
		articles = append(articles, models.Article{
			Id:      uuid.NewString(),
			Title:   title,
			Status:  models.StatusPending,
			OwnerID: ownerID,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&articles).Error
	})
	if err != nil {
		return 0, err
	}
	return len(articles), nil
}

func (r *articleRepository) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetArticlesByOwner(ctx context.Context, ownerID string) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ClaimProcessing zet een artikel naar processing met één conditionele UPDATE.
// Twee gelijktijdige triggers kunnen zo nooit allebei de claim winnen: de
// verliezer krijgt false terug en er start geen tweede generatie.
func (r *articleRepository) ClaimProcessing(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ? AND status <> ?", id, models.StatusProcessing).
		Updates(map[string]any{
			"status":       models.StatusProcessing,
			"content":      "",
			"error":        nil,
			"completed_at": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *articleRepository) MarkCompleted(ctx context.Context, id, content string) error {
	if content == "" {
		return ErrContentRequired
	}
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       models.StatusCompleted,
			"content":      content,
			"error":        nil,
			"completed_at": &now,
		}).Error
}

func (r *articleRepository) MarkFailed(ctx context.Context, id, cause string) error {
	if cause == "" {
		return ErrErrorRequired
	}
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       models.StatusFailed,
			"content":      "",
			"error":        cause,
			"completed_at": &now,
		}).Error
}

// GetStuckProcessing levert artikelen die langer dan de deadline in processing
// staan, bijvoorbeeld na een crash midden in een providercall.
func (r *articleRepository) GetStuckProcessing(ctx context.Context, olderThan time.Time) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", models.StatusProcessing, olderThan).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}
