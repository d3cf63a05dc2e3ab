package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/teris-io/shortid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCredentialNotFound betekent: geen (bruikbare) sleutel voor deze provider.
var ErrCredentialNotFound = errors.New("no api key found for provider")

type CredentialRepository interface {
	GetByProvider(ctx context.Context, provider string) (*models.ApiKey, error)
	Upsert(ctx context.Context, provider, secret string) (*models.ApiKey, error)
	GetAll(ctx context.Context) ([]models.ApiKey, error)
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) GetByProvider(ctx context.Context, provider string) (*models.ApiKey, error) {
	var key models.ApiKey
	err := r.db.WithContext(ctx).First(&key, "provider = ?", provider).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCredentialNotFound
	} else if err != nil {
		return nil, err
	}
	// Een lege sleutel telt niet als geconfigureerd.
	if key.Secret == "" {
		return nil, ErrCredentialNotFound
	}
	return &key, nil
}

// Upsert schrijft de sleutel voor een provider; bestaat de rij al dan wordt het
// geheim overschreven en updated_at ververst.
func (r *credentialRepository) Upsert(ctx context.Context, provider, secret string) (*models.ApiKey, error) {
	key := models.ApiKey{
		Id:       shortid.MustGenerate(),
		Provider: provider,
		Secret:   secret,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider"}},
			DoUpdates: clause.Assignments(map[string]any{
				"secret":     secret,
				"updated_at": time.Now().UTC(),
			}),
		}).Create(&key).Error
	})
	if err != nil {
		return nil, err
	}

	var stored models.ApiKey
	if err := r.db.WithContext(ctx).First(&stored, "provider = ?", provider).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *credentialRepository) GetAll(ctx context.Context) ([]models.ApiKey, error) {
	var keys []models.ApiKey
	err := r.db.WithContext(ctx).Order("provider").Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
