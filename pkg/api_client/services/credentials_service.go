package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	problem "github.com/artikelsmederij/artikel-generator-api/pkg/api_client/helpers/problem"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/repositories"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/serializers"
)

// CredentialsAPIService beheert providersleutels en levert ze aan de
// orchestrator (llm.CredentialSource).
type CredentialsAPIService struct {
	repo repositories.CredentialRepository
}

func NewCredentialsAPIService(repo repositories.CredentialRepository) *CredentialsAPIService {
	return &CredentialsAPIService{repo: repo}
}

func (s *CredentialsAPIService) Upsert(ctx context.Context, provider, secret string) (*models.CredentialConfirmation, error) {
	provider = strings.TrimSpace(provider)
	if provider == "" || secret == "" {
		return nil, problem.NewBadRequest("body", "Missing required fields")
	}

	if _, err := s.repo.Upsert(ctx, provider, secret); err != nil {
		return nil, err
	}
	return &models.CredentialConfirmation{Message: "API key updated successfully"}, nil
}

func (s *CredentialsAPIService) List(ctx context.Context) ([]models.CredentialSummary, error) {
	keys, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.CredentialSummary, len(keys))
	for i, key := range keys {
		summaries[i] = serializers.SerializeCredential(key)
	}
	return summaries, nil
}

// SecretFor haalt het actuele geheim op, zonder caching; elke generatiepoging
// ziet dus de laatst opgeslagen sleutel.
func (s *CredentialsAPIService) SecretFor(ctx context.Context, provider string) (string, error) {
	key, err := s.repo.GetByProvider(ctx, provider)
	if errors.Is(err, repositories.ErrCredentialNotFound) {
		return "", fmt.Errorf("no API key found for %s", provider)
	} else if err != nil {
		return "", err
	}
	return key.Secret, nil
}
