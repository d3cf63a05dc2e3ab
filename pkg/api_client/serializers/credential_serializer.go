package serializers

import (
	"strings"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
)

// SerializeCredential maskeert het geheim; alleen de laatste vier tekens
// blijven zichtbaar op de instellingenpagina.
func SerializeCredential(key models.ApiKey) models.CredentialSummary {
	return models.CredentialSummary{
		Provider:  key.Provider,
		Secret:    maskSecret(key.Secret),
		CreatedAt: key.CreatedAt,
		UpdatedAt: key.UpdatedAt,
	}
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
