package models

import "time"

// ApiKey is het opgeslagen geheim voor een provider; maximaal één rij per provider.
type ApiKey struct {
	Id        string    `json:"id" gorm:"column:id;primaryKey"`
	Provider  string    `json:"provider" gorm:"column:provider;uniqueIndex;not null"`
	Secret    string    `json:"-" gorm:"column:secret;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (ApiKey) TableName() string { return "api_key" }

type UpsertCredentialInput struct {
	Provider string `json:"provider" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

type CredentialConfirmation struct {
	Message string `json:"message"`
}

// CredentialSummary toont een opgeslagen sleutel zonder het geheim prijs te geven.
type CredentialSummary struct {
	Provider  string    `json:"provider"`
	Secret    string    `json:"secret"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
