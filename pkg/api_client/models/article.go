/*
 * Artikel Generator API v1
 *
 * API voor het genereren van artikelteksten op basis van ingediende titels
 *
 * API version: 1.0.0
 */

package models

import "time"

// ArticleStatus beschrijft de levenscyclus van een artikel.
type ArticleStatus string

const (
	StatusPending    ArticleStatus = "pending"
	StatusProcessing ArticleStatus = "processing"
	StatusCompleted  ArticleStatus = "completed"
	StatusFailed     ArticleStatus = "failed"
)

// Terminal reports whether the status ends a generation attempt.
func (s ArticleStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type Article struct {
	Id          string        `json:"id" gorm:"column:id;primaryKey"`
	Title       string        `json:"title" gorm:"column:title;not null"`
	Content     string        `json:"content,omitempty" gorm:"column:content"`
	Status      ArticleStatus `json:"status" gorm:"column:status;default:pending"`
	Error       *string       `json:"error,omitempty" gorm:"column:error"`
	OwnerID     *string       `json:"ownerId,omitempty" gorm:"column:owner_id;index"`
	CreatedAt   time.Time     `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time     `json:"-" gorm:"column:updated_at"`
	CompletedAt *time.Time    `json:"completedAt,omitempty" gorm:"column:completed_at"`
}

func (Article) TableName() string { return "article" }

type ArticleParams struct {
	Id string `path:"id"`
}

// AddTitlesInput bevat de ruwe invoer van het titelformulier, één titel per regel.
type AddTitlesInput struct {
	Titles string `json:"titles" binding:"required"`
}

type ImportTitlesInput struct {
	// CSV-inhoud; de eerste rij wordt altijd als header overgeslagen.
	Csv string `json:"csv" binding:"required"`
}

type TitlesCreatedResponse struct {
	Created int `json:"created"`
}

type GenerateResponse struct {
	Status  string `json:"status"`
	Content string `json:"content"`
}

type ArticleStatusResponse struct {
	Status ArticleStatus `json:"status"`
	Error  *string       `json:"error,omitempty"`
}

// ArticleSummary is de externe view van een artikel op het dashboard.
type ArticleSummary struct {
	Id          string        `json:"id"`
	Title       string        `json:"title"`
	Status      ArticleStatus `json:"status"`
	Error       *string       `json:"error,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}
