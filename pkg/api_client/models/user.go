package models

import "time"

type User struct {
	Id           string    `json:"id" gorm:"column:id;primaryKey"`
	Username     string    `json:"username" gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	IsAdmin      bool      `json:"isAdmin" gorm:"column:is_admin;default:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string { return "user" }

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordInput struct {
	Username string `json:"username" binding:"required"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PasswordResetResponse struct {
	Message string `json:"message"`
}
