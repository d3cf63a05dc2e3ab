package database

import (
	"fmt"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate maakt het schema aan en zorgt dat het admin-account bestaat.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.ApiKey{}, &models.Article{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := seedAdmin(db); err != nil {
		return fmt.Errorf("admin seed failed: %w", err)
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Id:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}).Error
}
