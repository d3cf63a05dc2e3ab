package testutil

import (
	"path/filepath"
	"testing"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a throwaway sqlite database with the full schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.ApiKey{}, &models.Article{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
