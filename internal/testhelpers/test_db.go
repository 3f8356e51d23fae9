package testhelpers

import (
	"fmt"
	"testing"

	"croner/backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated. TranslateError keeps unique-index violations visible as
// gorm.ErrDuplicatedKey, matching the production configuration.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Workspace{},
		&models.Test{},
		&models.Invitation{},
		&models.Color{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return db
}

// DropTable removes a table to force repository storage errors.
func DropTable(t *testing.T, db *gorm.DB, model any) {
	t.Helper()
	if err := db.Migrator().DropTable(model); err != nil {
		panic(fmt.Sprintf("failed to drop table: %v", err))
	}
}
