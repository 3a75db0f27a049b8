// Package testutil provides databases, fixtures and fakes shared by the
// package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/localnerve/legalaid-api/internal/database"
	"gorm.io/gorm"
)

// NewDB returns a migrated, private in-memory SQLite database. Foreign keys
// are not enforced, so rows may reference users that do not exist.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(false))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// Config returns a configuration suitable for handler tests.
func Config() *config.Config {
	return &config.Config{
		Port:            "3000",
		AppURL:          "http://localhost:3000",
		DBType:          "sqlite",
		DBDatabase:      ":memory:",
		AuthzURL:        "http://authorizer.test",
		AuthzClientID:   "test-client",
		DefaultPageSize: 20,
	}
}
