// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/farellandr/showbook/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database owned by t. The pool is
// pinned to one connection so every query sees the same memory database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// Seed inserts records as-is, failing the test on error.
func Seed(t testing.TB, db *gorm.DB, records ...any) {
	t.Helper()
	for _, record := range records {
		if err := db.Omit(clause.Associations).Create(record).Error; err != nil {
			t.Fatalf("seed %T: %v", record, err)
		}
	}
}

// At returns a UTC instant offset from now, truncated to the second so it
// survives a round trip through the database.
func At(offset time.Duration) time.Time {
	return time.Now().UTC().Add(offset).Truncate(time.Second)
}
