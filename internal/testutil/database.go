// Package testutil provides test utilities for the catsync project.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/storage"
	"github.com/Veraticus/catsync/internal/testutil/categories"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage    *storage.SQLiteStorage
	t          *testing.T
	Categories categories.Categories
}

// SetupTestDB creates a migrated SQLite database in a temporary directory.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithBuilder(t, nil)
}

// SetupTestDBWithBuilder creates a test database and seeds it using a category builder.
//
// Example:
//
//	db := testutil.SetupTestDBWithBuilder(t, func(b *categories.Builder) *categories.Builder {
//		return b.System("Salary", "old", model.DirectionIncome)
//	})
func SetupTestDBWithBuilder(t *testing.T, configure func(*categories.Builder) *categories.Builder) *TestDB {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, filepath.Join(t.TempDir(), "catsync.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	var cats categories.Categories
	if configure != nil {
		builder := configure(categories.NewBuilder(t))
		cats, err = builder.Build(ctx, store)
		if err != nil {
			t.Fatalf("failed to build categories: %v", err)
		}
	}

	return &TestDB{
		Storage:    store,
		Categories: cats,
		t:          t,
	}
}

// Icon returns the current icon of the category with the given ID or fails the test.
func (db *TestDB) Icon(id int64) string {
	db.t.Helper()
	cat, err := db.Storage.GetCategoryByID(context.Background(), id)
	if err != nil {
		db.t.Fatalf("failed to load category %d: %v", id, err)
	}
	return cat.Icon
}

// Icons returns the icon of every seeded category keyed by ID.
func (db *TestDB) Icons() map[int64]string {
	db.t.Helper()
	icons := make(map[int64]string, len(db.Categories))
	for _, cat := range db.Categories {
		icons[cat.ID] = db.Icon(cat.ID)
	}
	return icons
}

// MustCategory returns the stored category with the given ID or fails the test.
func (db *TestDB) MustCategory(id int64) model.Category {
	db.t.Helper()
	cat, err := db.Storage.GetCategoryByID(context.Background(), id)
	if err != nil {
		db.t.Fatalf("failed to load category %d: %v", id, err)
	}
	return *cat
}
