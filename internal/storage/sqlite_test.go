package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/service"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// seedCategory inserts a category and returns its ID.
func seedCategory(t *testing.T, store *SQLiteStorage, cat model.Category) int64 {
	t.Helper()
	if err := store.CreateCategory(context.Background(), &cat); err != nil {
		t.Fatalf("Failed to seed category %q: %v", cat.Name, err)
	}
	return cat.ID
}

func mustGetIcon(t *testing.T, store *SQLiteStorage, id int64) string {
	t.Helper()
	cat, err := store.GetCategoryByID(context.Background(), id)
	require.NoError(t, err)
	return cat.Icon
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "catsync.db")

		store, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		assert.Equal(t, dbPath, store.Path())
		assert.FileExists(t, dbPath)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("  ")
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("in-memory database", func(t *testing.T) {
		store, err := Open(context.Background(), ":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		version, err := store.SchemaVersion(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ExpectedSchemaVersion, version)
	})
}

func TestSQLiteStorage_ClosedDatabase(t *testing.T) {
	store, cleanup := createTestStorage(t)
	cleanup()

	_, err := store.UpdateSystemCategoryIcon(context.Background(), "Salary", "💰")
	assert.Error(t, err)
}

func TestSQLiteStorage_Transaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commit keeps updates", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()
		id := seedCategory(t, store, model.Category{Name: "Salary", Icon: "old", Direction: model.DirectionIncome, IsSystem: true})

		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)

		n, err := tx.UpdateSystemCategoryIcon(ctx, "Salary", "💰")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.NoError(t, tx.Commit())

		assert.Equal(t, "💰", mustGetIcon(t, store, id))
	})

	t.Run("rollback discards updates", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()
		id := seedCategory(t, store, model.Category{Name: "Salary", Icon: "old", Direction: model.DirectionIncome, IsSystem: true})

		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)

		n, err := tx.UpdateSystemCategoryIcon(ctx, "Salary", "💰")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.NoError(t, tx.Rollback())

		assert.Equal(t, "old", mustGetIcon(t, store, id))
	})

	t.Run("validates input inside transaction", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		_, err = tx.UpdateSystemCategoryIcon(ctx, "Salary", "")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestSQLiteStorage_ImplementsStorage(_ *testing.T) {
	var _ service.Storage = (*SQLiteStorage)(nil)
	var _ service.Session = (*SQLiteStorage)(nil)
}
