package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/catsync/internal/model"
)

func TestSQLiteStorage_Migrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store1, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)

	version, err := store1.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, store1.Migrate(ctx))
	_ = store1.Close()

	// Running migrations again should not error
	store2, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store2.Close() }()

	require.NoError(t, store2.Migrate(ctx))

	version, err = store2.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrationIndexes(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	for _, index := range []string{"idx_categories_name", "idx_categories_household", "idx_categories_global_system", "idx_categories_scope"} {
		var count int
		err := store.db.QueryRow(`
			SELECT COUNT(*) FROM sqlite_master
			WHERE type='index' AND name=?
		`, index).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "index %s should exist", index)
	}
}

func TestMigrationsAreOrdered(t *testing.T) {
	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version, "migration %q out of order", m.Description)
	}
	assert.Equal(t, ExpectedSchemaVersion, migrations[len(migrations)-1].Version)
}

func TestScopeIndex(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	household, err := store.CreateHousehold(ctx, "h1")
	require.NoError(t, err)

	seedCategory(t, store, model.Category{Name: "Hobbies", Direction: model.DirectionExpense, HouseholdID: &household.ID})
	err = store.CreateCategory(ctx, &model.Category{Name: "Hobbies", Direction: model.DirectionExpense, HouseholdID: &household.ID})
	assert.Error(t, err, "same name and direction in one household")

	seedCategory(t, store, model.Category{Name: "Hobbies", Direction: model.DirectionIncome, HouseholdID: &household.ID})

	seedCategory(t, store, model.Category{Name: "Salary", Direction: model.DirectionIncome, IsSystem: true})
	seedCategory(t, store, model.Category{Name: "Salary", Direction: model.DirectionIncome, IsSystem: true})
}
