package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/catsync/internal/catalog"
	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/storage"
	"github.com/Veraticus/catsync/internal/testutil"
	"github.com/Veraticus/catsync/internal/testutil/categories"
)

func TestCatalogCmd_YAML(t *testing.T) {
	out, err := runCLI(t, "catalog", "--format", "yaml")
	require.NoError(t, err)

	var got model.Catalog
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, catalog.Default(), got)
}

func TestCatalogCmd_Table(t *testing.T) {
	out, err := runCLI(t, "catalog")
	require.NoError(t, err)

	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "💰")
	assert.Contains(t, out, "transfer")
}

func TestCatalogCmd_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, "catalog", "--format", "xml")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestCategoriesListCmd(t *testing.T) {
	db := testutil.SetupTestDBWithBuilder(t, func(b *categories.Builder) *categories.Builder {
		return b.
			System("Salary", "💰", model.DirectionIncome).
			User("Smiths", "Pottery", "🏺", model.DirectionExpense)
	})
	cfg := sqliteConfig(t, db.Storage.Path())

	out, err := runCLI(t, "--config", cfg, "categories", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "Pottery")

	out, err = runCLI(t, "--config", cfg, "categories", "list", "--system-only")
	require.NoError(t, err)
	assert.Contains(t, out, "Salary")
	assert.NotContains(t, out, "Pottery")
}

func TestMigrateCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	cfg := sqliteConfig(t, dbPath)

	out, err := runCLI(t, "--config", cfg, "migrate", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 0")

	out, err = runCLI(t, "--config", cfg, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrations completed")

	out, err = runCLI(t, "--config", cfg, "migrate", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("Current version: %d", storage.ExpectedSchemaVersion))
}

func TestMigrateCmd_MySQLStatusUnsupported(t *testing.T) {
	cfg := writeConfig(t, "database:\n  driver: mysql\n  dsn: user:pass@tcp(127.0.0.1:1)/db\nlogging:\n  level: error\n")

	_, err := runCLI(t, "--config", cfg, "migrate", "--status")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
