package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/catsync/internal/cli"
	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/storage"
	"github.com/Veraticus/catsync/internal/storage/gormstore"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

For SQLite this applies the versioned migrations; for MySQL it lets gorm
create or alter the households and categories tables.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch driver := databaseDriver(); driver {
	case driverSQLite:
		dbPath := databasePath()
		slog.Info("Starting database migration", "database", dbPath, "status_only", status)

		store, err := storage.NewSQLiteStorage(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = store.Close() }()

		if status {
			current, err := store.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "Database: %s\nCurrent version: %d\nLatest version: %d\n",
				dbPath, current, storage.ExpectedSchemaVersion)
			return err
		}

		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

	case driverMySQL:
		if status {
			return fmt.Errorf("%w: --status is only supported for sqlite", common.ErrInvalidConfig)
		}

		store, err := gormstore.Open(viper.GetString("database.dsn"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

	default:
		return fmt.Errorf("%w: unknown database driver %q", common.ErrInvalidConfig, driver)
	}

	_, err := fmt.Fprintln(out, cli.FormatSuccess("Database migrations completed successfully"))
	return err
}
