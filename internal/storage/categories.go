package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/service"
)

const categoryColumns = `id, name, icon, direction, is_system, household_id, created_at, updated_at`

// UpdateSystemCategoryIcon sets icon on every global system category with the given name.
// Rows that already carry the icon are left alone, so the returned count is the
// number of rows that actually changed.
func (s *SQLiteStorage) UpdateSystemCategoryIcon(ctx context.Context, name, icon string) (int, error) {
	if err := validateIconUpdate(ctx, name, icon); err != nil {
		return 0, err
	}
	return updateSystemCategoryIcon(ctx, s.db, name, icon)
}

func updateSystemCategoryIcon(ctx context.Context, db execer, name, icon string) (int, error) {
	query := `
		UPDATE categories
		SET icon = ?, updated_at = ?
		WHERE name = ?
			AND is_system = 1
			AND household_id IS NULL
			AND icon <> ?`

	result, err := db.ExecContext(ctx, query, icon, time.Now(), name, icon)
	if err != nil {
		return 0, fmt.Errorf("failed to update icon for category %q: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(affected), nil
}

// CreateCategory inserts a category and fills in its ID and timestamps.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	query := `
		INSERT INTO categories (name, icon, direction, is_system, household_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		category.Name,
		category.Icon,
		string(category.Direction),
		category.IsSystem,
		nullableID(category.HouseholdID),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get category ID: %w", err)
	}

	category.ID = id
	category.CreatedAt = now
	category.UpdatedAt = now

	slog.Debug("created category", "name", category.Name, "id", id, "system", category.IsSystem)
	return nil
}

// GetCategories returns the categories matching filter ordered by ID.
func (s *SQLiteStorage) GetCategories(ctx context.Context, filter service.CategoryFilter) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if filter.SystemOnly {
		where = append(where, "is_system = 1")
	}
	if filter.GlobalOnly {
		where = append(where, "household_id IS NULL")
	}
	if filter.HouseholdID != nil {
		where = append(where, "household_id = ?")
		args = append(args, *filter.HouseholdID)
	}
	if filter.Direction != "" {
		where = append(where, "direction = ?")
		args = append(args, string(filter.Direction))
	}

	query := `SELECT ` + categoryColumns + ` FROM categories`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByID returns a category by its ID.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`

	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return cat, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var (
		cat         model.Category
		direction   string
		householdID sql.NullInt64
	)
	err := row.Scan(
		&cat.ID, &cat.Name, &cat.Icon, &direction, &cat.IsSystem,
		&householdID, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}

	cat.Direction = model.Direction(direction)
	if householdID.Valid {
		id := householdID.Int64
		cat.HouseholdID = &id
	}
	return &cat, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
