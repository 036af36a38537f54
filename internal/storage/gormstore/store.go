// Package gormstore implements the category storage contract on a MySQL
// database through gorm.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/service"
)

// Store implements service.Storage with gorm.
type Store struct {
	db *gorm.DB
}

// Open connects to MySQL using dsn and verifies the connection.
func Open(dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%w: database.dsn", common.ErrMissingConfig)
	}

	slog.Debug("Connecting to database")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping error: %w", err)
	}

	return New(db), nil
}

// New wraps an existing gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the households and categories tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Household{}, &Category{}); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	slog.Debug("GORM migrations completed successfully")
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UpdateSystemCategoryIcon sets icon on every global system category named name
// and returns the number of rows that changed.
func (s *Store) UpdateSystemCategoryIcon(ctx context.Context, name, icon string) (int, error) {
	return updateSystemCategoryIcon(s.db.WithContext(ctx), name, icon)
}

func updateSystemCategoryIcon(db *gorm.DB, name, icon string) (int, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(icon) == "" {
		return 0, errors.New("category name and icon are required")
	}

	result := systemCategoryIconUpdate(db, name, icon)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update icon for category %q: %w", name, result.Error)
	}

	return int(result.RowsAffected), nil
}

// systemCategoryIconUpdate issues the conditional update. The HEX comparisons match
// raw bytes, so case, accent, trailing-space and variation-selector variants never
// match even on tables created with a case-insensitive collation. The plain
// name = ? keeps the name index usable.
func systemCategoryIconUpdate(db *gorm.DB, name, icon string) *gorm.DB {
	return db.Model(&Category{}).
		Where("name = ? AND HEX(name) = HEX(?)", name, name).
		Where("is_system = ? AND household_id IS NULL", true).
		Where("HEX(icon) <> HEX(?)", icon).
		Update("icon", icon)
}

// CreateCategory inserts a category and fills in its ID and timestamps.
func (s *Store) CreateCategory(ctx context.Context, category *model.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}
	if _, err := model.ParseDirection(string(category.Direction)); err != nil {
		return err
	}

	row := fromModel(category)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	category.ID = row.ID
	category.CreatedAt = row.CreatedAt
	category.UpdatedAt = row.UpdatedAt
	return nil
}

// GetCategories returns the categories matching filter ordered by ID.
func (s *Store) GetCategories(ctx context.Context, filter service.CategoryFilter) ([]model.Category, error) {
	query := s.db.WithContext(ctx).Model(&Category{})

	if filter.SystemOnly {
		query = query.Where("is_system = ?", true)
	}
	if filter.GlobalOnly {
		query = query.Where("household_id IS NULL")
	}
	if filter.HouseholdID != nil {
		query = query.Where("household_id = ?", *filter.HouseholdID)
	}
	if filter.Direction != "" {
		query = query.Where("direction = ?", string(filter.Direction))
	}

	var rows []Category
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := make([]model.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, rows[i].toModel())
	}
	return categories, nil
}

// GetCategoryByID returns a category by its ID.
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	var row Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	cat := row.toModel()
	return &cat, nil
}

// CreateHousehold creates a new household.
func (s *Store) CreateHousehold(ctx context.Context, name string) (*model.Household, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("household name cannot be empty")
	}

	row := &Household{Name: name}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	return &model.Household{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

// GetHouseholds returns all households ordered by name.
func (s *Store) GetHouseholds(ctx context.Context) ([]model.Household, error) {
	var rows []Household
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query households: %w", err)
	}

	households := make([]model.Household, 0, len(rows))
	for _, h := range rows {
		households = append(households, model.Household{ID: h.ID, Name: h.Name, CreatedAt: h.CreatedAt})
	}
	return households, nil
}

// BeginTx starts a new database transaction.
func (s *Store) BeginTx(ctx context.Context) (service.Transaction, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return &gormTransaction{tx: tx}, nil
}

type gormTransaction struct {
	tx *gorm.DB
}

func (t *gormTransaction) UpdateSystemCategoryIcon(ctx context.Context, name, icon string) (int, error) {
	return updateSystemCategoryIcon(t.tx.WithContext(ctx), name, icon)
}

func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

func (t *gormTransaction) Rollback() error {
	return t.tx.Rollback().Error
}
