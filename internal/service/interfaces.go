// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/catsync/internal/model"
)

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	HouseholdID *int64
	Direction   model.Direction
	SystemOnly  bool
	GlobalOnly  bool
}

// CategoryStore is the single write the reconciler needs from persistence.
type CategoryStore interface {
	// UpdateSystemCategoryIcon sets icon on every global system category named name
	// and returns the number of rows whose icon actually changed.
	UpdateSystemCategoryIcon(ctx context.Context, name, icon string) (int, error)
}

// Session is a CategoryStore held for the duration of one run.
type Session interface {
	CategoryStore
	Close() error
}

// Transaction represents a database transaction.
type Transaction interface {
	CategoryStore
	Commit() error
	Rollback() error
}

// TxStorage can open transactions.
type TxStorage interface {
	BeginTx(ctx context.Context) (Transaction, error)
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	CategoryStore
	TxStorage

	// Category operations
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategories(ctx context.Context, filter CategoryFilter) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)

	// Household operations
	CreateHousehold(ctx context.Context, name string) (*model.Household, error)
	GetHouseholds(ctx context.Context) ([]model.Household, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
