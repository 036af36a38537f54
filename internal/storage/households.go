package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/catsync/internal/model"
)

// CreateHousehold creates a new household.
func (s *SQLiteStorage) CreateHousehold(ctx context.Context, name string) (*model.Household, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO households (name, created_at) VALUES (?, ?)`, name, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get household ID: %w", err)
	}

	return &model.Household{ID: id, Name: name, CreatedAt: now}, nil
}

// GetHouseholds returns all households ordered by name.
func (s *SQLiteStorage) GetHouseholds(ctx context.Context) ([]model.Household, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM households ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query households: %w", err)
	}
	defer rows.Close()

	var households []model.Household
	for rows.Next() {
		var h model.Household
		if err := rows.Scan(&h.ID, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan household: %w", err)
		}
		households = append(households, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating households: %w", err)
	}

	return households, nil
}
