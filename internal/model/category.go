package model

import (
	"fmt"
	"time"
)

// Direction indicates which way money moves for transactions in a category.
type Direction string

const (
	// DirectionIncome represents categories for income transactions.
	DirectionIncome Direction = "income"
	// DirectionExpense represents categories for expense transactions.
	DirectionExpense Direction = "expense"
	// DirectionTransfer represents categories for moves between own accounts.
	DirectionTransfer Direction = "transfer"
)

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionIncome, DirectionExpense, DirectionTransfer:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// CategoryDefinition is the expected shape of a system category.
type CategoryDefinition struct {
	Name      string
	Icon      string
	Direction Direction
}

// Category is a persisted category record.
// A nil HouseholdID marks a global category shared by every household.
type Category struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	HouseholdID *int64
	Name        string
	Icon        string
	Direction   Direction
	ID          int64
	IsSystem    bool
}

// IsGlobalSystem reports whether the category is a household-independent system category.
func (c *Category) IsGlobalSystem() bool {
	return c.IsSystem && c.HouseholdID == nil
}
