package model

import "time"

// Household is the tenant boundary that owns household-specific categories.
type Household struct {
	CreatedAt time.Time
	Name      string
	ID        int64
}
