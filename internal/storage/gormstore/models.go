package gormstore

import (
	"time"

	"gorm.io/gorm"

	"github.com/Veraticus/catsync/internal/model"
)

// Household is the gorm row model for households.
type Household struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
}

// Category is the gorm row model for categories. Name and icon use a binary
// collation so MySQL compares them byte for byte.
type Category struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(255) COLLATE utf8mb4_bin;not null;index:idx_categories_name;uniqueIndex:idx_categories_scope,priority:1"`
	Icon        string `gorm:"type:varchar(64) COLLATE utf8mb4_bin;not null;default:''"`
	Direction   string `gorm:"type:enum('income','expense','transfer');not null;uniqueIndex:idx_categories_scope,priority:2"`
	IsSystem    bool   `gorm:"not null;default:false"`
	HouseholdID *int64 `gorm:"index;uniqueIndex:idx_categories_scope,priority:3"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Household *Household `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE"`
}

func (c *Category) toModel() model.Category {
	return model.Category{
		ID:          c.ID,
		Name:        c.Name,
		Icon:        c.Icon,
		Direction:   model.Direction(c.Direction),
		IsSystem:    c.IsSystem,
		HouseholdID: c.HouseholdID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromModel(c *model.Category) *Category {
	return &Category{
		Name:        c.Name,
		Icon:        c.Icon,
		Direction:   string(c.Direction),
		IsSystem:    c.IsSystem,
		HouseholdID: c.HouseholdID,
	}
}
