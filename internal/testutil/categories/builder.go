package categories

import (
	"context"
	"fmt"
	"testing"

	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/service"
)

// Seed describes one category row to create.
type Seed struct {
	Name      string
	Icon      string
	Direction model.Direction
	Household string
	IsSystem  bool
}

// Builder provides a fluent interface for constructing test categories.
type Builder struct {
	t     *testing.T
	seeds []Seed
}

// NewBuilder creates an empty Builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// System adds a global system category.
func (b *Builder) System(name, icon string, direction model.Direction) *Builder {
	return b.With(Seed{Name: name, Icon: icon, Direction: direction, IsSystem: true})
}

// HouseholdSystem adds a system category scoped to the named household.
func (b *Builder) HouseholdSystem(household, name, icon string, direction model.Direction) *Builder {
	return b.With(Seed{Name: name, Icon: icon, Direction: direction, IsSystem: true, Household: household})
}

// User adds a non-system category, global when household is empty.
func (b *Builder) User(household, name, icon string, direction model.Direction) *Builder {
	return b.With(Seed{Name: name, Icon: icon, Direction: direction, Household: household})
}

// WithStaleCatalog adds a global system category for every catalog definition,
// each carrying icon instead of the catalog's icon.
func (b *Builder) WithStaleCatalog(c model.Catalog, icon string) *Builder {
	for _, def := range c.Definitions() {
		b.System(def.Name, icon, def.Direction)
	}
	return b
}

// With adds an arbitrary seed.
func (b *Builder) With(seed Seed) *Builder {
	b.t.Helper()
	if seed.Name == "" {
		b.t.Fatalf("category seed requires a name")
	}
	b.seeds = append(b.seeds, seed)
	return b
}

// Len returns the number of seeds queued.
func (b *Builder) Len() int {
	return len(b.seeds)
}

// Build creates the households and categories in storage, in the order they were added.
func (b *Builder) Build(ctx context.Context, storage service.Storage) (Categories, error) {
	households := make(map[string]int64)
	created := make(Categories, 0, len(b.seeds))

	for _, seed := range b.seeds {
		cat := model.Category{
			Name:      seed.Name,
			Icon:      seed.Icon,
			Direction: seed.Direction,
			IsSystem:  seed.IsSystem,
		}

		if seed.Household != "" {
			id, ok := households[seed.Household]
			if !ok {
				h, err := storage.CreateHousehold(ctx, seed.Household)
				if err != nil {
					return nil, fmt.Errorf("failed to create household %q: %w", seed.Household, err)
				}
				id = h.ID
				households[seed.Household] = id
			}
			cat.HouseholdID = &id
		}

		if err := storage.CreateCategory(ctx, &cat); err != nil {
			return nil, fmt.Errorf("failed to create category %q: %w", seed.Name, err)
		}
		created = append(created, cat)
	}

	return created, nil
}

// Categories represents a collection of created test categories.
type Categories []model.Category

// GlobalSystem returns the first global system category with the given name, or nil.
func (c Categories) GlobalSystem(name string) *model.Category {
	for i := range c {
		if c[i].Name == name && c[i].IsGlobalSystem() {
			return &c[i]
		}
	}
	return nil
}

// MustGlobalSystem returns the named global system category or fails the test.
func (c Categories) MustGlobalSystem(t *testing.T, name string) model.Category {
	t.Helper()
	cat := c.GlobalSystem(name)
	if cat == nil {
		t.Fatalf("global system category %q not found in test data", name)
	}
	return *cat
}

// IDs returns the IDs of all categories in order.
func (c Categories) IDs() []int64 {
	ids := make([]int64, len(c))
	for i, cat := range c {
		ids[i] = cat.ID
	}
	return ids
}
