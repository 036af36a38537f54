package model

// CatalogItem is a single {name, icon} pair inside a direction group.
type CatalogItem struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// Catalog holds the expected system categories grouped by direction.
type Catalog struct {
	Income   []CatalogItem `yaml:"income"`
	Expense  []CatalogItem `yaml:"expense"`
	Transfer []CatalogItem `yaml:"transfer"`
}

// Definitions flattens the catalog into income, expense, then transfer order.
func (c Catalog) Definitions() []CategoryDefinition {
	defs := make([]CategoryDefinition, 0, len(c.Income)+len(c.Expense)+len(c.Transfer))
	groups := []struct {
		items     []CatalogItem
		direction Direction
	}{
		{c.Income, DirectionIncome},
		{c.Expense, DirectionExpense},
		{c.Transfer, DirectionTransfer},
	}
	for _, g := range groups {
		for _, item := range g.items {
			defs = append(defs, CategoryDefinition{
				Name:      item.Name,
				Icon:      item.Icon,
				Direction: g.direction,
			})
		}
	}
	return defs
}

// Len returns the total number of items across all groups.
func (c Catalog) Len() int {
	return len(c.Income) + len(c.Expense) + len(c.Transfer)
}
