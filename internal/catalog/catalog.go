// Package catalog holds the built-in set of system categories and their icons.
package catalog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/model"
)

// Default returns a fresh copy of the built-in catalog.
func Default() model.Catalog {
	return model.Catalog{
		Income: []model.CatalogItem{
			{Name: "Salary", Icon: "💰"},
			{Name: "Freelance", Icon: "💼"},
			{Name: "Investments", Icon: "📈"},
			{Name: "Rental Income", Icon: "🏘️"},
			{Name: "Gifts Received", Icon: "🎁"},
			{Name: "Refunds", Icon: "↩️"},
			{Name: "Other Income", Icon: "💵"},
		},
		Expense: []model.CatalogItem{
			{Name: "Groceries", Icon: "🛒"},
			{Name: "Dining Out", Icon: "🍽️"},
			{Name: "Housing", Icon: "🏠"},
			{Name: "Utilities", Icon: "💡"},
			{Name: "Transportation", Icon: "🚗"},
			{Name: "Healthcare", Icon: "🏥"},
			{Name: "Insurance", Icon: "🛡️"},
			{Name: "Entertainment", Icon: "🎬"},
			{Name: "Shopping", Icon: "🛍️"},
			{Name: "Subscriptions", Icon: "📺"},
			{Name: "Education", Icon: "📚"},
			{Name: "Travel", Icon: "✈️"},
			{Name: "Personal Care", Icon: "💇"},
			{Name: "Kids", Icon: "🧸"},
			{Name: "Pets", Icon: "🐾"},
			{Name: "Gifts & Donations", Icon: "🎀"},
			{Name: "Taxes", Icon: "🧾"},
			{Name: "Fees & Charges", Icon: "🏦"},
			{Name: "Other Expense", Icon: "📦"},
		},
		Transfer: []model.CatalogItem{
			{Name: "Transfer", Icon: "🔄"},
			{Name: "Savings", Icon: "🐷"},
			{Name: "Credit Card Payment", Icon: "💳"},
			{Name: "Loan Payment", Icon: "🏛️"},
		},
	}
}

// Validate checks that every catalog item has a name and an icon.
func Validate(c model.Catalog) error {
	for i, def := range c.Definitions() {
		if strings.TrimSpace(def.Name) == "" {
			return fmt.Errorf("%w: catalog entry %d (%s) has no name", common.ErrInvalidConfig, i, def.Direction)
		}
		if strings.TrimSpace(def.Icon) == "" {
			return fmt.Errorf("%w: catalog entry %q has no icon", common.ErrInvalidConfig, def.Name)
		}
	}
	return nil
}

// DuplicateNames returns names that appear more than once, in first-seen order.
// Applying such a catalog leaves the icon of the last occurrence in place.
func DuplicateNames(c model.Catalog) []string {
	seen := make(map[string]int)
	var dups []string
	for _, def := range c.Definitions() {
		seen[def.Name]++
		if seen[def.Name] == 2 {
			dups = append(dups, def.Name)
		}
	}
	return dups
}

// Encode writes the catalog to w as YAML.
func Encode(w io.Writer, c model.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}
