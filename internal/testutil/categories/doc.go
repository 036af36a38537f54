// Package categories provides test infrastructure for seeding categories.
//
// # Basic Usage
//
//	func TestSync(t *testing.T) {
//		db := testutil.SetupTestDBWithBuilder(t, func(b *categories.Builder) *categories.Builder {
//			return b.
//				System("Salary", "old", model.DirectionIncome).
//				HouseholdSystem("h1", "Salary", "old", model.DirectionIncome)
//		})
//
//		// Use db.Storage for your test...
//	}
//
// # Stale catalogs
//
// WithStaleCatalog seeds one global system row per catalog definition, each holding
// a placeholder icon, which is the usual starting point for reconciliation tests:
//
//	b.WithStaleCatalog(catalog.Default(), "old")
//
// Households referenced by name are created on demand during Build, once per name.
package categories
