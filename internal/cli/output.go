package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/catsync/internal/model"
)

// RenderReport writes a human-readable summary of a reconciliation run.
// Unchanged entries are listed only when verbose is set.
func RenderReport(w io.Writer, report *model.ReconcileReport, verbose bool) error {
	title := "Category icon sync"
	if report.DryRun {
		title += " (dry run)"
	}
	if _, err := fmt.Fprintln(w, FormatTitle(title)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range report.Entries {
		if e.MatchedCount == 0 && !verbose {
			continue
		}
		status := SubtleStyle.Render("unchanged")
		if e.MatchedCount > 0 {
			status = UpdatedStyle.Render(fmt.Sprintf("%d updated", e.MatchedCount))
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Icon, e.Name, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	verb := "updated"
	if report.DryRun {
		verb = "would be updated"
	}
	summary := fmt.Sprintf("%d catalog entries checked, %d rows %s in %s",
		len(report.Entries), report.Changed(), verb, report.Duration().Round(time.Millisecond))

	var line string
	switch report.Status {
	case model.RunStatusSucceeded:
		line = FormatSuccess(summary)
	default:
		line = FormatError(fmt.Sprintf("sync %s after %d entries", report.Status, len(report.Entries)))
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if report.DryRun {
		_, err := fmt.Fprintln(w, FormatWarning("dry run: no changes were written"))
		return err
	}
	return nil
}

// RenderCatalog writes the catalog as a table grouped by direction.
func RenderCatalog(w io.Writer, c model.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		HeaderStyle.Render("Direction"),
		HeaderStyle.Render("Icon"),
		HeaderStyle.Render("Name"))
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		strings.Repeat("-", 9),
		strings.Repeat("-", 4),
		strings.Repeat("-", 24))

	for _, def := range c.Definitions() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Direction, def.Icon, def.Name)
	}
	return tw.Flush()
}

// RenderCategories writes persisted categories as a table.
func RenderCategories(w io.Writer, cats []model.Category) error {
	if len(cats) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No categories found."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Icon"),
		HeaderStyle.Render("Name"),
		HeaderStyle.Render("Direction"),
		HeaderStyle.Render("Scope"))

	for _, cat := range cats {
		icon := cat.Icon
		if icon == "" {
			icon = SubtleStyle.Render("-")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", cat.ID, icon, cat.Name, cat.Direction, scopeOf(cat))
	}
	return tw.Flush()
}

func scopeOf(cat model.Category) string {
	switch {
	case cat.IsGlobalSystem():
		return "system"
	case cat.IsSystem:
		return fmt.Sprintf("system (household %d)", *cat.HouseholdID)
	case cat.HouseholdID != nil:
		return fmt.Sprintf("household %d", *cat.HouseholdID)
	default:
		return "user"
	}
}
