package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/catsync/internal/catalog"
	"github.com/Veraticus/catsync/internal/cli"
	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/reconcile"
	"github.com/Veraticus/catsync/internal/service"
)

func syncCmd() *cobra.Command {
	var (
		dryRun       bool
		showProgress bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Update system category icons from the catalog",
		Long: `Apply the built-in category catalog to the database.

Every global system category whose name exactly matches a catalog entry gets
the catalog's icon. Household categories and user categories are never touched.
The run stops at the first database error; entries applied before the error stay
applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := catalog.Default()
			if err := catalog.Validate(c); err != nil {
				return err
			}
			if dups := catalog.DuplicateNames(c); len(dups) > 0 {
				slog.Warn("catalog repeats category names, the last entry wins", "names", dups)
			}
			defs := c.Definitions()

			var opts []reconcile.Option
			if showProgress {
				bar := newProgressBar(len(defs))
				opts = append(opts, reconcile.WithObserver(func(model.ReconcileEntry) {
					_ = bar.Add(1)
				}))
			}
			r := reconcile.New(opts...)

			slog.Info("Starting category icon sync",
				"driver", databaseDriver(),
				"entries", len(defs),
				"dry_run", dryRun)

			ctx := cmd.Context()
			var (
				report *model.ReconcileReport
				err    error
			)
			if dryRun {
				report, err = dryRunSync(ctx, r, defs)
			} else {
				report, err = r.Run(ctx, defs, func(ctx context.Context) (service.Session, error) {
					return openStorage(ctx)
				})
			}

			if report != nil {
				if renderErr := cli.RenderReport(cmd.OutOrStdout(), report, verbose); renderErr != nil {
					slog.Error("failed to write output", "error", renderErr)
				}
			}
			if err != nil {
				return fmt.Errorf("category icon sync failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List unchanged catalog entries too")

	return cmd
}

// dryRunSync opens the store, reconciles inside a rolled-back transaction and closes the store.
func dryRunSync(ctx context.Context, r *reconcile.Reconciler, defs []model.CategoryDefinition) (*model.ReconcileReport, error) {
	store, err := openStorage(ctx)
	if err != nil {
		return nil, common.NewStoreError("open", "", err)
	}

	report, err := r.DryRun(ctx, defs, store)
	if closeErr := store.Close(); closeErr != nil {
		err = errors.Join(err, common.NewStoreError("close", "", closeErr))
	}
	return report, err
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Syncing category icons...[reset]"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
