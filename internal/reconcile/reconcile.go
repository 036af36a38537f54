// Package reconcile brings persisted system category icons in line with a catalog.
//
// A run walks the catalog strictly in order, issuing one conditional update per
// definition. The first store failure aborts the run; updates already applied stay
// applied.
package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/model"
	"github.com/Veraticus/catsync/internal/service"
)

// Opener acquires a store session for a single run.
type Opener func(ctx context.Context) (service.Session, error)

// Reconciler applies catalog definitions to a category store.
type Reconciler struct {
	logger   *slog.Logger
	observer func(model.ReconcileEntry)
	now      func() time.Time
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger used for progress lines.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithObserver registers a callback invoked after each entry is applied.
func WithObserver(fn func(model.ReconcileEntry)) Option {
	return func(r *Reconciler) {
		r.observer = fn
	}
}

// WithClock overrides the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// New creates a Reconciler.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile applies every definition in order using the default Reconciler.
func Reconcile(ctx context.Context, catalog []model.CategoryDefinition, store service.CategoryStore) (*model.ReconcileReport, error) {
	return New().Reconcile(ctx, catalog, store)
}

// Reconcile applies every definition in order and reports the rows changed per entry.
// On a store failure it returns the entries completed so far together with a
// *common.StoreError; the remaining definitions are not attempted.
func (r *Reconciler) Reconcile(ctx context.Context, catalog []model.CategoryDefinition, store service.CategoryStore) (*model.ReconcileReport, error) {
	report := &model.ReconcileReport{
		StartedAt: r.now(),
		Status:    model.RunStatusRunning,
		Entries:   make([]model.ReconcileEntry, 0, len(catalog)),
	}

	for _, def := range catalog {
		count, err := store.UpdateSystemCategoryIcon(ctx, def.Name, def.Icon)
		if err != nil {
			r.finish(report, model.RunStatusFailed)
			return report, common.NewStoreError("update", def.Name, err)
		}

		entry := model.ReconcileEntry{
			Name:         def.Name,
			Icon:         def.Icon,
			MatchedCount: count,
		}
		report.Entries = append(report.Entries, entry)

		if count > 0 {
			r.logger.Info("updated category icon",
				"name", def.Name,
				"icon", def.Icon,
				"direction", def.Direction,
				"rows", count)
		} else {
			r.logger.Debug("category icon already in sync", "name", def.Name)
		}

		if r.observer != nil {
			r.observer(entry)
		}
	}

	r.finish(report, model.RunStatusSucceeded)
	return report, nil
}

// Run opens a session, reconciles the catalog and always closes the session.
func (r *Reconciler) Run(ctx context.Context, catalog []model.CategoryDefinition, open Opener) (report *model.ReconcileReport, err error) {
	session, err := open(ctx)
	if err != nil {
		return &model.ReconcileReport{
			StartedAt:  r.now(),
			FinishedAt: r.now(),
			Status:     model.RunStatusFailed,
		}, common.NewStoreError("open", "", err)
	}

	defer func() {
		closeErr := common.NewStoreError("close", "", session.Close())
		if closeErr == nil {
			return
		}
		if err == nil {
			if report != nil {
				report.Status = model.RunStatusFailed
			}
			err = closeErr
			return
		}
		err = errors.Join(err, closeErr)
	}()

	return r.Reconcile(ctx, catalog, session)
}

// DryRun reconciles inside a transaction that is always rolled back, so the report
// describes what a real run would change without changing anything.
func (r *Reconciler) DryRun(ctx context.Context, catalog []model.CategoryDefinition, store service.TxStorage) (*model.ReconcileReport, error) {
	tx, err := store.BeginTx(ctx)
	if err != nil {
		return &model.ReconcileReport{
			StartedAt:  r.now(),
			FinishedAt: r.now(),
			Status:     model.RunStatusFailed,
			DryRun:     true,
		}, common.NewStoreError("begin", "", err)
	}

	report, err := r.Reconcile(ctx, catalog, tx)
	report.DryRun = true

	if rbErr := tx.Rollback(); rbErr != nil {
		err = errors.Join(err, common.NewStoreError("rollback", "", rbErr))
		report.Status = model.RunStatusFailed
	}
	return report, err
}

func (r *Reconciler) finish(report *model.ReconcileReport, status model.RunStatus) {
	report.Status = status
	report.FinishedAt = r.now()
}
