package model

import "time"

// RunStatus is the lifecycle state of a reconciliation run.
type RunStatus string

const (
	// RunStatusRunning is set while catalog entries are being applied.
	RunStatusRunning RunStatus = "running"
	// RunStatusSucceeded means every catalog entry was applied.
	RunStatusSucceeded RunStatus = "succeeded"
	// RunStatusFailed means the run aborted on a store error.
	RunStatusFailed RunStatus = "failed"
)

// ReconcileEntry records the outcome of applying one catalog definition.
type ReconcileEntry struct {
	Name         string
	Icon         string
	MatchedCount int
}

// ReconcileReport summarizes a reconciliation run in catalog order.
type ReconcileReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Status     RunStatus
	Entries    []ReconcileEntry
	DryRun     bool
}

// Changed returns the total number of rows updated across all entries.
func (r *ReconcileReport) Changed() int {
	total := 0
	for _, e := range r.Entries {
		total += e.MatchedCount
	}
	return total
}

// Duration returns how long the run took.
func (r *ReconcileReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
