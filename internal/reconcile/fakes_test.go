package reconcile

import (
	"context"
	"errors"
	"sync"

	"github.com/Veraticus/catsync/internal/service"
)

var errStoreDown = errors.New("connection refused")

// fakeStore records updates and can fail on a given call number.
type fakeStore struct {
	counts   map[string]int
	closeErr error
	calls    []string
	failOn   int
	closed   int
	mu       sync.Mutex
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: make(map[string]int)}
}

func (f *fakeStore) UpdateSystemCategoryIcon(_ context.Context, name, _ string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, name)
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return 0, errStoreDown
	}
	return f.counts[name], nil
}

func (f *fakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return f.closeErr
}

func (f *fakeStore) opener() Opener {
	return func(context.Context) (service.Session, error) {
		return f, nil
	}
}

// fakeTxStore hands out a single transaction backed by a fakeStore.
type fakeTxStore struct {
	tx       *fakeTx
	beginErr error
}

func (s *fakeTxStore) BeginTx(context.Context) (service.Transaction, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return s.tx, nil
}

type fakeTx struct {
	*fakeStore
	rollbackErr error
	committed   bool
	rolledBack  bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return t.rollbackErr
}
