// Package directory owns the in-memory listing for each staff category and
// mediates create/update/delete against the remote staff table with
// optimistic local mutation and rollback on failure.
package directory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/ranking"
)

// State tracks the lifecycle of a category listing.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Session carries the caller's externally derived capabilities. It is
// re-evaluated per operation; the directory never caches it.
type Session struct {
	Authenticated bool
	Editor        bool
}

// Store is the remote staff table boundary. Implementations report failures
// as *Error so provider diagnostics survive to the caller.
type Store interface {
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.StaffRecord, error)
	Insert(ctx context.Context, record domain.StaffRecord) (domain.StaffRecord, error)
	Update(ctx context.Context, id string, changes domain.StaffChanges) error
	Delete(ctx context.Context, id string) error
}

// Notifier receives exactly one transient notification per terminal
// operation outcome.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Directory is a stateful accessor scoped to one category. The mutex guards
// the local listing only; it is released for the duration of every store
// call, so two in-flight mutations interleave exactly as their store calls
// complete. A delete rollback restores the snapshot taken before its own
// optimistic removal, which may clobber a mutation that landed in between.
type Directory struct {
	category domain.Category
	store    Store
	notifier Notifier
	logger   *zap.Logger

	mu      sync.Mutex
	state   State
	records []domain.StaffRecord
	lastErr *Error
}

// New builds a directory for one category. The listing is empty and the
// state is Loading until the first Refresh completes.
func New(category domain.Category, store Store, notifier Notifier, logger *zap.Logger) *Directory {
	return &Directory{
		category: category,
		store:    store,
		notifier: notifier,
		logger:   logger,
		state:    StateLoading,
	}
}

// Category returns the bound staff grouping.
func (d *Directory) Category() domain.Category {
	return d.category
}

// State reports the current lifecycle state.
func (d *Directory) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// LastError returns the error captured by the most recent failed fetch, or
// nil. Mutation failures are not persisted here.
func (d *Directory) LastError() *Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Records returns a copy of the current listing in display order.
func (d *Directory) Records() []domain.StaffRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.StaffRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Refresh loads the category from the store and re-sorts the listing. On
// failure the previous listing is discarded, the structured error is kept
// for the retry affordance and one error notification is emitted. Refresh
// doubles as the retry path out of the Error state.
func (d *Directory) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.state = StateLoading
	d.lastErr = nil
	d.mu.Unlock()

	records, err := d.store.ListByCategory(ctx, d.category)
	if err != nil {
		dirErr := normalize(err, "Failed to fetch staff data")
		d.mu.Lock()
		d.state = StateError
		d.records = nil
		d.lastErr = dirErr
		d.mu.Unlock()
		d.logger.Error("staff fetch failed",
			zap.String("category", string(d.category)),
			zap.String("code", dirErr.Code),
			zap.Error(dirErr))
		d.notifier.Error(dirErr.Message)
		return dirErr
	}

	ranking.Sort(records)

	d.mu.Lock()
	d.records = records
	d.state = StateReady
	d.mu.Unlock()
	return nil
}

// Add inserts a new record into the bound category. The store assigns the
// identifier. The inserted record is appended to the listing without a
// re-sort, so it stays last until the next Refresh; the front-end relies on
// that behavior and it must not change.
func (d *Directory) Add(ctx context.Context, session Session, record domain.StaffRecord) (*domain.StaffRecord, error) {
	if !session.Editor {
		return nil, d.fail(permissionDenied("You need to be logged in as an editor to add staff"))
	}

	record.ID = ""
	record.Category = d.category
	inserted, err := d.store.Insert(ctx, record)
	if err != nil {
		return nil, d.fail(normalize(err, "Failed to add staff member"))
	}

	d.mu.Lock()
	d.records = append(d.records, inserted)
	d.mu.Unlock()

	d.notifier.Success("Staff member added successfully")
	return &inserted, nil
}

// Update applies a partial attribute change to one record. On store success
// the local copy is merged in place and keeps its position in the listing;
// on failure the listing is untouched.
func (d *Directory) Update(ctx context.Context, session Session, id string, changes domain.StaffChanges) error {
	if !session.Editor {
		return d.fail(permissionDenied("You need to be logged in as an editor to modify staff data"))
	}

	if err := d.store.Update(ctx, id, changes); err != nil {
		return d.fail(normalize(err, "Failed to update staff member"))
	}

	d.mu.Lock()
	for i := range d.records {
		if d.records[i].ID == id {
			changes.Apply(&d.records[i])
			break
		}
	}
	d.mu.Unlock()

	d.notifier.Success("Staff member updated successfully")
	return nil
}

// Delete removes a record optimistically: the listing is mutated before the
// store call, and the full pre-delete snapshot is restored wholesale if the
// call fails. An id absent from the local listing fails without contacting
// the store.
func (d *Directory) Delete(ctx context.Context, session Session, id string) error {
	if !session.Editor {
		return d.fail(permissionDenied("You need to be logged in as an editor to delete staff"))
	}

	d.mu.Lock()
	index := -1
	for i := range d.records {
		if d.records[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		d.mu.Unlock()
		return d.fail(&Error{Kind: KindLocalInconsistency, Message: "item not found"})
	}
	snapshot := make([]domain.StaffRecord, len(d.records))
	copy(snapshot, d.records)
	d.records = append(d.records[:index], d.records[index+1:]...)
	d.mu.Unlock()

	if err := d.store.Delete(ctx, id); err != nil {
		d.mu.Lock()
		d.records = snapshot
		d.mu.Unlock()
		return d.fail(normalize(err, "Failed to delete staff member"))
	}

	d.notifier.Success("Staff member deleted successfully")
	return nil
}

// fail logs the failure and emits its single error notification.
func (d *Directory) fail(dirErr *Error) *Error {
	d.logger.Warn("staff operation failed",
		zap.String("category", string(d.category)),
		zap.String("kind", string(dirErr.Kind)),
		zap.String("code", dirErr.Code),
		zap.Error(dirErr))
	d.notifier.Error(dirErr.Message)
	return dirErr
}
