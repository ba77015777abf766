package directory

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/domain"
)

type fakeStore struct {
	records []domain.StaffRecord
	nextID  int

	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	calls int
}

func (s *fakeStore) ListByCategory(_ context.Context, category domain.Category) ([]domain.StaffRecord, error) {
	s.calls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []domain.StaffRecord
	for _, rec := range s.records {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *fakeStore) Insert(_ context.Context, record domain.StaffRecord) (domain.StaffRecord, error) {
	s.calls++
	if s.insertErr != nil {
		return domain.StaffRecord{}, s.insertErr
	}
	s.nextID++
	record.ID = "generated-" + strconv.Itoa(s.nextID)
	s.records = append(s.records, record)
	return record, nil
}

func (s *fakeStore) Update(_ context.Context, id string, changes domain.StaffChanges) error {
	s.calls++
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.records {
		if s.records[i].ID == id {
			changes.Apply(&s.records[i])
			return nil
		}
	}
	return &Error{Kind: KindRemoteFailure, Message: "staff member not found"}
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.calls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

var editor = Session{Authenticated: true, Editor: true}

func newTestDirectory(store *fakeStore) (*Directory, *recordingNotifier) {
	notifier := &recordingNotifier{}
	return New(domain.CategoryHeadStaff, store, notifier, zap.NewNop()), notifier
}

func record(id, name, position string) domain.StaffRecord {
	return domain.StaffRecord{
		ID:       id,
		Name:     name,
		Position: position,
		Category: domain.CategoryHeadStaff,
	}
}

func TestRefreshSortsListing(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Amy", "Deputy Principal"),
		record("2", "Bob", "Principal"),
		record("3", "Zoe", "Math Teacher"),
		record("4", "Cara", "Art Teacher"),
	}}
	dir, notifier := newTestDirectory(store)

	require.NoError(t, dir.Refresh(context.Background()))
	assert.Equal(t, StateReady, dir.State())

	got := dir.Records()
	require.Len(t, got, 4)
	assert.Equal(t, "Bob", got[0].Name)
	assert.Equal(t, "Amy", got[1].Name)
	assert.Equal(t, "Cara", got[2].Name)
	assert.Equal(t, "Zoe", got[3].Name)
	assert.Empty(t, notifier.errors)
}

func TestRefreshEmptyCategory(t *testing.T) {
	dir, _ := newTestDirectory(&fakeStore{})

	require.NoError(t, dir.Refresh(context.Background()))
	assert.Equal(t, StateReady, dir.State())
	assert.Empty(t, dir.Records())
}

func TestRefreshFailureKeepsStructuredError(t *testing.T) {
	store := &fakeStore{listErr: &Error{
		Kind:    KindRemoteFailure,
		Message: "connection refused",
		Code:    "08006",
	}}
	dir, notifier := newTestDirectory(store)

	err := dir.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateError, dir.State())

	lastErr := dir.LastError()
	require.NotNil(t, lastErr)
	assert.Equal(t, "connection refused", lastErr.Message)
	assert.Equal(t, "08006", lastErr.Code)
	assert.Equal(t, []string{"connection refused"}, notifier.errors)

	// Retry re-enters Loading and recovers.
	store.listErr = nil
	require.NoError(t, dir.Refresh(context.Background()))
	assert.Equal(t, StateReady, dir.State())
	assert.Nil(t, dir.LastError())
}

func TestAddAppendsWithoutResort(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Amy", "Deputy Principal"),
	}}
	dir, notifier := newTestDirectory(store)
	require.NoError(t, dir.Refresh(context.Background()))

	inserted, err := dir.Add(context.Background(), editor, domain.StaffRecord{
		Name:     "Bob",
		Position: "Principal",
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.NotEmpty(t, inserted.ID)
	assert.Equal(t, domain.CategoryHeadStaff, inserted.Category)

	// A principal outranks a deputy, but new records always land at the end
	// until the next full fetch.
	got := dir.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "Amy", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)
	assert.Equal(t, []string{"Staff member added successfully"}, notifier.successes)
}

func TestAddFailureLeavesListingUntouched(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Amy", "Deputy Principal"),
	}}
	dir, notifier := newTestDirectory(store)
	require.NoError(t, dir.Refresh(context.Background()))

	store.insertErr = &Error{Kind: KindRemoteFailure, Message: "insert rejected", Code: "23505"}
	before := dir.Records()

	inserted, err := dir.Add(context.Background(), editor, domain.StaffRecord{Name: "Bob"})
	require.Error(t, err)
	assert.Nil(t, inserted)
	assert.Equal(t, before, dir.Records())
	assert.Equal(t, []string{"insert rejected"}, notifier.errors)
	assert.Empty(t, notifier.successes)
}

func TestUpdateMergesInPlace(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Bob", "Principal"),
		record("2", "Amy", "Deputy Principal"),
	}}
	dir, notifier := newTestDirectory(store)
	require.NoError(t, dir.Refresh(context.Background()))

	phone := "+1 (555) 010-0000"
	err := dir.Update(context.Background(), editor, "2", domain.StaffChanges{Phone: &phone})
	require.NoError(t, err)

	got := dir.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, phone, got[1].Phone)
	assert.Equal(t, "Amy", got[1].Name)
	assert.Equal(t, []string{"Staff member updated successfully"}, notifier.successes)
}

func TestUpdateFailureLeavesListingUntouched(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Bob", "Principal"),
	}}
	dir, notifier := newTestDirectory(store)
	require.NoError(t, dir.Refresh(context.Background()))

	store.updateErr = &Error{Kind: KindRemoteFailure, Message: "update rejected"}
	before := dir.Records()

	name := "Robert"
	err := dir.Update(context.Background(), editor, "1", domain.StaffChanges{Name: &name})
	require.Error(t, err)
	assert.Equal(t, before, dir.Records())
	assert.Equal(t, []string{"update rejected"}, notifier.errors)
}

func TestDeleteRemovesOptimistically(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Bob", "Principal"),
		record("2", "Amy", "Deputy Principal"),
	}}
	dir, notifier := newTestDirectory(store)
	require.NoError(t, dir.Refresh(context.Background()))

	require.NoError(t, dir.Delete(context.Background(), editor, "1"))
	got := dir.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, []string{"Staff member deleted successfully"}, notifier.successes)
}

func TestDeleteRollbackRestoresExactSnapshot(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Bob", "Principal"),
		record("2", "Amy", "Deputy Principal"),
		record("3", "Zoe", "Math Teacher"),
	}}
	dir, notifier := newTestDirectory(store)
	require.NoError(t, dir.Refresh(context.Background()))
	before := dir.Records()

	store.deleteErr = &Error{Kind: KindRemoteFailure, Message: "delete rejected", Code: "500"}
	err := dir.Delete(context.Background(), editor, "2")
	require.Error(t, err)

	var dirErr *Error
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, KindRemoteFailure, dirErr.Kind)
	assert.Equal(t, "500", dirErr.Code)

	// Same members, same order as before the optimistic removal.
	assert.Equal(t, before, dir.Records())
	assert.Equal(t, []string{"delete rejected"}, notifier.errors)
	assert.Empty(t, notifier.successes)
}

func TestDeleteUnknownIDSkipsStore(t *testing.T) {
	store := &fakeStore{records: []domain.StaffRecord{
		record("1", "Bob", "Principal"),
	}}
	dir, notifier := newTestDirectory(store)
	require.NoError(t, dir.Refresh(context.Background()))
	callsAfterRefresh := store.calls

	err := dir.Delete(context.Background(), editor, "missing")
	require.Error(t, err)

	var dirErr *Error
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, KindLocalInconsistency, dirErr.Kind)
	assert.Equal(t, "item not found", dirErr.Message)
	assert.Equal(t, callsAfterRefresh, store.calls)
	assert.Equal(t, []string{"item not found"}, notifier.errors)
}

func TestMutationsRequireEditorCapability(t *testing.T) {
	for name, session := range map[string]Session{
		"anonymous": {},
		"viewer":    {Authenticated: true},
	} {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{records: []domain.StaffRecord{
				record("1", "Bob", "Principal"),
			}}
			dir, notifier := newTestDirectory(store)
			require.NoError(t, dir.Refresh(context.Background()))
			callsAfterRefresh := store.calls
			before := dir.Records()

			_, addErr := dir.Add(context.Background(), session, domain.StaffRecord{Name: "Eve"})
			title := "Imposter"
			updateErr := dir.Update(context.Background(), session, "1", domain.StaffChanges{Position: &title})
			deleteErr := dir.Delete(context.Background(), session, "1")

			// No store traffic, no local mutation, one notification each.
			assert.Equal(t, callsAfterRefresh, store.calls)
			assert.Equal(t, before, dir.Records())
			assert.Len(t, notifier.errors, 3)
			for _, err := range []error{addErr, updateErr, deleteErr} {
				var dirErr *Error
				require.ErrorAs(t, err, &dirErr)
				assert.Equal(t, KindPermissionDenied, dirErr.Kind)
			}
		})
	}
}

func TestUnexpectedStoreErrorIsNormalized(t *testing.T) {
	store := &fakeStore{listErr: context.DeadlineExceeded}
	dir, _ := newTestDirectory(store)

	err := dir.Refresh(context.Background())
	require.Error(t, err)

	var dirErr *Error
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, KindUnexpected, dirErr.Kind)
	assert.Equal(t, "Failed to fetch staff data", dirErr.Message)
	assert.Equal(t, context.DeadlineExceeded.Error(), dirErr.Details)
}

func TestManagerReusesInstances(t *testing.T) {
	store := &fakeStore{}
	manager := NewManager(store, func(domain.Category) Notifier {
		return &recordingNotifier{}
	}, zap.NewNop())

	a := manager.Directory(domain.CategoryPrefects)
	b := manager.Directory(domain.CategoryPrefects)
	c := manager.Directory(domain.CategoryHeadStaff)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, domain.CategoryPrefects, a.Category())
}
