package create_event

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeStore struct {
	branches map[string]*domain.Branch
	staff    map[string]*domain.Staff
	created  []*domain.CalendarEvent
}

func (f *fakeStore) CreateEvent(e *domain.CalendarEvent) error {
	f.created = append(f.created, e)
	return nil
}

func (f *fakeStore) BranchByID(id string) (*domain.Branch, bool) {
	b, ok := f.branches[id]
	return b, ok
}

func (f *fakeStore) StaffByID(id string) (*domain.Staff, bool) {
	s, ok := f.staff[id]
	return s, ok
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		branches: map[string]*domain.Branch{
			"branch-1": {ID: "branch-1", Name: "Main"},
		},
		staff: map[string]*domain.Staff{
			"dynamic-1": {ID: "dynamic-1", SchedulingMode: domain.ModeDynamic},
			"static-1":  {ID: "static-1", SchedulingMode: domain.ModeStatic},
		},
	}
}

func baseRequest() *Request {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	return &Request{
		BranchID: "branch-1",
		Start:    start,
		End:      start.Add(time.Hour),
		StaffID:  "dynamic-1",
	}
}

func TestExecute_CreatesWithDefaults(t *testing.T) {
	store := newFakeStore()
	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, domain.DefaultPartySize, resp.Event.Details.PartySize)
	assert.Equal(t, domain.StatusConfirmed, resp.Event.Details.Status)
}

func TestExecute_RejectsOversizedParty(t *testing.T) {
	uc := NewUseCase(newFakeStore(), nopLogger{})

	req := baseRequest()
	req.PartySize = domain.MaxPartySize + 1
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsOversizedNotes(t *testing.T) {
	uc := NewUseCase(newFakeStore(), nopLogger{})

	notes := strings.Repeat("x", domain.MaxNotesLength+1)
	req := baseRequest()
	req.Notes = &notes
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsUnknownStatus(t *testing.T) {
	uc := NewUseCase(newFakeStore(), nopLogger{})

	req := baseRequest()
	req.Status = "tentative"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StaticStaffNeedsSlot(t *testing.T) {
	store := newFakeStore()
	uc := NewUseCase(store, nopLogger{})

	// A direct appointment against a static-mode staff member is
	// rejected before it reaches the store.
	req := baseRequest()
	req.StaffID = "static-1"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, store.created)

	// Targeting one of their slots is fine.
	req.SlotKey = &domain.SlotKey{TemplateID: "tpl-1", PatternID: "pat-1", Date: "2026-09-07"}
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_UnknownBranch(t *testing.T) {
	uc := NewUseCase(newFakeStore(), nopLogger{})

	req := baseRequest()
	req.BranchID = "ghost"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}
