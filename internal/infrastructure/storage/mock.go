package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/eshaffer321/komisi/internal/domain/commission"
)

// MockRepository is an in-memory implementation of StaffRepository for testing.
type MockRepository struct {
	mu    sync.Mutex
	staff map[int]commission.Entry

	// Hooks for test assertions
	ReplaceStaffCalled bool

	// Error injection for testing error paths
	ListStaffErr    error
	ReplaceStaffErr error
}

// Compile-time check that MockRepository implements StaffRepository
var _ StaffRepository = (*MockRepository)(nil)

// NewMockRepository creates a mock repository holding entries
func NewMockRepository(entries ...commission.Entry) *MockRepository {
	m := &MockRepository{staff: make(map[int]commission.Entry)}
	for _, e := range entries {
		m.staff[e.ID] = e
	}
	return m
}

// ListStaff returns every staff entry ordered by id
func (m *MockRepository) ListStaff(_ context.Context) ([]commission.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListStaffErr != nil {
		return nil, m.ListStaffErr
	}

	entries := make([]commission.Entry, 0, len(m.staff))
	for _, e := range m.staff {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// ReplaceStaff swaps the stored roster
func (m *MockRepository) ReplaceStaff(_ context.Context, entries []commission.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReplaceStaffCalled = true
	if m.ReplaceStaffErr != nil {
		return m.ReplaceStaffErr
	}
	if _, err := commission.NewRoster(entries); err != nil {
		return err
	}

	m.staff = make(map[int]commission.Entry, len(entries))
	for _, e := range entries {
		m.staff[e.ID] = e
	}
	return nil
}

// Close is a no-op
func (m *MockRepository) Close() error {
	return nil
}
