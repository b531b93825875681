package storage

import (
	"context"

	"github.com/eshaffer321/komisi/internal/domain/commission"
)

// StaffRepository stores the sales roster. It holds staff identities only;
// commission calculations are never written anywhere.
// This interface allows swapping implementations and makes testing with
// mocks straightforward.
type StaffRepository interface {
	// ListStaff returns every staff entry ordered by id
	ListStaff(ctx context.Context) ([]commission.Entry, error)

	// ReplaceStaff atomically replaces the whole roster
	ReplaceStaff(ctx context.Context, entries []commission.Entry) error

	Close() error
}
