package commission

import (
	"fmt"
	"strings"
)

// Entry is a single member of the sales staff.
type Entry struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Roster is an immutable set of staff entries indexed by identifier and by
// display name. It is safe for concurrent reads.
type Roster struct {
	entries []Entry
	byID    map[int]Entry
	byName  map[string]Entry
}

// NewRoster builds a roster, rejecting non-positive ids, blank names and
// duplicates of either.
func NewRoster(entries []Entry) (*Roster, error) {
	r := &Roster{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[int]Entry, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
	}

	for _, e := range entries {
		if e.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidEntry, e.ID)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: id %d has an empty name", ErrInvalidEntry, e.ID)
		}
		if _, ok := r.byID[e.ID]; ok {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateEntry, e.ID)
		}
		if _, ok := r.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateEntry, e.Name)
		}

		r.entries = append(r.entries, e)
		r.byID[e.ID] = e
		r.byName[e.Name] = e
	}

	return r, nil
}

// DefaultEntries returns the standard sales roster.
func DefaultEntries() []Entry {
	return []Entry{
		{ID: 1, Name: "Diandra"},
		{ID: 2, Name: "Miftah"},
		{ID: 3, Name: "Dewan"},
		{ID: 4, Name: "Arman"},
		{ID: 5, Name: "Kusnandar"},
		{ID: 6, Name: "Gunawan"},
		{ID: 7, Name: "Nury"},
		{ID: 8, Name: "Anto"},
		{ID: 9, Name: "Dewi"},
	}
}

// Resolve returns the entry whose display name matches name exactly.
func (r *Roster) Resolve(name string) (Entry, error) {
	e, ok := r.byName[name]
	if !ok {
		return Entry{}, &ParticipantNotFoundError{Name: name}
	}
	return e, nil
}

// ByID returns the entry with the given identifier.
func (r *Roster) ByID(id int) (Entry, error) {
	e, ok := r.byID[id]
	if !ok {
		return Entry{}, &ParticipantNotFoundError{Name: fmt.Sprintf("#%d", id)}
	}
	return e, nil
}

// Entries returns a copy of the entries in configured order.
func (r *Roster) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns the display names in configured order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.entries)
}
