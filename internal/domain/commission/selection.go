package commission

import "fmt"

// DefaultMaxLeadGenerators caps how many lead generators a sale may credit.
const DefaultMaxLeadGenerators = 10

// Selection is an ordered set of lead generator names with an upper bound.
// Adding past the bound is rejected and leaves the selection unchanged.
type Selection struct {
	max   int
	names []string
	index map[string]struct{}
}

// NewSelection returns an empty selection. A non-positive max falls back to
// DefaultMaxLeadGenerators.
func NewSelection(max int) *Selection {
	if max <= 0 {
		max = DefaultMaxLeadGenerators
	}
	return &Selection{
		max:   max,
		index: make(map[string]struct{}),
	}
}

// Add selects name. Selecting an already selected name is a no-op.
func (s *Selection) Add(name string) error {
	if s.Contains(name) {
		return nil
	}
	if len(s.names) >= s.max {
		return fmt.Errorf("%w: at most %d lead generators can be selected, %q was not added",
			ErrSelectionLimitExceeded, s.max, name)
	}
	s.names = append(s.names, name)
	s.index[name] = struct{}{}
	return nil
}

// Contains reports whether name is selected.
func (s *Selection) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the selected names in selection order.
func (s *Selection) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of selected names.
func (s *Selection) Len() int {
	return len(s.names)
}

// Max returns the selection bound.
func (s *Selection) Max() int {
	return s.max
}

// AtLimit reports whether no further names can be added.
func (s *Selection) AtLimit() bool {
	return len(s.names) >= s.max
}

// HelpText is the hint shown under the lead generator picker.
func (s *Selection) HelpText() string {
	if s.AtLimit() {
		return fmt.Sprintf("Limit of %d lead generators reached.", s.max)
	}
	return fmt.Sprintf("Select the staff involved (max %d).", s.max)
}
