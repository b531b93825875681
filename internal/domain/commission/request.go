package commission

import "fmt"

// Request is a commission calculation as submitted by a caller.
type Request struct {
	Price          float64
	LeadGenerators []string
	Telemarketing  string
	Conversion     string
}

// Validate checks the request in the order a user would fix it: price, lead
// generators, roles, then selection shape. maxLeadGenerators <= 0 disables the
// selection cap.
func (r Request) Validate(maxLeadGenerators int) error {
	if !ValidPrice(r.Price) {
		return ErrInvalidPrice
	}
	if len(r.LeadGenerators) == 0 {
		return ErrNoLeadGeneratorSelected
	}
	if r.Telemarketing == "" || r.Conversion == "" {
		return ErrRoleNotSelected
	}

	seen := make(map[string]struct{}, len(r.LeadGenerators))
	for _, name := range r.LeadGenerators {
		if name == "" {
			return ErrNoLeadGeneratorSelected
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLeadGenerator, name)
		}
		seen[name] = struct{}{}
	}

	if maxLeadGenerators > 0 && len(r.LeadGenerators) > maxLeadGenerators {
		return fmt.Errorf("%w: %d selected, maximum is %d",
			ErrSelectionLimitExceeded, len(r.LeadGenerators), maxLeadGenerators)
	}

	return nil
}

// Allocate validates the request and runs it through a.
func (r Request) Allocate(a *Allocator, maxLeadGenerators int) (*Result, error) {
	if err := r.Validate(maxLeadGenerators); err != nil {
		return nil, err
	}
	return a.Allocate(r.Price, r.LeadGenerators, r.Telemarketing, r.Conversion)
}
