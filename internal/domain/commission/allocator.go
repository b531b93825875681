// Package commission provides the commission split for a property sale.
//
// The sale price is divided among three roles:
//
//	lead generators  25%  split equally across all selected generators
//	telemarketing    25%
//	conversion       50%
//
// When one person holds both telemarketing and conversion they receive a single
// combined 75% share. Every amount is rounded to the nearest whole Rupiah
// (half away from zero) at the point it is computed, so the sum of the records
// may differ from the price by a few Rupiah.
package commission

import (
	"math"
)

// Role labels as shown to users.
const (
	RoleLeadGenerator = "Lead Generator"
	RoleTelemarketing = "Telemarketing"
	RoleConversion    = "Lead Conversion"
	RoleCombined      = "Telemarketing & Conversion"
)

// Allocation is the commission assigned to one participant in one role.
type Allocation struct {
	SalesID    int     `json:"sales_id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Percentage float64 `json:"percentage"`
	Amount     int64   `json:"amount"`
}

// Result is the ordered list of allocations: lead generators in input order,
// followed by either the combined record or telemarketing then conversion.
type Result struct {
	Allocations []Allocation
	Combined    bool
}

// Total sums the already-rounded amounts. This is the commission total shown
// to users.
func (r *Result) Total() int64 {
	var total int64
	for _, a := range r.Allocations {
		total += a.Amount
	}
	return total
}

// TotalPercentage sums the record percentages.
func (r *Result) TotalPercentage() float64 {
	var total float64
	for _, a := range r.Allocations {
		total += a.Percentage
	}
	return total
}

// Allocator computes commission splits against a fixed roster and rate table.
// It holds no mutable state; one Allocator may serve concurrent callers.
type Allocator struct {
	roster *Roster
	rates  RateTable
}

// NewAllocator validates the rate table and returns an allocator bound to roster.
func NewAllocator(roster *Roster, rates RateTable) (*Allocator, error) {
	if roster == nil {
		return nil, ErrInvalidEntry
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Allocator{roster: roster, rates: rates}, nil
}

// Roster returns the roster the allocator resolves names against.
func (a *Allocator) Roster() *Roster {
	return a.roster
}

// Rates returns the rate table in use.
func (a *Allocator) Rates() RateTable {
	return a.rates
}

// Allocate splits price among the given participants. It fails without a
// partial result if the price is not in (0, MaxPrice], no lead
// generator is given, a role is unset, or a name is not in the roster.
func (a *Allocator) Allocate(price float64, leadGenerators []string, telemarketing, conversion string) (*Result, error) {
	if !ValidPrice(price) {
		return nil, ErrInvalidPrice
	}
	if len(leadGenerators) == 0 {
		return nil, ErrNoLeadGeneratorSelected
	}
	if telemarketing == "" || conversion == "" {
		return nil, ErrRoleNotSelected
	}

	// Resolve everyone up front so a bad name never yields a partial result.
	generators := make([]Entry, len(leadGenerators))
	for i, name := range leadGenerators {
		e, err := a.roster.Resolve(name)
		if err != nil {
			return nil, err
		}
		generators[i] = e
	}
	tele, err := a.roster.Resolve(telemarketing)
	if err != nil {
		return nil, err
	}
	conv, err := a.roster.Resolve(conversion)
	if err != nil {
		return nil, err
	}

	allocations := make([]Allocation, 0, len(generators)+2)

	// Step 1: lead generators share the pool equally
	n := float64(len(generators))
	pool := price * a.rates.LeadGenPool
	share := roundRupiah(pool / n)
	sharePct := Percent(a.rates.LeadGenPool) / n
	for _, g := range generators {
		allocations = append(allocations, Allocation{
			SalesID:    g.ID,
			Name:       g.Name,
			Role:       RoleLeadGenerator,
			Percentage: sharePct,
			Amount:     share,
		})
	}

	// Step 2: telemarketing and conversion, merged when held by one person
	combined := tele.Name == conv.Name
	if combined {
		allocations = append(allocations, Allocation{
			SalesID:    tele.ID,
			Name:       tele.Name,
			Role:       RoleCombined,
			Percentage: Percent(a.rates.Combined),
			Amount:     roundRupiah(price * a.rates.Combined),
		})
	} else {
		allocations = append(allocations,
			Allocation{
				SalesID:    tele.ID,
				Name:       tele.Name,
				Role:       RoleTelemarketing,
				Percentage: Percent(a.rates.Telemarketing),
				Amount:     roundRupiah(price * a.rates.Telemarketing),
			},
			Allocation{
				SalesID:    conv.ID,
				Name:       conv.Name,
				Role:       RoleConversion,
				Percentage: Percent(a.rates.Conversion),
				Amount:     roundRupiah(price * a.rates.Conversion),
			},
		)
	}

	return &Result{
		Allocations: allocations,
		Combined:    combined,
	}, nil
}

// roundRupiah rounds to the nearest whole Rupiah, halves away from zero.
func roundRupiah(amount float64) int64 {
	return int64(math.Round(amount))
}
