package commission

import (
	"fmt"
	"math"
)

// rateTolerance absorbs float noise when checking the rate invariants.
const rateTolerance = 1e-9

// MaxPrice is the largest accepted sale price in Rupiah. Below it every
// amount is exact to the Rupiah in float64 and every total fits in int64.
const MaxPrice = 1e15

// ValidPrice reports whether price is a finite number in (0, MaxPrice].
func ValidPrice(price float64) bool {
	return !math.IsNaN(price) && price > 0 && price <= MaxPrice
}

// RateTable holds the fixed commission rates as fractions of the sale price.
type RateTable struct {
	LeadGenPool   float64
	Telemarketing float64
	Conversion    float64
	Combined      float64
}

// DefaultRates returns the standard split: 25% lead generation pool,
// 25% telemarketing, 50% conversion, 75% when one person does both of the latter.
func DefaultRates() RateTable {
	return RateTable{
		LeadGenPool:   0.25,
		Telemarketing: 0.25,
		Conversion:    0.50,
		Combined:      0.75,
	}
}

// Validate checks that telemarketing+conversion equals the combined rate and
// that the three role rates cover the whole price.
func (r RateTable) Validate() error {
	for _, rate := range []float64{r.LeadGenPool, r.Telemarketing, r.Conversion, r.Combined} {
		if rate < 0 || rate > 1 || math.IsNaN(rate) {
			return fmt.Errorf("%w: rate %v out of range", ErrInvalidRates, rate)
		}
	}
	if math.Abs(r.Telemarketing+r.Conversion-r.Combined) > rateTolerance {
		return fmt.Errorf("%w: telemarketing + conversion must equal combined", ErrInvalidRates)
	}
	if math.Abs(r.LeadGenPool+r.Telemarketing+r.Conversion-1) > rateTolerance {
		return fmt.Errorf("%w: rates must sum to 100%%", ErrInvalidRates)
	}
	return nil
}

// Percent converts a fractional rate into a percentage.
func Percent(rate float64) float64 {
	return rate * 100
}
