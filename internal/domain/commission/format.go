package commission

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// rupiahFormat groups thousands with "." and prints no decimals, as id-ID does.
const rupiahFormat = "#.###,"

// FormatRupiah renders amount as Indonesian currency, e.g. "Rp 100.000.000".
// The separator after "Rp" is a no-break space.
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-Rp\u00a0" + humanize.FormatInteger(rupiahFormat, int(-amount))
	}
	return "Rp\u00a0" + humanize.FormatInteger(rupiahFormat, int(amount))
}

// FormatPrice rounds a price to whole Rupiah before formatting. NaN and
// prices beyond MaxPrice render as zero.
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.Abs(price) > MaxPrice {
		return FormatRupiah(0)
	}
	return FormatRupiah(roundRupiah(price))
}

// FormatPercentage renders p with two decimals and a trailing "%".
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
