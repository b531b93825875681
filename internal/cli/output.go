package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/eshaffer321/komisi/internal/api/dto"
	"github.com/eshaffer321/komisi/internal/application/service"
	"github.com/eshaffer321/komisi/internal/domain/commission"
)

// PrintBreakdown prints a calculation as a table
func PrintBreakdown(w io.Writer, b *service.Breakdown) {
	fmt.Fprintf(w, "Commission for %s on %s\n\n",
		commission.FormatPrice(b.Price), b.Date.Format(service.DateLayout))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tRole\tShare\tAmount")
	for _, a := range b.Allocations {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			a.SalesID, a.Name, a.Role,
			commission.FormatPercentage(a.Percentage),
			commission.FormatRupiah(a.Amount))
	}
	_ = tw.Flush()

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Total: %s (%s)\n",
		commission.FormatRupiah(b.Total), commission.FormatPercentage(b.TotalPercentage))

	if len(b.Notices) > 0 {
		fmt.Fprintln(w, "\nNotices:")
		for _, n := range b.Notices {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}
}

// PrintBreakdownJSON prints a calculation in the same shape the API returns
func PrintBreakdownJSON(w io.Writer, b *service.Breakdown) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewCommissionResponse(b))
}

// PrintRoster prints the sales staff
func PrintRoster(w io.Writer, r *commission.Roster, source string) {
	fmt.Fprintf(w, "Sales roster (%s): %d staff\n\n", source, r.Len())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName")
	for _, e := range r.Entries() {
		fmt.Fprintf(tw, "%d\t%s\n", e.ID, e.Name)
	}
	_ = tw.Flush()
}
