package dto

import (
	"time"

	"github.com/eshaffer321/komisi/internal/application/service"
	"github.com/eshaffer321/komisi/internal/domain/commission"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a healthy status response.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// AllocationResponse is one row of a commission breakdown.
type AllocationResponse struct {
	SalesID           int     `json:"sales_id"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Percentage        float64 `json:"percentage"`
	PercentageDisplay string  `json:"percentage_display"`
	Amount            int64   `json:"amount"`
	AmountDisplay     string  `json:"amount_display"`
}

// CommissionResponse is returned by POST /api/commissions.
type CommissionResponse struct {
	ID              string               `json:"id"`
	Date            string               `json:"date"`
	Price           float64              `json:"price"`
	PriceDisplay    string               `json:"price_display"`
	Combined        bool                 `json:"combined"`
	Allocations     []AllocationResponse `json:"allocations"`
	Total           int64                `json:"total"`
	TotalDisplay    string               `json:"total_display"`
	TotalPercentage float64              `json:"total_percentage"`
	Notices         []string             `json:"notices,omitempty"`
}

// NewCommissionResponse converts a service breakdown to its response form.
func NewCommissionResponse(b *service.Breakdown) CommissionResponse {
	allocations := make([]AllocationResponse, 0, len(b.Allocations))
	for _, a := range b.Allocations {
		allocations = append(allocations, AllocationResponse{
			SalesID:           a.SalesID,
			Name:              a.Name,
			Role:              a.Role,
			Percentage:        a.Percentage,
			PercentageDisplay: commission.FormatPercentage(a.Percentage),
			Amount:            a.Amount,
			AmountDisplay:     commission.FormatRupiah(a.Amount),
		})
	}

	return CommissionResponse{
		ID:              b.ID.String(),
		Date:            b.Date.Format(service.DateLayout),
		Price:           b.Price,
		PriceDisplay:    commission.FormatPrice(b.Price),
		Combined:        b.Combined,
		Allocations:     allocations,
		Total:           b.Total,
		TotalDisplay:    commission.FormatRupiah(b.Total),
		TotalPercentage: b.TotalPercentage,
		Notices:         b.Notices,
	}
}

// RosterResponse is returned by GET /api/roster.
type RosterResponse struct {
	Sales []commission.Entry `json:"sales"`
	Count int                `json:"count"`
}

// NewRosterResponse lists roster entries in roster order.
func NewRosterResponse(r *commission.Roster) RosterResponse {
	return RosterResponse{
		Sales: r.Entries(),
		Count: r.Len(),
	}
}

// RatesResponse is returned by GET /api/rates. Rates are in percent.
// HelpText is the hint for an empty lead generator picker.
type RatesResponse struct {
	LeadGeneratorPool float64 `json:"lead_generator_pool"`
	Telemarketing     float64 `json:"telemarketing"`
	Conversion        float64 `json:"conversion"`
	Combined          float64 `json:"combined"`
	MaxLeadGenerators int     `json:"max_lead_generators"`
	HelpText          string  `json:"help_text"`
}

// NewRatesResponse converts a rate table to percentages.
func NewRatesResponse(rates commission.RateTable, maxLeadGenerators int) RatesResponse {
	return RatesResponse{
		LeadGeneratorPool: commission.Percent(rates.LeadGenPool),
		Telemarketing:     commission.Percent(rates.Telemarketing),
		Conversion:        commission.Percent(rates.Conversion),
		Combined:          commission.Percent(rates.Combined),
		MaxLeadGenerators: maxLeadGenerators,
		HelpText:          commission.NewSelection(maxLeadGenerators).HelpText(),
	}
}
