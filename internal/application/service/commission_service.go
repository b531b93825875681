package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eshaffer321/komisi/internal/domain/commission"
	"github.com/eshaffer321/komisi/internal/infrastructure/metrics"
)

// DateLayout is the calendar date format accepted and reported for calculations.
const DateLayout = "2006-01-02"

// CalculateRequest holds the inputs for a single commission calculation.
type CalculateRequest struct {
	Price          float64
	LeadGenerators []string
	Telemarketing  string
	Conversion     string
	Date           time.Time // zero means today
}

// Breakdown is the result of a calculation as shown to users.
type Breakdown struct {
	ID              uuid.UUID
	Date            time.Time
	Price           float64
	Allocations     []commission.Allocation
	Combined        bool
	Total           int64
	TotalPercentage float64

	// Notices lists lead generator picks that were dropped because the
	// selection limit was reached.
	Notices []string
}

// CommissionService runs calculations against a fixed roster.
// It keeps no per-calculation state and is safe for concurrent use.
type CommissionService struct {
	allocator         *commission.Allocator
	maxLeadGenerators int
	metrics           *metrics.Manager
	logger            *slog.Logger
	now               func() time.Time
}

// NewCommissionService creates a service using the standard rate table.
// metrics may be nil.
func NewCommissionService(
	roster *commission.Roster,
	maxLeadGenerators int,
	m *metrics.Manager,
	logger *slog.Logger,
) (*CommissionService, error) {
	allocator, err := commission.NewAllocator(roster, commission.DefaultRates())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if maxLeadGenerators <= 0 {
		maxLeadGenerators = commission.DefaultMaxLeadGenerators
	}

	return &CommissionService{
		allocator:         allocator,
		maxLeadGenerators: maxLeadGenerators,
		metrics:           m,
		logger:            logger,
		now:               time.Now,
	}, nil
}

// Calculate validates req and splits the commission.
//
// Lead generators beyond the selection limit are dropped in the order given
// and reported in Breakdown.Notices rather than failing the calculation.
// Input errors wrap the commission sentinels; use commission.Code to map them.
func (s *CommissionService) Calculate(ctx context.Context, req CalculateRequest) (*Breakdown, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := commission.Request{
		Price:          req.Price,
		LeadGenerators: req.LeadGenerators,
		Telemarketing:  req.Telemarketing,
		Conversion:     req.Conversion,
	}
	if err := raw.Validate(0); err != nil {
		return nil, s.reject(err)
	}

	selection := commission.NewSelection(s.maxLeadGenerators)
	var notices []string
	for _, name := range req.LeadGenerators {
		if err := selection.Add(name); err != nil {
			notices = append(notices, err.Error())
		}
	}
	if len(notices) > 0 {
		s.metrics.RecordSelectionOverflow(len(notices))
		s.logger.Warn("lead generator selection truncated",
			"selected", selection.Len(),
			"dropped", len(notices),
			"max", selection.Max())
	}

	corrected := raw
	corrected.LeadGenerators = selection.Names()

	result, err := corrected.Allocate(s.allocator, s.maxLeadGenerators)
	if err != nil {
		return nil, s.reject(err)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}
	y, mo, d := date.Date()

	b := &Breakdown{
		ID:              uuid.New(),
		Date:            time.Date(y, mo, d, 0, 0, 0, 0, time.UTC),
		Price:           req.Price,
		Allocations:     result.Allocations,
		Combined:        result.Combined,
		Total:           result.Total(),
		TotalPercentage: result.TotalPercentage(),
		Notices:         notices,
	}

	s.metrics.RecordCalculation(len(corrected.LeadGenerators), result.Combined, b.Total)
	s.logger.Info("commission calculated",
		"id", b.ID.String(),
		"price", commission.FormatPrice(req.Price),
		"lead_generators", len(corrected.LeadGenerators),
		"combined", result.Combined,
		"total", commission.FormatRupiah(b.Total))

	return b, nil
}

// reject records a failed calculation and passes err through.
func (s *CommissionService) reject(err error) error {
	if code := commission.Code(err); code != "" {
		s.metrics.RecordRejection(code)
		s.logger.Debug("calculation rejected", "code", code, "error", err)
		return err
	}

	s.metrics.RecordFailure()
	s.logger.Error("calculation failed", "error", err)
	return fmt.Errorf("calculation failed: %w", err)
}

// Roster returns the roster calculations resolve names against.
func (s *CommissionService) Roster() *commission.Roster {
	return s.allocator.Roster()
}

// Rates returns the rate table in use.
func (s *CommissionService) Rates() commission.RateTable {
	return s.allocator.Rates()
}

// MaxLeadGenerators returns the selection limit.
func (s *CommissionService) MaxLeadGenerators() int {
	return s.maxLeadGenerators
}

// ParseDate parses a calculation date. An empty string yields the zero time.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

