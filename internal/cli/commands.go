package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eshaffer321/komisi/internal/application/service"
	"github.com/eshaffer321/komisi/internal/domain/commission"
	"github.com/eshaffer321/komisi/internal/infrastructure/config"
	"github.com/eshaffer321/komisi/internal/infrastructure/metrics"
	"github.com/eshaffer321/komisi/internal/infrastructure/roster"
	"github.com/eshaffer321/komisi/internal/infrastructure/storage"
)

// ErrInput marks a failure caused by the user's input. The message has
// already been printed.
var ErrInput = errors.New("invalid input")

// loadRoster loads the configured roster, opening the SQLite store only when
// the source needs it.
func loadRoster(ctx context.Context, cfg *config.Config) (*commission.Roster, error) {
	var repo storage.StaffRepository
	if cfg.Roster.Source == config.RosterSourceSQLite {
		store, err := storage.NewStorage(cfg.Roster.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open roster database: %w", err)
		}
		defer func() { _ = store.Close() }()
		repo = store
	}
	return roster.Load(ctx, cfg.Roster, repo)
}

// newService builds the commission service from config. m may be nil.
func newService(ctx context.Context, cfg *config.Config, m *metrics.Manager, logger *slog.Logger) (*service.CommissionService, error) {
	r, err := loadRoster(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("roster loaded", "source", cfg.Roster.Source, "staff", r.Len())
	return service.NewCommissionService(r, cfg.Commission.MaxLeadGenerators, m, logger)
}

// RunCalculate runs one calculation and prints it to w.
func RunCalculate(ctx context.Context, cfg *config.Config, flags *CalculateFlags, logger *slog.Logger, w io.Writer) error {
	svc, err := newService(ctx, cfg, nil, logger)
	if err != nil {
		return err
	}

	date, err := service.ParseDate(flags.Date)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return ErrInput
	}

	b, err := svc.Calculate(ctx, service.CalculateRequest{
		Price:          flags.Price,
		LeadGenerators: flags.LeadGenerators,
		Telemarketing:  flags.Telemarketing,
		Conversion:     flags.Conversion,
		Date:           date,
	})
	if err != nil {
		if commission.IsInputError(err) {
			fmt.Fprintf(w, "Error: %v\n", err)
			if errors.Is(err, commission.ErrParticipantNotFound) {
				fmt.Fprintf(w, "Known staff: %s\n", strings.Join(svc.Roster().Names(), ", "))
			}
			return fmt.Errorf("%w: %s", ErrInput, commission.Code(err))
		}
		return err
	}

	if flags.JSON {
		return PrintBreakdownJSON(w, b)
	}
	PrintBreakdown(w, b)
	return nil
}

// RunRosterList prints the configured roster.
func RunRosterList(ctx context.Context, cfg *config.Config, w io.Writer) error {
	r, err := loadRoster(ctx, cfg)
	if err != nil {
		return err
	}
	PrintRoster(w, r, cfg.Roster.Source)
	return nil
}

// RunRosterImport replaces the SQLite roster with the contents of a YAML file.
func RunRosterImport(ctx context.Context, cfg *config.Config, flags *RosterImportFlags, logger *slog.Logger, w io.Writer) error {
	store, err := storage.NewStorage(cfg.Roster.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open roster database: %w", err)
	}
	defer func() { _ = store.Close() }()

	n, err := roster.Import(ctx, flags.From, store)
	if err != nil {
		return err
	}

	logger.Info("roster imported", "from", flags.From, "database", cfg.Roster.DatabasePath, "staff", n)
	fmt.Fprintf(w, "Imported %d staff into %s\n", n, cfg.Roster.DatabasePath)
	if cfg.Roster.Source != config.RosterSourceSQLite {
		fmt.Fprintf(w, "Note: roster.source is %q; set it to %q to use the imported roster.\n",
			cfg.Roster.Source, config.RosterSourceSQLite)
	}
	return nil
}
