// Package roster loads the sales roster from the configured source.
package roster

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eshaffer321/komisi/internal/domain/commission"
	"github.com/eshaffer321/komisi/internal/infrastructure/config"
	"github.com/eshaffer321/komisi/internal/infrastructure/storage"
)

// File is the on-disk YAML layout of a roster file:
//
//	sales:
//	  - id: 1
//	    name: Diandra
type File struct {
	Sales []commission.Entry `yaml:"sales"`
}

// Load builds a roster from cfg.Source. repo is only consulted for the
// sqlite source and may be nil otherwise.
func Load(ctx context.Context, cfg config.RosterConfig, repo storage.StaffRepository) (*commission.Roster, error) {
	switch cfg.Source {
	case "", config.RosterSourceBuiltin:
		return commission.NewRoster(commission.DefaultEntries())
	case config.RosterSourceFile:
		entries, err := ReadFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		return commission.NewRoster(entries)
	case config.RosterSourceSQLite:
		if repo == nil {
			return nil, fmt.Errorf("roster source %q requires a staff repository", cfg.Source)
		}
		entries, err := repo.ListStaff(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load staff: %w", err)
		}
		return commission.NewRoster(entries)
	default:
		return nil, fmt.Errorf("unknown roster source %q", cfg.Source)
	}
}

// ReadFile parses a YAML roster file
func ReadFile(path string) ([]commission.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML roster document. It does not validate the entries;
// commission.NewRoster does that.
func Parse(data []byte) ([]commission.Entry, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if len(f.Sales) == 0 {
		return nil, fmt.Errorf("%w: roster file lists no sales staff", commission.ErrInvalidEntry)
	}
	return f.Sales, nil
}

// Import reads a YAML roster file and replaces the stored roster with it.
// It returns the number of imported entries.
func Import(ctx context.Context, path string, repo storage.StaffRepository) (int, error) {
	entries, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := repo.ReplaceStaff(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to import roster: %w", err)
	}
	return len(entries), nil
}
