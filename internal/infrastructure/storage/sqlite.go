// Package storage provides the SQLite-backed sales roster.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/eshaffer321/komisi/internal/domain/commission"
)

// Storage provides SQLite database access for the sales roster.
// It implements the StaffRepository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements StaffRepository
var _ StaffRepository = (*Storage)(nil)

// NewStorage opens (or creates) the SQLite database and runs pending migrations
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// ListStaff returns every staff entry ordered by id
func (s *Storage) ListStaff(ctx context.Context) ([]commission.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM sales_staff ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []commission.Entry
	for rows.Next() {
		var e commission.Entry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ReplaceStaff validates entries as a roster, then swaps the table contents
// in one transaction.
func (s *Storage) ReplaceStaff(ctx context.Context, entries []commission.Entry) error {
	if _, err := commission.NewRoster(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales_staff`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear staff: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sales_staff (id, name) VALUES (?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert staff %d: %w", e.ID, err)
		}
	}

	return tx.Commit()
}
