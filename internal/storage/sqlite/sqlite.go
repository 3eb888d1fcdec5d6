// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
// Save rewrites every table inside a single transaction, so a failed save
// leaves the previous snapshot in place.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads every table into a snapshot.
func (s *SQLiteStore) Load(ctx context.Context) (*models.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snap := models.NewSnapshot()
	if snap.Participants, err = loadParticipants(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Expenses, err = loadExpenses(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Payments, err = loadPayments(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Accounts, err = loadAccounts(ctx, tx); err != nil {
		return nil, err
	}
	if snap.CurrentUser, err = loadCurrentUser(ctx, tx); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save replaces the contents of every table with snap.
func (s *SQLiteStore) Save(ctx context.Context, snap *models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"expense_splits", "expenses", "participants", "payments", "accounts", "acting_user"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := saveParticipants(ctx, tx, snap.Participants); err != nil {
		return err
	}
	if err := saveExpenses(ctx, tx, snap.Expenses); err != nil {
		return err
	}
	if err := savePayments(ctx, tx, snap.Payments); err != nil {
		return err
	}
	if err := saveAccounts(ctx, tx, snap.Accounts); err != nil {
		return err
	}
	if err := saveCurrentUser(ctx, tx, snap.CurrentUser); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
