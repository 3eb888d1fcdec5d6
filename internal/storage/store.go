// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/consorcio/internal/models"
)

// Store defines the persistence collaborator of the ledger.
// The whole snapshot is read before every operation and rewritten after
// every mutation, so backends can be swapped (JSON file, SQLite, ...)
// without changing the service layer.
type Store interface {
	// Load returns the current snapshot. An empty store yields an empty
	// snapshot, not an error.
	Load(ctx context.Context) (*models.Snapshot, error)

	// Save replaces the persisted snapshot with snap.
	// On error the previously persisted snapshot must remain readable.
	Save(ctx context.Context, snap *models.Snapshot) error

	// Close releases any resources held by the store.
	Close() error
}
