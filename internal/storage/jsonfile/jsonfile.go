// Package jsonfile provides a storage.Store backed by a single JSON document.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps the snapshot in one JSON file.
type Store struct {
	path string
}

// New creates a Store writing to path, creating parent directories as needed.
// The file itself is created on the first Save.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Path returns the location of the JSON document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing file yields an empty snapshot.
func (s *Store) Load(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}

	snap := models.NewSnapshot()
	if err := json.Unmarshal(content, snap); err != nil {
		return nil, fmt.Errorf("failed to decode database file %s: %w", s.path, err)
	}
	snap.Normalize()
	return snap, nil
}

// Save writes the document to a temporary file and renames it over the
// target, so readers see either the old or the new document.
func (s *Store) Save(ctx context.Context, snap *models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write database file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace database file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between operations.
func (s *Store) Close() error {
	return nil
}
