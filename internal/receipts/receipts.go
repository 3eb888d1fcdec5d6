// Package receipts stores uploaded receipt files in a flat directory.
package receipts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/mmynk/consorcio/internal/ledger"
)

// DefaultMaxBytes is the upload limit when none is configured.
const DefaultMaxBytes int64 = 10 << 20

var allowedTypes = []string{"image/jpeg", "image/png", "application/pdf"}

// Receipt describes a stored upload.
type Receipt struct {
	Filename         string `json:"filename"`
	OriginalFilename string `json:"originalFilename"`
	Size             int64  `json:"size"`
	ContentType      string `json:"contentType"`
}

// Store writes receipts under a single directory.
type Store struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

// New creates the directory if needed. A non-positive maxBytes falls back to
// DefaultMaxBytes.
func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Store{dir: dir, maxBytes: maxBytes, now: time.Now}, nil
}

// MaxBytes returns the size limit for a single upload.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Save validates the content and writes it as "<unix>_<name>" with spaces in
// the name replaced by underscores.
func (s *Store) Save(name string, content []byte) (Receipt, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "" || base == "." || base == "/" {
		return Receipt{}, ledger.Validation("no file provided")
	}
	if len(content) == 0 {
		return Receipt{}, ledger.Validation("file is empty")
	}
	if int64(len(content)) > s.maxBytes {
		return Receipt{}, ledger.Validation("file exceeds the %d byte limit", s.maxBytes)
	}

	mtype := mimetype.Detect(content)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return Receipt{}, ledger.Validation("file type %s is not allowed, only JPG, PNG and PDF are accepted", mtype.String())
	}

	filename := fmt.Sprintf("%d_%s", s.now().Unix(), strings.ReplaceAll(base, " ", "_"))
	if err := os.WriteFile(filepath.Join(s.dir, filename), content, 0o644); err != nil {
		return Receipt{}, fmt.Errorf("failed to write receipt: %w", err)
	}

	return Receipt{
		Filename:         filename,
		OriginalFilename: base,
		Size:             int64(len(content)),
		ContentType:      mtype.String(),
	}, nil
}

// Path resolves a stored filename to its location on disk.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		return "", ledger.Validation("invalid filename")
	}
	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ledger.NotFound("receipt %s not found", filename)
		}
		return "", fmt.Errorf("failed to stat receipt: %w", err)
	}
	if info.IsDir() {
		return "", ledger.NotFound("receipt %s not found", filename)
	}
	return path, nil
}
