package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmynk/consorcio/internal/idgen"
	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/metrics"
	"github.com/mmynk/consorcio/internal/storage"
)

// LedgerService runs ledger operations against the persistent store.
// Every call loads the snapshot, applies one operation and, for mutations,
// saves the snapshot back. A failed operation leaves the store untouched.
type LedgerService struct {
	store   storage.Store
	ids     idgen.Generator
	metrics *metrics.Metrics
	logger  *slog.Logger

	// mu serialises load-modify-save cycles within the process.
	mu sync.Mutex
}

// NewLedgerService creates a LedgerService. metrics may be nil.
func NewLedgerService(store storage.Store, ids idgen.Generator, m *metrics.Metrics, logger *slog.Logger) *LedgerService {
	if ids == nil {
		ids = idgen.UUIDv7{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerService{
		store:   store,
		ids:     ids,
		metrics: m,
		logger:  logger,
	}
}

// read runs fn against a freshly loaded snapshot and discards it afterwards.
func (s *LedgerService) read(ctx context.Context, entity, op string, fn func(*ledger.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load ledger: %w", err)
		s.observe(entity, op, err)
		return err
	}

	err = fn(ledger.New(snap))
	s.observe(entity, op, err)
	return err
}

// write runs fn against a freshly loaded snapshot and saves it if fn succeeds.
func (s *LedgerService) write(ctx context.Context, entity, op string, fn func(*ledger.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load ledger: %w", err)
		s.observe(entity, op, err)
		return err
	}

	l := ledger.New(snap)
	if err := fn(l); err != nil {
		s.observe(entity, op, err)
		return err
	}

	if err := s.store.Save(ctx, l.Snapshot()); err != nil {
		err = fmt.Errorf("failed to save ledger: %w", err)
		s.observe(entity, op, err)
		return err
	}

	s.observe(entity, op, nil)
	return nil
}

func (s *LedgerService) observe(entity, op string, err error) {
	result := "ok"
	switch {
	case err == nil:
		s.logger.Debug("Ledger operation", "entity", entity, "operation", op)
	case ledger.KindOf(err) != 0:
		result = ledger.KindOf(err).String()
		s.logger.Warn("Ledger operation rejected", "entity", entity, "operation", op, "reason", result, "error", err)
	default:
		result = "error"
		s.logger.Error("Ledger operation failed", "entity", entity, "operation", op, "error", err)
	}
	s.metrics.ObserveOperation(entity, op, result)
}

// newID returns id unchanged when set, otherwise a generated one.
func (s *LedgerService) newID(id string) string {
	if id != "" {
		return id
	}
	return s.ids.NewID()
}
