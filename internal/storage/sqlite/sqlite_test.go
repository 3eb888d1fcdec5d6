package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Load on a fresh database returns an empty snapshot", func(t *testing.T) {
		store := newTestStore(t)

		snap, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(snap.Participants) != 0 || len(snap.Expenses) != 0 || len(snap.Payments) != 0 {
			t.Errorf("Expected empty snapshot, got %+v", snap)
		}
		if snap.CurrentUser != nil {
			t.Errorf("Expected no current user, got %+v", snap.CurrentUser)
		}
	})

	t.Run("Save then Load round-trips every collection", func(t *testing.T) {
		store := newTestStore(t)

		original := models.NewSnapshot()
		original.Participants = []models.Participant{
			{ID: "3", Name: "Ana Martínez", Email: "ana@email.com", Phone: "+54 11 5555-1234", Unit: "4D", Active: true},
			{ID: "1", Name: "María González", Email: "maria@email.com", Phone: "+54 11 1234-5678", Unit: "2A", Active: false},
		}
		original.Expenses = []models.Expense{
			{ID: "e2", Description: "Luz", Amount: decimal.RequireFromString("300.10"), Date: "2024-02-01",
				Category: "servicios", PaidBy: "3", SplitAmong: []string{"3", "1"}, CreatedBy: "3"},
			{ID: "e1", Description: "Agua", Amount: decimal.RequireFromString("99.99"), Date: "2024-02-02",
				Category: "servicios", Receipt: "1700000000_agua.pdf", PaidBy: "1", SplitAmong: []string{"1"}, CreatedBy: "1"},
		}
		original.Payments = []models.Payment{
			{ID: "p1", Description: "Saldo", Amount: decimal.RequireFromString("150.05"), Date: "2024-02-03",
				DebtorID: "1", CreditorID: "3", Receipt: "r.png", CreatedBy: "1"},
		}
		original.Accounts = []models.Account{
			{ID: "a1", ParticipantID: "1", Email: "maria@email.com", PasswordHash: "hash", Active: true, CreatedAt: 1700000000},
		}
		original.CurrentUser = &models.CurrentUser{ID: "1", Name: "María González", Email: "maria@email.com", Unit: "2A"}

		if err := store.Save(ctx, original); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		retrieved, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		// Verify order and fields
		if len(retrieved.Participants) != 2 || retrieved.Participants[0].ID != "3" || retrieved.Participants[1].ID != "1" {
			t.Errorf("Participants order mismatch: got %+v", retrieved.Participants)
		}
		if retrieved.Participants[1].Active {
			t.Errorf("Expected participant 1 to be inactive")
		}
		if len(retrieved.Expenses) != 2 {
			t.Fatalf("Expenses count mismatch: got %d, want 2", len(retrieved.Expenses))
		}
		first := retrieved.Expenses[0]
		if first.ID != "e2" || !first.Amount.Equal(original.Expenses[0].Amount) {
			t.Errorf("First expense mismatch: got %+v", first)
		}
		if len(first.SplitAmong) != 2 || first.SplitAmong[0] != "3" || first.SplitAmong[1] != "1" {
			t.Errorf("Split order mismatch: got %v", first.SplitAmong)
		}
		if first.Receipt != "" {
			t.Errorf("Expected empty receipt, got %q", first.Receipt)
		}
		if retrieved.Expenses[1].Receipt != "1700000000_agua.pdf" {
			t.Errorf("Receipt mismatch: got %q", retrieved.Expenses[1].Receipt)
		}
		if len(retrieved.Payments) != 1 || retrieved.Payments[0].CreditorID != "3" ||
			!retrieved.Payments[0].Amount.Equal(decimal.RequireFromString("150.05")) {
			t.Errorf("Payments mismatch: got %+v", retrieved.Payments)
		}
		if len(retrieved.Accounts) != 1 || retrieved.Accounts[0] != original.Accounts[0] {
			t.Errorf("Accounts mismatch: got %+v", retrieved.Accounts)
		}
		if retrieved.CurrentUser == nil || *retrieved.CurrentUser != *original.CurrentUser {
			t.Errorf("CurrentUser mismatch: got %+v", retrieved.CurrentUser)
		}
	})

	t.Run("Save replaces the previous snapshot", func(t *testing.T) {
		store := newTestStore(t)

		first := models.NewSnapshot()
		first.Participants = []models.Participant{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
		first.Expenses = []models.Expense{{ID: "e1", Description: "x", Amount: decimal.NewFromInt(1), Date: "2024-01-01",
			PaidBy: "1", SplitAmong: []string{"1", "2"}}}
		first.CurrentUser = &models.CurrentUser{ID: "1"}
		if err := store.Save(ctx, first); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		second := models.NewSnapshot()
		second.Participants = []models.Participant{{ID: "2", Name: "B"}}
		if err := store.Save(ctx, second); err != nil {
			t.Fatalf("Second save failed: %v", err)
		}

		retrieved, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(retrieved.Participants) != 1 || len(retrieved.Expenses) != 0 || retrieved.CurrentUser != nil {
			t.Errorf("Expected only the second snapshot, got %+v", retrieved)
		}
	})

	t.Run("Failed save keeps the previous snapshot", func(t *testing.T) {
		store := newTestStore(t)

		good := models.NewSnapshot()
		good.Participants = []models.Participant{{ID: "1", Name: "A"}}
		if err := store.Save(ctx, good); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		// Duplicate primary keys abort the transaction midway
		bad := models.NewSnapshot()
		bad.Participants = []models.Participant{{ID: "9", Name: "X"}, {ID: "9", Name: "Y"}}
		if err := store.Save(ctx, bad); err == nil {
			t.Fatal("Expected error for duplicate participant IDs, got nil")
		}

		retrieved, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(retrieved.Participants) != 1 || retrieved.Participants[0].ID != "1" {
			t.Errorf("Expected previous snapshot to survive, got %+v", retrieved.Participants)
		}
	})
}
