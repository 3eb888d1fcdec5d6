package service

import (
	"context"

	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/models"
)

const entityExpense = "expense"

func (s *LedgerService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	err := s.read(ctx, entityExpense, "list", func(l *ledger.Ledger) error {
		out = l.Expenses().List()
		return nil
	})
	return out, err
}

func (s *LedgerService) GetExpense(ctx context.Context, id string) (models.Expense, error) {
	var out models.Expense
	err := s.read(ctx, entityExpense, "get", func(l *ledger.Ledger) (err error) {
		out, err = l.Expenses().Get(id)
		return err
	})
	return out, err
}

// CreateExpense stores e, generating an ID when e.ID is empty.
func (s *LedgerService) CreateExpense(ctx context.Context, e models.Expense) (models.Expense, error) {
	var out models.Expense
	err := s.write(ctx, entityExpense, "create", func(l *ledger.Ledger) (err error) {
		out, err = l.Expenses().Create(s.newID(e.ID), e)
		return err
	})
	if err == nil {
		s.logger.Info("Expense created",
			"expense_id", out.ID,
			"amount", out.Amount.String(),
			"paid_by", out.PaidBy,
			"split_among", out.SplitAmong,
		)
	}
	return out, err
}

// UpdateExpense replaces the record stored under id. An empty CreatedBy keeps
// the stored author.
func (s *LedgerService) UpdateExpense(ctx context.Context, id string, e models.Expense) (models.Expense, error) {
	var out models.Expense
	err := s.write(ctx, entityExpense, "update", func(l *ledger.Ledger) (err error) {
		if e.CreatedBy == "" {
			stored, err := l.Expenses().Get(id)
			if err != nil {
				return err
			}
			e.CreatedBy = stored.CreatedBy
		}
		out, err = l.Expenses().Update(id, e)
		return err
	})
	return out, err
}

func (s *LedgerService) DeleteExpense(ctx context.Context, id string) error {
	return s.write(ctx, entityExpense, "delete", func(l *ledger.Ledger) error {
		return l.Expenses().Delete(id)
	})
}
