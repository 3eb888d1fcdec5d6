package service

import (
	"context"

	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/models"
)

const entityPayment = "payment"

func (s *LedgerService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	err := s.read(ctx, entityPayment, "list", func(l *ledger.Ledger) error {
		out = l.Payments().List()
		return nil
	})
	return out, err
}

func (s *LedgerService) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	var out models.Payment
	err := s.read(ctx, entityPayment, "get", func(l *ledger.Ledger) (err error) {
		out, err = l.Payments().Get(id)
		return err
	})
	return out, err
}

// CreatePayment stores p, generating an ID when p.ID is empty.
func (s *LedgerService) CreatePayment(ctx context.Context, p models.Payment) (models.Payment, error) {
	var out models.Payment
	err := s.write(ctx, entityPayment, "create", func(l *ledger.Ledger) (err error) {
		out, err = l.Payments().Create(s.newID(p.ID), p)
		return err
	})
	if err == nil {
		s.logger.Info("Payment created",
			"payment_id", out.ID,
			"amount", out.Amount.String(),
			"debtor", out.DebtorID,
			"creditor", out.CreditorID,
		)
	}
	return out, err
}

// UpdatePayment replaces the record stored under id. An empty CreatedBy keeps
// the stored author.
func (s *LedgerService) UpdatePayment(ctx context.Context, id string, p models.Payment) (models.Payment, error) {
	var out models.Payment
	err := s.write(ctx, entityPayment, "update", func(l *ledger.Ledger) (err error) {
		if p.CreatedBy == "" {
			stored, err := l.Payments().Get(id)
			if err != nil {
				return err
			}
			p.CreatedBy = stored.CreatedBy
		}
		out, err = l.Payments().Update(id, p)
		return err
	})
	return out, err
}

func (s *LedgerService) DeletePayment(ctx context.Context, id string) error {
	return s.write(ctx, entityPayment, "delete", func(l *ledger.Ledger) error {
		return l.Payments().Delete(id)
	})
}
