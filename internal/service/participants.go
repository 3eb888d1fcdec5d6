package service

import (
	"context"

	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/models"
)

const entityParticipant = "participant"

func (s *LedgerService) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	var out []models.Participant
	err := s.read(ctx, entityParticipant, "list", func(l *ledger.Ledger) error {
		out = l.Participants().List()
		return nil
	})
	return out, err
}

func (s *LedgerService) GetParticipant(ctx context.Context, id string) (models.Participant, error) {
	var out models.Participant
	err := s.read(ctx, entityParticipant, "get", func(l *ledger.Ledger) (err error) {
		out, err = l.Participants().Get(id)
		return err
	})
	return out, err
}

// CreateParticipant stores p, generating an ID when p.ID is empty.
func (s *LedgerService) CreateParticipant(ctx context.Context, p models.Participant) (models.Participant, error) {
	var out models.Participant
	err := s.write(ctx, entityParticipant, "create", func(l *ledger.Ledger) (err error) {
		out, err = l.Participants().Create(s.newID(p.ID), p)
		return err
	})
	if err == nil {
		s.logger.Info("Participant created", "participant_id", out.ID, "name", out.Name)
	}
	return out, err
}

// UpdateParticipant replaces the participant stored under id. References from
// expenses and payments are not rewritten when the ID changes.
func (s *LedgerService) UpdateParticipant(ctx context.Context, id string, p models.Participant) (models.Participant, error) {
	var out models.Participant
	err := s.write(ctx, entityParticipant, "update", func(l *ledger.Ledger) (err error) {
		out, err = l.Participants().Update(id, p)
		return err
	})
	return out, err
}

func (s *LedgerService) DeleteParticipant(ctx context.Context, id string) error {
	err := s.write(ctx, entityParticipant, "delete", func(l *ledger.Ledger) error {
		return l.Participants().Delete(id)
	})
	if err == nil {
		s.logger.Info("Participant deleted", "participant_id", id)
	}
	return err
}

// ParticipantExpenses returns the expenses paid by or shared with the participant.
func (s *LedgerService) ParticipantExpenses(ctx context.Context, id string) ([]models.Expense, error) {
	var out []models.Expense
	err := s.read(ctx, entityParticipant, "expenses", func(l *ledger.Ledger) error {
		if _, err := l.Participants().Get(id); err != nil {
			return err
		}
		out = l.Expenses().ByParticipant(id)
		return nil
	})
	return out, err
}

// ParticipantPayments returns the payments where the participant is debtor or creditor.
func (s *LedgerService) ParticipantPayments(ctx context.Context, id string) ([]models.Payment, error) {
	var out []models.Payment
	err := s.read(ctx, entityParticipant, "payments", func(l *ledger.Ledger) error {
		if _, err := l.Participants().Get(id); err != nil {
			return err
		}
		out = l.Payments().ByParticipant(id)
		return nil
	})
	return out, err
}
