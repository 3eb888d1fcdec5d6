package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/calculator"
	"github.com/mmynk/consorcio/internal/ledger"
)

const entityBalance = "balance"

// ParticipantBalance is the net position of one participant.
type ParticipantBalance struct {
	ParticipantID string          `json:"participantId"`
	Balance       decimal.Decimal `json:"balance"`
}

// Balances returns the net position of every participant in insertion order.
func (s *LedgerService) Balances(ctx context.Context) ([]calculator.MemberBalance, error) {
	var out []calculator.MemberBalance
	err := s.read(ctx, entityBalance, "list", func(l *ledger.Ledger) error {
		snap := l.Snapshot()
		out = calculator.Balances(snap.Participants, snap.Expenses, snap.Payments)
		return nil
	})
	return out, err
}

// ParticipantBalance returns the net position of one participant.
func (s *LedgerService) ParticipantBalance(ctx context.Context, id string) (ParticipantBalance, error) {
	var out ParticipantBalance
	err := s.read(ctx, entityBalance, "get", func(l *ledger.Ledger) error {
		if _, err := l.Participants().Get(id); err != nil {
			return err
		}
		snap := l.Snapshot()
		out = ParticipantBalance{
			ParticipantID: id,
			Balance:       calculator.Balance(id, snap.Expenses, snap.Payments),
		}
		return nil
	})
	return out, err
}

// Debts returns who owes whom, pair by pair.
func (s *LedgerService) Debts(ctx context.Context) ([]calculator.DebtEdge, error) {
	var out []calculator.DebtEdge
	err := s.read(ctx, entityBalance, "debts", func(l *ledger.Ledger) error {
		snap := l.Snapshot()
		out = calculator.PairwiseDebts(snap.Expenses, snap.Payments)
		return nil
	})
	return out, err
}

// Summary returns expense totals by category and by payer.
func (s *LedgerService) Summary(ctx context.Context) (calculator.Summary, error) {
	var out calculator.Summary
	err := s.read(ctx, entityBalance, "summary", func(l *ledger.Ledger) error {
		snap := l.Snapshot()
		out = calculator.Summarize(snap.Participants, snap.Expenses)
		return nil
	})
	return out, err
}
