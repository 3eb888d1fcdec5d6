package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
)

// Summary aggregates expense totals for reporting.
type Summary struct {
	TotalExpenses decimal.Decimal            `json:"totalExpenses"`
	ExpenseCount  int                        `json:"expenseCount"`
	ByCategory    map[string]decimal.Decimal `json:"byCategory"`
	ByPayer       map[string]decimal.Decimal `json:"byPayer"`
	// AveragePerParticipant is the total divided by the number of participants.
	AveragePerParticipant decimal.Decimal `json:"averagePerParticipant"`
}

// Summarize totals the expenses overall, per category and per payer.
func Summarize(participants []models.Participant, expenses []models.Expense) Summary {
	s := Summary{
		TotalExpenses:         decimal.Zero,
		ByCategory:            make(map[string]decimal.Decimal),
		ByPayer:               make(map[string]decimal.Decimal),
		AveragePerParticipant: decimal.Zero,
	}
	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
		s.ExpenseCount++
		s.ByCategory[e.Category] = s.ByCategory[e.Category].Add(e.Amount)
		s.ByPayer[e.PaidBy] = s.ByPayer[e.PaidBy].Add(e.Amount)
	}
	if len(participants) > 0 {
		s.AveragePerParticipant = s.TotalExpenses.Div(decimal.NewFromInt(int64(len(participants))))
	}
	return s
}
