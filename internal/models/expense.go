package models

import "github.com/shopspring/decimal"

// Expense represents a cost paid by one participant and shared equally
// among the participants listed in SplitAmong.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id"`

	// Description is a human-readable label (e.g., "Elevator repair").
	Description string `json:"description"`

	// Amount is the total cost. Never negative.
	Amount decimal.Decimal `json:"amount"`

	// Date is the calendar date of the expense in YYYY-MM-DD form.
	Date string `json:"date"`

	// Category groups expenses for summaries (e.g., "maintenance").
	Category string `json:"category"`

	// Receipt is the stored filename of an uploaded receipt, if any.
	Receipt string `json:"receipt,omitempty"`

	// PaidBy is the participant ID of whoever paid the full amount.
	PaidBy string `json:"paidBy"`

	// SplitAmong lists the participant IDs that share the cost.
	// Each member owes Amount / len(SplitAmong) to PaidBy.
	SplitAmong []string `json:"splitAmong"`

	// CreatedBy is the participant ID that recorded the expense.
	CreatedBy string `json:"createdBy"`
}

// Involves reports whether the participant paid for or shares the expense.
func (e Expense) Involves(participantID string) bool {
	if e.PaidBy == participantID {
		return true
	}
	for _, id := range e.SplitAmong {
		if id == participantID {
			return true
		}
	}
	return false
}
