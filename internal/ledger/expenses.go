package ledger

import (
	"slices"

	"github.com/mmynk/consorcio/internal/models"
)

// ExpenseLedger owns expense records and validates their participant references.
type ExpenseLedger struct {
	snap         *models.Snapshot
	participants ParticipantStore
}

// List returns all expenses in insertion order.
func (l ExpenseLedger) List() []models.Expense {
	out := make([]models.Expense, len(l.snap.Expenses))
	for i, e := range l.snap.Expenses {
		out[i] = cloneExpense(e)
	}
	return out
}

// Get returns the expense with the given ID.
func (l ExpenseLedger) Get(id string) (models.Expense, error) {
	i := l.index(id)
	if i < 0 {
		return models.Expense{}, NotFound("expense %s not found", id)
	}
	return cloneExpense(l.snap.Expenses[i]), nil
}

// Create stores data under id. The payer and every split member must be
// known participants.
func (l ExpenseLedger) Create(id string, data models.Expense) (models.Expense, error) {
	data = cloneExpense(data)
	data.ID = id
	if err := validateID("expense", id); err != nil {
		return models.Expense{}, err
	}
	if l.index(id) >= 0 {
		return models.Expense{}, Conflict("expense %s already exists", id)
	}
	if err := l.check(data); err != nil {
		return models.Expense{}, err
	}
	l.snap.Expenses = append(l.snap.Expenses, data)
	return cloneExpense(data), nil
}

// Update replaces the expense stored under id with record.
func (l ExpenseLedger) Update(id string, record models.Expense) (models.Expense, error) {
	record = cloneExpense(record)
	i := l.index(id)
	if i < 0 {
		return models.Expense{}, NotFound("expense %s not found", id)
	}
	if record.ID != id && l.index(record.ID) >= 0 {
		return models.Expense{}, Conflict("expense %s already exists", record.ID)
	}
	if err := l.check(record); err != nil {
		return models.Expense{}, err
	}
	l.snap.Expenses[i] = record
	return cloneExpense(record), nil
}

// Delete removes the expense unconditionally.
func (l ExpenseLedger) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return NotFound("expense %s not found", id)
	}
	l.snap.Expenses = slices.Delete(l.snap.Expenses, i, i+1)
	return nil
}

// ByParticipant returns the expenses the participant paid for or shares.
func (l ExpenseLedger) ByParticipant(participantID string) []models.Expense {
	out := []models.Expense{}
	for _, e := range l.snap.Expenses {
		if e.Involves(participantID) {
			out = append(out, cloneExpense(e))
		}
	}
	return out
}

func (l ExpenseLedger) check(e models.Expense) error {
	if err := validateExpenseFields(e); err != nil {
		return err
	}
	if !l.participants.Exists(e.PaidBy) {
		return Validation("payer %s is not a known participant", e.PaidBy)
	}
	for _, id := range e.SplitAmong {
		if !l.participants.Exists(id) {
			return Validation("participant %s is not a known participant", id)
		}
	}
	return nil
}

func (l ExpenseLedger) index(id string) int {
	return slices.IndexFunc(l.snap.Expenses, func(e models.Expense) bool {
		return e.ID == id
	})
}

func cloneExpense(e models.Expense) models.Expense {
	e.SplitAmong = slices.Clone(e.SplitAmong)
	return e
}
