package models

import "slices"

// Snapshot is the complete persisted state. The storage layer reads and
// rewrites it as a whole.
type Snapshot struct {
	Participants []Participant `json:"participants"`
	Expenses     []Expense     `json:"expenses"`
	Payments     []Payment     `json:"payments"`
	Accounts     []Account     `json:"accounts"`
	CurrentUser  *CurrentUser  `json:"currentUser"`
}

// NewSnapshot returns an empty snapshot with non-nil collections.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Participants: []Participant{},
		Expenses:     []Expense{},
		Payments:     []Payment{},
		Accounts:     []Account{},
	}
}

// Clone returns a deep copy so callers can mutate it without touching s.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Participants: slices.Clone(s.Participants),
		Expenses:     make([]Expense, len(s.Expenses)),
		Payments:     slices.Clone(s.Payments),
		Accounts:     slices.Clone(s.Accounts),
	}
	for i, e := range s.Expenses {
		e.SplitAmong = slices.Clone(e.SplitAmong)
		out.Expenses[i] = e
	}
	out.Normalize()
	if s.CurrentUser != nil {
		cu := *s.CurrentUser
		out.CurrentUser = &cu
	}
	return out
}

// Normalize replaces nil collections with empty ones, so a decoded document
// with missing keys behaves like an empty one.
func (s *Snapshot) Normalize() {
	if s.Participants == nil {
		s.Participants = []Participant{}
	}
	if s.Expenses == nil {
		s.Expenses = []Expense{}
	}
	if s.Payments == nil {
		s.Payments = []Payment{}
	}
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	for i := range s.Expenses {
		if s.Expenses[i].SplitAmong == nil {
			s.Expenses[i].SplitAmong = []string{}
		}
	}
}
