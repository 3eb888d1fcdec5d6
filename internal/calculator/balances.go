// Package calculator derives balances from expenses and payments.
// Nothing is cached; every result is recomputed from the records passed in.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
)

// MemberBalance represents the balance information for one participant.
type MemberBalance struct {
	ParticipantID string          `json:"participantId"`
	Name          string          `json:"name"`
	NetBalance    decimal.Decimal `json:"netBalance"` // Positive = is owed money, Negative = owes money
	TotalPaid     decimal.Decimal `json:"totalPaid"`  // Expenses paid plus payments sent
	TotalOwed     decimal.Decimal `json:"totalOwed"`  // Expense shares plus payments received
}

// DebtEdge represents what one participant owes another.
type DebtEdge struct {
	From   string          `json:"from"` // Participant who owes
	To     string          `json:"to"`   // Participant who is owed
	Amount decimal.Decimal `json:"amount"`
}

// Balance computes the net position of one participant.
//
// Algorithm:
//   - For each expense: the payer contributed +amount, each split member owes amount/n
//   - For each payment: the debtor's balance improves by amount, the creditor's decreases
//   - net = total_paid - total_owed
//
// Expenses with an empty split are skipped.
func Balance(participantID string, expenses []models.Expense, payments []models.Payment) decimal.Decimal {
	b := accumulate([]string{participantID}, expenses, payments)[participantID]
	return b.TotalPaid.Sub(b.TotalOwed)
}

// Balances computes one MemberBalance per participant, in participant order.
func Balances(participants []models.Participant, expenses []models.Expense, payments []models.Payment) []MemberBalance {
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}
	acc := accumulate(ids, expenses, payments)

	out := make([]MemberBalance, 0, len(participants))
	for _, p := range participants {
		b := acc[p.ID]
		out = append(out, MemberBalance{
			ParticipantID: p.ID,
			Name:          p.Name,
			TotalPaid:     b.TotalPaid,
			TotalOwed:     b.TotalOwed,
			NetBalance:    b.TotalPaid.Sub(b.TotalOwed),
		})
	}
	return out
}

// accumulate sums paid/owed totals for the given participants only.
func accumulate(ids []string, expenses []models.Expense, payments []models.Payment) map[string]*MemberBalance {
	balances := make(map[string]*MemberBalance, len(ids))
	for _, id := range ids {
		balances[id] = &MemberBalance{ParticipantID: id}
	}

	for _, e := range expenses {
		shares, err := ExpenseShares(e.Amount, e.SplitAmong)
		if err != nil {
			continue
		}
		if b, ok := balances[e.PaidBy]; ok {
			b.TotalPaid = b.TotalPaid.Add(e.Amount)
		}
		for member, share := range shares {
			if b, ok := balances[member]; ok {
				b.TotalOwed = b.TotalOwed.Add(share)
			}
		}
	}

	for _, p := range payments {
		if b, ok := balances[p.DebtorID]; ok {
			b.TotalPaid = b.TotalPaid.Add(p.Amount)
		}
		if b, ok := balances[p.CreditorID]; ok {
			b.TotalOwed = b.TotalOwed.Add(p.Amount)
		}
	}
	return balances
}

// PairwiseDebts lists the debts implied by each expense, aggregated per
// ordered pair. Every split member owes amount/n to the payer (the payer owes
// nothing to themself), and a payment reduces what its debtor owes its
// creditor. Debts are not netted across third parties; a pair whose payments
// exceed the debt shows the excess as a debt in the opposite direction.
//
// Edges are returned in first-seen order and pairs that settle to zero are dropped.
func PairwiseDebts(expenses []models.Expense, payments []models.Payment) []DebtEdge {
	type pair struct{ from, to string }
	debts := make(map[pair]decimal.Decimal)
	var order []pair
	add := func(from, to string, amount decimal.Decimal) {
		// keep a single canonical edge per unordered pair
		k := pair{from, to}
		if _, ok := debts[k]; !ok {
			rev := pair{to, from}
			if _, ok := debts[rev]; ok {
				debts[rev] = debts[rev].Sub(amount)
				return
			}
			order = append(order, k)
		}
		debts[k] = debts[k].Add(amount)
	}

	for _, e := range expenses {
		shares, err := ExpenseShares(e.Amount, e.SplitAmong)
		if err != nil {
			continue
		}
		// iterate the split slice so edge order is deterministic
		for _, member := range e.SplitAmong {
			if member == e.PaidBy {
				continue
			}
			add(member, e.PaidBy, shares[member])
		}
	}
	for _, p := range payments {
		if p.DebtorID == p.CreditorID {
			continue
		}
		add(p.DebtorID, p.CreditorID, p.Amount.Neg())
	}

	var edges []DebtEdge
	for _, k := range order {
		amount := debts[k]
		switch amount.Sign() {
		case 1:
			edges = append(edges, DebtEdge{From: k.from, To: k.to, Amount: amount})
		case -1:
			edges = append(edges, DebtEdge{From: k.to, To: k.from, Amount: amount.Neg()})
		}
	}
	return edges
}
