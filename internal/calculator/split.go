package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExpenseShares computes how much each split member owes for an expense.
// The amount is divided equally: share = amount / len(splitAmong).
func ExpenseShares(amount decimal.Decimal, splitAmong []string) (map[string]decimal.Decimal, error) {
	if len(splitAmong) == 0 {
		return nil, fmt.Errorf("must split among at least one participant")
	}

	share := amount.Div(decimal.NewFromInt(int64(len(splitAmong))))
	shares := make(map[string]decimal.Decimal, len(splitAmong))
	for _, id := range splitAmong {
		shares[id] = shares[id].Add(share)
	}
	return shares, nil
}
