package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
)

// DateLayout is the calendar date format used by expenses and payments.
const DateLayout = "2006-01-02"

func validateID(entity, id string) error {
	if strings.TrimSpace(id) == "" {
		return Validation("%s id is required", entity)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return Validation("amount must not be negative, got %s", amount)
	}
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return Validation("date is required")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Validation("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

func validateParticipantFields(p models.Participant) error {
	if err := validateID("participant", p.ID); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return Validation("participant name is required")
	}
	return nil
}

func validateExpenseFields(e models.Expense) error {
	if err := validateID("expense", e.ID); err != nil {
		return err
	}
	if strings.TrimSpace(e.Description) == "" {
		return Validation("expense description is required")
	}
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	if err := validateDate(e.Date); err != nil {
		return err
	}
	if len(e.SplitAmong) == 0 {
		return Validation("expense must be split among at least one participant")
	}
	seen := make(map[string]bool, len(e.SplitAmong))
	for _, id := range e.SplitAmong {
		if seen[id] {
			return Validation("participant %s appears more than once in the split", id)
		}
		seen[id] = true
	}
	return nil
}

func validatePaymentFields(p models.Payment) error {
	if err := validateID("payment", p.ID); err != nil {
		return err
	}
	if err := validateAmount(p.Amount); err != nil {
		return err
	}
	return validateDate(p.Date)
}
