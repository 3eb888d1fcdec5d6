package models

import "github.com/shopspring/decimal"

// Payment represents a direct transfer between participants to settle debts.
type Payment struct {
	// ID is the unique identifier for the payment.
	ID string `json:"id"`

	Description string `json:"description"`

	// Amount is the transferred amount. Never negative.
	Amount decimal.Decimal `json:"amount"`

	// Date is the calendar date of the transfer in YYYY-MM-DD form.
	Date string `json:"date"`

	// DebtorID is the participant who paid (settling up).
	DebtorID string `json:"debtorId"`

	// CreditorID is the participant who received the money.
	CreditorID string `json:"creditorId"`

	// Receipt is the stored filename of the transfer proof.
	Receipt string `json:"receipt"`

	// CreatedBy is the participant ID that recorded the payment.
	CreatedBy string `json:"createdBy"`
}

// Involves reports whether the participant is the debtor or the creditor.
func (p Payment) Involves(participantID string) bool {
	return p.DebtorID == participantID || p.CreditorID == participantID
}
