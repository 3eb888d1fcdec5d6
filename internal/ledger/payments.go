package ledger

import (
	"slices"

	"github.com/mmynk/consorcio/internal/models"
)

// PaymentLedger owns payment records and validates debtor and creditor references.
// A payment whose debtor equals its creditor is allowed.
type PaymentLedger struct {
	snap         *models.Snapshot
	participants ParticipantStore
}

// List returns all payments in insertion order.
func (l PaymentLedger) List() []models.Payment {
	return slices.Clone(l.snap.Payments)
}

// Get returns the payment with the given ID.
func (l PaymentLedger) Get(id string) (models.Payment, error) {
	i := l.index(id)
	if i < 0 {
		return models.Payment{}, NotFound("payment %s not found", id)
	}
	return l.snap.Payments[i], nil
}

// Create stores data under id.
func (l PaymentLedger) Create(id string, data models.Payment) (models.Payment, error) {
	data.ID = id
	if err := validateID("payment", id); err != nil {
		return models.Payment{}, err
	}
	if l.index(id) >= 0 {
		return models.Payment{}, Conflict("payment %s already exists", id)
	}
	if err := l.check(data); err != nil {
		return models.Payment{}, err
	}
	l.snap.Payments = append(l.snap.Payments, data)
	return data, nil
}

// Update replaces the payment stored under id with record.
func (l PaymentLedger) Update(id string, record models.Payment) (models.Payment, error) {
	i := l.index(id)
	if i < 0 {
		return models.Payment{}, NotFound("payment %s not found", id)
	}
	if record.ID != id && l.index(record.ID) >= 0 {
		return models.Payment{}, Conflict("payment %s already exists", record.ID)
	}
	if err := l.check(record); err != nil {
		return models.Payment{}, err
	}
	l.snap.Payments[i] = record
	return record, nil
}

// Delete removes the payment unconditionally.
func (l PaymentLedger) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return NotFound("payment %s not found", id)
	}
	l.snap.Payments = slices.Delete(l.snap.Payments, i, i+1)
	return nil
}

// ByParticipant returns the payments where the participant is debtor or creditor.
func (l PaymentLedger) ByParticipant(participantID string) []models.Payment {
	out := []models.Payment{}
	for _, p := range l.snap.Payments {
		if p.Involves(participantID) {
			out = append(out, p)
		}
	}
	return out
}

func (l PaymentLedger) check(p models.Payment) error {
	if err := validatePaymentFields(p); err != nil {
		return err
	}
	if !l.participants.Exists(p.DebtorID) {
		return Validation("debtor %s is not a known participant", p.DebtorID)
	}
	if !l.participants.Exists(p.CreditorID) {
		return Validation("creditor %s is not a known participant", p.CreditorID)
	}
	return nil
}

func (l PaymentLedger) index(id string) int {
	return slices.IndexFunc(l.snap.Payments, func(p models.Payment) bool {
		return p.ID == id
	})
}
