// Package ledger implements the invariant-preserving operations over
// participants, expenses, payments and the current-user pointer.
//
// Everything here works on an in-memory *models.Snapshot and performs no I/O.
// Callers load a snapshot, run one operation through a Ledger, and save the
// snapshot back only if the operation succeeded.
package ledger

import "github.com/mmynk/consorcio/internal/models"

// Ledger binds the component stores to one snapshot.
type Ledger struct {
	snap *models.Snapshot
}

// New returns a Ledger operating on snap. Mutations are applied to snap in place.
func New(snap *models.Snapshot) *Ledger {
	snap.Normalize()
	return &Ledger{snap: snap}
}

// Snapshot returns the snapshot the ledger operates on.
func (l *Ledger) Snapshot() *models.Snapshot {
	return l.snap
}

// Participants returns the participant store.
func (l *Ledger) Participants() ParticipantStore {
	return ParticipantStore{snap: l.snap}
}

// Expenses returns the expense ledger.
func (l *Ledger) Expenses() ExpenseLedger {
	return ExpenseLedger{snap: l.snap, participants: l.Participants()}
}

// Payments returns the payment ledger.
func (l *Ledger) Payments() PaymentLedger {
	return PaymentLedger{snap: l.snap, participants: l.Participants()}
}

// CurrentUser returns the current-user pointer.
func (l *Ledger) CurrentUser() CurrentUserPointer {
	return CurrentUserPointer{snap: l.snap, participants: l.Participants()}
}
