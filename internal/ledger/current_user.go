package ledger

import "github.com/mmynk/consorcio/internal/models"

// CurrentUserPointer holds the single optional acting-user reference.
type CurrentUserPointer struct {
	snap         *models.Snapshot
	participants ParticipantStore
}

// Get returns the current user.
func (p CurrentUserPointer) Get() (models.CurrentUser, error) {
	if p.snap.CurrentUser == nil {
		return models.CurrentUser{}, NotFound("no current user is set")
	}
	return *p.snap.CurrentUser, nil
}

// Set replaces the pointer with data. data.ID must name a known participant.
func (p CurrentUserPointer) Set(data models.CurrentUser) (models.CurrentUser, error) {
	if !p.participants.Exists(data.ID) {
		return models.CurrentUser{}, Validation("current user %s must be a known participant", data.ID)
	}
	p.snap.CurrentUser = &data
	return data, nil
}

// SetFromParticipant points the current user at a stored participant,
// copying its name, email and unit.
func (p CurrentUserPointer) SetFromParticipant(participantID string) (models.CurrentUser, error) {
	participant, err := p.participants.Get(participantID)
	if err != nil {
		return models.CurrentUser{}, err
	}
	cu := models.CurrentUserFrom(participant)
	p.snap.CurrentUser = &cu
	return cu, nil
}

// Clear unsets the pointer.
func (p CurrentUserPointer) Clear() {
	p.snap.CurrentUser = nil
}
