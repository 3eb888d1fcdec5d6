package ledger

import (
	"slices"

	"github.com/mmynk/consorcio/internal/models"
)

// ParticipantStore owns participant identity and existence checks.
type ParticipantStore struct {
	snap *models.Snapshot
}

// List returns all participants in insertion order.
func (s ParticipantStore) List() []models.Participant {
	return slices.Clone(s.snap.Participants)
}

// Get returns the participant with the given ID.
func (s ParticipantStore) Get(id string) (models.Participant, error) {
	i := s.index(id)
	if i < 0 {
		return models.Participant{}, NotFound("participant %s not found", id)
	}
	return s.snap.Participants[i], nil
}

// Exists reports whether a participant with the given ID exists.
func (s ParticipantStore) Exists(id string) bool {
	return s.index(id) >= 0
}

// Create stores data under id and appends it after the existing participants.
func (s ParticipantStore) Create(id string, data models.Participant) (models.Participant, error) {
	data.ID = id
	if err := validateParticipantFields(data); err != nil {
		return models.Participant{}, err
	}
	if s.Exists(id) {
		return models.Participant{}, Conflict("participant %s already exists", id)
	}
	s.snap.Participants = append(s.snap.Participants, data)
	return data, nil
}

// Update replaces the participant stored under id with record, keeping its
// position. record.ID may differ from id as long as it does not collide with
// another participant and no expense or payment still references id.
func (s ParticipantStore) Update(id string, record models.Participant) (models.Participant, error) {
	i := s.index(id)
	if i < 0 {
		return models.Participant{}, NotFound("participant %s not found", id)
	}
	if err := validateParticipantFields(record); err != nil {
		return models.Participant{}, err
	}
	if record.ID != id {
		if s.Exists(record.ID) {
			return models.Participant{}, Conflict("participant %s already exists", record.ID)
		}
		if err := s.checkUnreferenced(id); err != nil {
			return models.Participant{}, err
		}
	}
	s.snap.Participants[i] = record
	return record, nil
}

// Delete removes the participant. It fails with a conflict while any expense
// or payment still references the participant.
func (s ParticipantStore) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return NotFound("participant %s not found", id)
	}
	if err := s.checkUnreferenced(id); err != nil {
		return err
	}
	s.snap.Participants = slices.Delete(s.snap.Participants, i, i+1)
	return nil
}

// checkUnreferenced fails with a conflict if any expense or payment names id.
func (s ParticipantStore) checkUnreferenced(id string) error {
	for _, e := range s.snap.Expenses {
		if e.Involves(id) {
			return Conflict("participant %s has associated expenses", id)
		}
	}
	for _, p := range s.snap.Payments {
		if p.Involves(id) {
			return Conflict("participant %s has associated payments", id)
		}
	}
	return nil
}

func (s ParticipantStore) index(id string) int {
	return slices.IndexFunc(s.snap.Participants, func(p models.Participant) bool {
		return p.ID == id
	})
}
