package models

// Participant represents one member of the consorcio.
type Participant struct {
	// ID is the unique identifier. It can only change through an explicit
	// update that re-validates uniqueness.
	ID string `json:"id"`

	// Name is the display name (e.g., "María González").
	Name string `json:"name"`

	Email string `json:"email"`
	Phone string `json:"phone"`

	// Unit is the apartment or unit label (e.g., "2A").
	Unit string `json:"unit"`

	// Active marks whether the participant still takes part in new expenses.
	Active bool `json:"active"`
}
