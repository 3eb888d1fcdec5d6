package models

import "time"

// CurrentUser mirrors the participant the API treats as the acting user.
// At most one exists at a time.
type CurrentUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Unit  string `json:"unit"`
}

// CurrentUserFrom builds the pointer value from a stored participant.
func CurrentUserFrom(p Participant) CurrentUser {
	return CurrentUser{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Unit:  p.Unit,
	}
}

// Account holds the login credentials of a participant.
type Account struct {
	// ID is the unique identifier for the account.
	ID string `json:"id"`

	// ParticipantID links the account to the participant it logs in as.
	ParticipantID string `json:"participantId"`

	// Email is the login name. Unique across accounts.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"passwordHash"`

	// Active accounts may log in; disabled ones are rejected.
	Active bool `json:"active"`

	// CreatedAt is the Unix timestamp when the account was registered.
	CreatedAt int64 `json:"createdAt"`
}

// NewAccount creates an active account for a participant.
func NewAccount(id, participantID, email, passwordHash string) *Account {
	return &Account{
		ID:            id,
		ParticipantID: participantID,
		Email:         email,
		PasswordHash:  passwordHash,
		Active:        true,
		CreatedAt:     time.Now().Unix(),
	}
}
