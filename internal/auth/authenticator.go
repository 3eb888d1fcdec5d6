package auth

import (
	"context"

	"github.com/mmynk/consorcio/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a login account for an existing participant.
	// The credential format depends on the implementation.
	Register(ctx context.Context, participantID, email, credential string) (*models.Account, error)

	// Authenticate verifies the credentials and returns the account if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.Account, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
