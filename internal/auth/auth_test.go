package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/consorcio/internal/models"
)

// memAccounts is an in-memory AccountStorage.
type memAccounts struct {
	accounts []*models.Account
}

func (m *memAccounts) CreateAccount(_ context.Context, a *models.Account) error {
	a.ID = "acc-" + a.Email
	m.accounts = append(m.accounts, a)
	return nil
}

func (m *memAccounts) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func newAuthenticator() (*PasswordAuthenticator, *memAccounts) {
	store := &memAccounts{}
	return NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost), store
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("register then authenticate", func(t *testing.T) {
		a, _ := newAuthenticator()

		account, err := a.Register(ctx, "1", " Maria@Email.com ", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "maria@email.com", account.Email)
		assert.Equal(t, "1", account.ParticipantID)
		assert.True(t, account.Active)
		assert.NotEqual(t, "correct-horse", account.PasswordHash)

		got, err := a.Authenticate(ctx, "MARIA@email.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		a, _ := newAuthenticator()
		_, err := a.Register(ctx, "1", "a@b.com", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		a, _ := newAuthenticator()
		_, err := a.Register(ctx, "1", "a@b.com", "password1")
		require.NoError(t, err)
		_, err = a.Register(ctx, "2", "a@b.com", "password2")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		a, _ := newAuthenticator()
		_, err := a.Register(ctx, "1", "a@b.com", "password1")
		require.NoError(t, err)

		_, err = a.Authenticate(ctx, "a@b.com", "password2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = a.Authenticate(ctx, "x@b.com", "password1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account cannot log in", func(t *testing.T) {
		a, store := newAuthenticator()
		_, err := a.Register(ctx, "1", "a@b.com", "password1")
		require.NoError(t, err)
		store.accounts[0].Active = false

		_, err = a.Authenticate(ctx, "a@b.com", "password1")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}

func TestJWTManager(t *testing.T) {
	account := &models.Account{ID: "acc-1", ParticipantID: "1", Email: "maria@email.com"}

	t.Run("generate then validate", func(t *testing.T) {
		m := NewJWTManager("secret", time.Hour)
		token, err := m.Generate(account)
		require.NoError(t, err)

		claims, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "acc-1", claims.AccountID)
		assert.Equal(t, "1", claims.ParticipantID)
		assert.Equal(t, "maria@email.com", claims.Email)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := NewJWTManager("secret", time.Hour).Generate(account)
		require.NoError(t, err)

		_, err = NewJWTManager("other", time.Hour).Validate(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		m := NewJWTManager("secret", -time.Minute)
		token, err := m.Generate(account)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
