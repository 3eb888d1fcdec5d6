package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/ledger"
)

func newTestAuthService(t *testing.T) (*AuthService, *LedgerService) {
	t.Helper()
	svc := newTestService(t)
	authenticator := auth.NewPasswordAuthenticator(svc.Accounts()).WithCost(bcrypt.MinCost)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(svc, authenticator, jwtManager, nil), svc
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	authSvc, svc := newTestAuthService(t)
	seedParticipants(t, svc, "1")

	registered, err := authSvc.Register(ctx, "1", "owner1@example.com", "secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "1", registered.Participant.ID)

	session, err := authSvc.Login(ctx, "owner1@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, registered.AccountID, session.AccountID)

	claims, err := authSvc.jwtManager.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.ParticipantID)
}

func TestRegisterFailures(t *testing.T) {
	ctx := context.Background()
	authSvc, svc := newTestAuthService(t)
	seedParticipants(t, svc, "1")

	_, err := authSvc.Register(ctx, "ghost", "ghost@example.com", "secret-password")
	assert.True(t, ledger.IsKind(err, ledger.KindValidation))

	_, err = authSvc.Register(ctx, "1", "", "secret-password")
	assert.True(t, ledger.IsKind(err, ledger.KindValidation))

	_, err = authSvc.Register(ctx, "1", "owner1@example.com", "short")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)

	_, err = authSvc.Register(ctx, "1", "owner1@example.com", "secret-password")
	require.NoError(t, err)
	_, err = authSvc.Register(ctx, "1", "OWNER1@example.com", "secret-password")
	assert.ErrorIs(t, err, auth.ErrEmailExists)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	authSvc, svc := newTestAuthService(t)
	seedParticipants(t, svc, "1", "2")

	_, err := authSvc.Register(ctx, "2", "owner2@example.com", "secret-password")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := authSvc.Login(ctx, "owner2@example.com", "not-the-password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.True(t, IsAuthError(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authSvc.Login(ctx, "nobody@example.com", "secret-password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("participant removed after registration", func(t *testing.T) {
		require.NoError(t, svc.DeleteParticipant(ctx, "2"))
		_, err := authSvc.Login(ctx, "owner2@example.com", "secret-password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestOneAccountPerParticipant(t *testing.T) {
	ctx := context.Background()
	authSvc, svc := newTestAuthService(t)
	seedParticipants(t, svc, "1")

	has, err := svc.HasAccounts(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = authSvc.Register(ctx, "1", "owner1@example.com", "secret-password")
	require.NoError(t, err)

	_, err = authSvc.Register(ctx, "1", "someone-else@example.com", "secret-password")
	assert.True(t, ledger.IsKind(err, ledger.KindConflict), "got %v", err)

	has, err = svc.HasAccounts(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestSetAccountActive(t *testing.T) {
	ctx := context.Background()
	authSvc, svc := newTestAuthService(t)
	seedParticipants(t, svc, "1", "2")

	_, err := authSvc.Register(ctx, "1", "owner1@example.com", "secret-password")
	require.NoError(t, err)

	info, err := authSvc.SetAccountActive(ctx, "1", false)
	require.NoError(t, err)
	assert.False(t, info.Active)
	assert.Equal(t, "owner1@example.com", info.Email)

	_, err = authSvc.Login(ctx, "owner1@example.com", "secret-password")
	assert.ErrorIs(t, err, auth.ErrAccountDisabled)

	_, err = authSvc.SetAccountActive(ctx, "1", true)
	require.NoError(t, err)
	_, err = authSvc.Login(ctx, "owner1@example.com", "secret-password")
	require.NoError(t, err)

	_, err = authSvc.SetAccountActive(ctx, "2", false)
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))
}
