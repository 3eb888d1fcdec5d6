package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/models"
)

const entityAccount = "account"

// Session is returned by a successful register or login.
type Session struct {
	Token       string             `json:"token"`
	AccountID   string             `json:"accountId"`
	Participant models.Participant `json:"participant"`
}

// AuthService issues tokens for participants with login accounts.
type AuthService struct {
	ledger        *LedgerService
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
// A nil authenticator defaults to bcrypt passwords stored in the ledger snapshot.
func NewAuthService(ledgerSvc *LedgerService, authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	if authenticator == nil {
		authenticator = auth.NewPasswordAuthenticator(ledgerSvc.Accounts())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		ledger:        ledgerSvc,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a login account for an existing participant.
func (s *AuthService) Register(ctx context.Context, participantID, email, password string) (*Session, error) {
	s.logger.Info("Register request", "participant_id", participantID, "email", email)

	if strings.TrimSpace(email) == "" {
		return nil, ledger.Validation("email is required")
	}

	participant, err := s.ledger.GetParticipant(ctx, participantID)
	if err != nil {
		if ledger.IsKind(err, ledger.KindNotFound) {
			return nil, ledger.Validation("participant %s is not a known participant", participantID)
		}
		return nil, err
	}

	account, err := s.authenticator.Register(ctx, participantID, email, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	return s.session(account, participant)
}

// Login verifies the credentials and returns a session for the linked participant.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	s.logger.Info("Login request", "email", email)

	account, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return nil, err
	}

	participant, err := s.ledger.GetParticipant(ctx, account.ParticipantID)
	if err != nil {
		if ledger.IsKind(err, ledger.KindNotFound) {
			s.logger.Warn("Login failed, participant no longer exists", "email", email, "participant_id", account.ParticipantID)
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	return s.session(account, participant)
}

func (s *AuthService) session(account *models.Account, participant models.Participant) (*Session, error) {
	token, err := s.jwtManager.Generate(account)
	if err != nil {
		s.logger.Error("Failed to generate token", "account_id", account.ID, "error", err)
		return nil, err
	}
	s.logger.Info("Session issued", "account_id", account.ID, "participant_id", participant.ID)
	return &Session{
		Token:       token,
		AccountID:   account.ID,
		Participant: participant,
	}, nil
}

// Accounts exposes the snapshot's accounts as auth.AccountStorage.
func (s *LedgerService) Accounts() auth.AccountStorage {
	return accountStore{svc: s}
}

type accountStore struct {
	svc *LedgerService
}

func (a accountStore) CreateAccount(ctx context.Context, account *models.Account) error {
	return a.svc.write(ctx, entityAccount, "create", func(l *ledger.Ledger) error {
		if !l.Participants().Exists(account.ParticipantID) {
			return ledger.Validation("participant %s is not a known participant", account.ParticipantID)
		}
		snap := l.Snapshot()
		for _, existing := range snap.Accounts {
			if existing.Email == account.Email {
				return auth.ErrEmailExists
			}
			if existing.ParticipantID == account.ParticipantID {
				return ledger.Conflict("participant %s already has an account", account.ParticipantID)
			}
		}
		account.ID = a.svc.newID(account.ID)
		snap.Accounts = append(snap.Accounts, *account)
		return nil
	})
}

func (a accountStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var out *models.Account
	err := a.svc.read(ctx, entityAccount, "get", func(l *ledger.Ledger) error {
		i := slices.IndexFunc(l.Snapshot().Accounts, func(acc models.Account) bool {
			return acc.Email == email
		})
		if i >= 0 {
			acc := l.Snapshot().Accounts[i]
			out = &acc
		}
		return nil
	})
	return out, err
}

// HasAccounts reports whether any login account exists yet.
func (s *LedgerService) HasAccounts(ctx context.Context) (bool, error) {
	var has bool
	err := s.read(ctx, entityAccount, "count", func(l *ledger.Ledger) error {
		has = len(l.Snapshot().Accounts) > 0
		return nil
	})
	return has, err
}

// AccountInfo is the public view of an account.
type AccountInfo struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participantId"`
	Email         string `json:"email"`
	Active        bool   `json:"active"`
}

// SetAccountActive enables or disables the login account of a participant.
// Disabled accounts are refused at login; issued tokens stay valid until they expire.
func (s *AuthService) SetAccountActive(ctx context.Context, participantID string, active bool) (AccountInfo, error) {
	var out AccountInfo
	err := s.ledger.write(ctx, entityAccount, "set_active", func(l *ledger.Ledger) error {
		accounts := l.Snapshot().Accounts
		i := slices.IndexFunc(accounts, func(acc models.Account) bool {
			return acc.ParticipantID == participantID
		})
		if i < 0 {
			return ledger.NotFound("participant %s has no account", participantID)
		}
		accounts[i].Active = active
		out = AccountInfo{
			ID:            accounts[i].ID,
			ParticipantID: accounts[i].ParticipantID,
			Email:         accounts[i].Email,
			Active:        accounts[i].Active,
		}
		return nil
	})
	if err == nil {
		s.logger.Info("Account status changed", "participant_id", participantID, "active", active)
	}
	return out, err
}

// IsAuthError reports whether err is a credential failure rather than a fault.
func IsAuthError(err error) bool {
	return errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrAccountDisabled)
}
