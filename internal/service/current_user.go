package service

import (
	"context"

	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/models"
)

const entityCurrentUser = "current_user"

func (s *LedgerService) GetCurrentUser(ctx context.Context) (models.CurrentUser, error) {
	var out models.CurrentUser
	err := s.read(ctx, entityCurrentUser, "get", func(l *ledger.Ledger) (err error) {
		out, err = l.CurrentUser().Get()
		return err
	})
	return out, err
}

func (s *LedgerService) SetCurrentUser(ctx context.Context, u models.CurrentUser) (models.CurrentUser, error) {
	var out models.CurrentUser
	err := s.write(ctx, entityCurrentUser, "set", func(l *ledger.Ledger) (err error) {
		out, err = l.CurrentUser().Set(u)
		return err
	})
	return out, err
}

// SetCurrentUserFromParticipant points the current user at a stored participant.
func (s *LedgerService) SetCurrentUserFromParticipant(ctx context.Context, participantID string) (models.CurrentUser, error) {
	var out models.CurrentUser
	err := s.write(ctx, entityCurrentUser, "set_from_participant", func(l *ledger.Ledger) (err error) {
		out, err = l.CurrentUser().SetFromParticipant(participantID)
		return err
	})
	return out, err
}

// ClearCurrentUser removes the pointer. Clearing an unset pointer succeeds.
func (s *LedgerService) ClearCurrentUser(ctx context.Context) error {
	return s.write(ctx, entityCurrentUser, "clear", func(l *ledger.Ledger) error {
		l.CurrentUser().Clear()
		return nil
	})
}
