package commands

import (
	"context"
	"time"

	"lanebook/internal/domain/session"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/shared"
)

type CreateSessionInput struct {
	Title          string
	Start          time.Time
	End            time.Time
	AvailableSlots int32
}

// SessionCommands manages the trainer-defined session lifecycle. Who may
// call these (trainer, administrator) is decided at the transport layer; the
// commands only guard the data invariants.
type SessionCommands interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*session.Session, error)
	DeleteSession(ctx context.Context, sessionID int64) error
}

type sessionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSessionCommands(uow shared.UnitOfWork) SessionCommands {
	return &sessionCommandsImpl{uow: uow}
}

func (c *sessionCommandsImpl) CreateSession(ctx context.Context, input CreateSessionInput) (*session.Session, error) {
	pending, err := session.NewSession(input.Title, input.Start, input.End, input.AvailableSlots)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSession)
	}

	var created *session.Session
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Sessions().Insert(ctx, pending)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		created = session.ReconstructSession(id, pending.Title(), pending.Start(), pending.End(), pending.AvailableSlots())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteSession removes the session's reservations and the session itself in
// one transaction, so a crash cannot leave reservations pointing at a
// missing session.
func (c *sessionCommandsImpl) DeleteSession(ctx context.Context, sessionID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reservations().DeleteBySession(ctx, sessionID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		removed, err := tx.Sessions().Delete(ctx, sessionID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !removed {
			return ErrSessionNotFound
		}
		return nil
	})
}
