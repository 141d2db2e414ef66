package repository

import (
	"context"
	"errors"
	"time"

	"lanebook/internal/domain/session"
	"lanebook/internal/infra"
	"lanebook/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type SessionRepository struct {
	db db.DBTX
}

func NewSessionRepository(dbtx db.DBTX) *SessionRepository {
	return &SessionRepository{db: dbtx}
}

func (r *SessionRepository) FindByID(ctx context.Context, id int64) (*session.Session, error) {
	var (
		title          string
		start, end     time.Time
		availableSlots int32
	)
	err := r.db.QueryRow(ctx,
		`SELECT title, start_at, end_at, available_slots FROM sessions WHERE id = $1`, id,
	).Scan(&title, &start, &end, &availableSlots)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}
	return session.ReconstructSession(id, title, start.UTC(), end.UTC(), availableSlots), nil
}

func (r *SessionRepository) Insert(ctx context.Context, s *session.Session) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO sessions (title, start_at, end_at, available_slots)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		s.Title(), s.Start(), s.End(), s.AvailableSlots(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert session", err)
	}
	return id, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, infra.WrapRepoErr("session still referenced", err, infra.KindForeignKeyViolated)
		}
		return false, infra.WrapRepoErr("failed to delete session", err)
	}
	return tag.RowsAffected() > 0, nil
}
