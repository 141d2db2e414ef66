package repository

import (
	"context"
	"errors"
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/internal/infra"
	"lanebook/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

// Insert persists either variant of a booking. The two partial unique
// indexes turn a duplicate race into a DUPLICATE_KEY error here instead of a
// second committed row.
func (r *ReservationRepository) Insert(ctx context.Context, b *booking.Booking) (int64, error) {
	var (
		id  int64
		err error
	)
	switch target := b.Target().(type) {
	case booking.LaneSlot:
		err = r.db.QueryRow(ctx,
			`INSERT INTO reservations (user_id, lane_id, slot_start)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			b.UserID(), target.LaneID, target.SlotStart,
		).Scan(&id)
	case booking.SessionEntry:
		err = r.db.QueryRow(ctx,
			`INSERT INTO reservations (user_id, session_id)
			 VALUES ($1, $2)
			 RETURNING id`,
			b.UserID(), target.SessionID,
		).Scan(&id)
	default:
		return 0, infra.WrapRepoErr("unknown booking target", nil)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("reservation references missing row", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) HasLaneBooking(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM reservations
		     WHERE user_id = $1 AND lane_id = $2 AND slot_start = $3
		 )`,
		userID, laneID, slotStart,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check lane booking", err)
	}
	return exists, nil
}

func (r *ReservationRepository) CountLaneBookings(ctx context.Context, laneID int32, slotStart time.Time) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE lane_id = $1 AND slot_start = $2`,
		laneID, slotStart,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count lane bookings", err)
	}
	return count, nil
}

func (r *ReservationRepository) HasSessionBooking(ctx context.Context, userID, sessionID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM reservations
		     WHERE user_id = $1 AND session_id = $2
		 )`,
		userID, sessionID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check session booking", err)
	}
	return exists, nil
}

func (r *ReservationRepository) CountSessionBookings(ctx context.Context, sessionID int64) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE session_id = $1`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count session bookings", err)
	}
	return count, nil
}

// DeleteByIDForUser removes a reservation only when it belongs to the given
// user; a foreign id is indistinguishable from a missing one.
func (r *ReservationRepository) DeleteByIDForUser(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM reservations WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReservationRepository) DeleteLaneBookingForUser(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM reservations WHERE user_id = $1 AND lane_id = $2 AND slot_start = $3`,
		userID, laneID, slotStart,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete lane booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReservationRepository) DeleteSessionBookingForUser(ctx context.Context, userID, sessionID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM reservations WHERE user_id = $1 AND session_id = $2`,
		userID, sessionID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete session booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReservationRepository) DeleteBySession(ctx context.Context, sessionID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM reservations WHERE session_id = $1`, sessionID,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete session reservations", err)
	}
	return tag.RowsAffected(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}
