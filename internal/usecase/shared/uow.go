package shared

import (
	"context"
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/internal/domain/lane"
	"lanebook/internal/domain/session"
)

// UnitOfWork scopes repository calls to one storage transaction. Reservation
// commands run under WithinSerializable so the capacity check and the insert
// observe the same snapshot; a losing writer is retried or rejected by the
// store, never both committed.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes transaction-bound repositories.
type Tx interface {
	Lanes() LaneRepository
	Sessions() SessionRepository
	Reservations() ReservationRepository
}

type LaneRepository interface {
	FindByID(ctx context.Context, id int32) (*lane.Lane, error)
	ExistingIDs(ctx context.Context) (map[int32]struct{}, error)
	InsertBatch(ctx context.Context, lanes []*lane.Lane) error
}

type SessionRepository interface {
	FindByID(ctx context.Context, id int64) (*session.Session, error)
	Insert(ctx context.Context, s *session.Session) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ReservationRepository interface {
	Insert(ctx context.Context, b *booking.Booking) (int64, error)
	HasLaneBooking(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error)
	CountLaneBookings(ctx context.Context, laneID int32, slotStart time.Time) (int32, error)
	HasSessionBooking(ctx context.Context, userID, sessionID int64) (bool, error)
	CountSessionBookings(ctx context.Context, sessionID int64) (int32, error)
	DeleteByIDForUser(ctx context.Context, id, userID int64) (bool, error)
	DeleteLaneBookingForUser(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error)
	DeleteSessionBookingForUser(ctx context.Context, userID, sessionID int64) (bool, error)
	DeleteBySession(ctx context.Context, sessionID int64) (int64, error)
}
