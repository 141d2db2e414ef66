package commands

import (
	"context"
	"fmt"
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/internal/domain/schedule"
	"lanebook/internal/infra"
	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/shared"
)

var (
	ErrLaneNotFound            = errs.New("lane not found")
	ErrSessionNotFound         = errs.New("session not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrAlreadyBooked           = errs.New("already booked")
	ErrFull                    = errs.New("no capacity left")
	ErrInvalidRange            = errs.New("invalid time range")
	ErrInvalidSession          = errs.New("invalid session")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SlotConflictError identifies which slot of a range reservation failed.
// It unwraps to ErrAlreadyBooked or ErrFull.
type SlotConflictError struct {
	Slot   time.Time
	reason error
}

func NewSlotConflictError(slot time.Time, reason error) *SlotConflictError {
	return &SlotConflictError{Slot: slot, reason: reason}
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v at %s", e.reason, e.Slot.Format(time.RFC3339))
}

func (e *SlotConflictError) Unwrap() error {
	return e.reason
}

// BookingCommands is the transactional reservation core. Every operation is
// one storage transaction; capacity and duplicate checks are evaluated
// against the state the transaction commits with, never against an earlier
// read.
type BookingCommands interface {
	ReserveLaneSlot(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (*booking.Booking, error)
	ReserveLaneRange(ctx context.Context, userID int64, laneID int32, date time.Time, startOffset, endOffset time.Duration) ([]*booking.Booking, error)
	ReserveSession(ctx context.Context, userID, sessionID int64) (*booking.Booking, error)
	CancelReservation(ctx context.Context, userID, reservationID int64) (bool, error)
	CancelLaneBooking(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error)
	CancelSessionBooking(ctx context.Context, userID, sessionID int64) (bool, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
	}
}

func (c *bookingCommandsImpl) ReserveLaneSlot(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (*booking.Booking, error) {
	target := booking.LaneSlot{LaneID: laneID, SlotStart: slotStart.UTC()}
	pending, err := booking.NewBooking(userID, target)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	if !schedule.InOperatingWindow(target.SlotStart, c.loc) {
		return nil, errs.Mark(errs.New("slot outside facility hours"), ErrInvalidRange)
	}

	var created *booking.Booking
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkLaneSlot(ctx, tx, userID, target); err != nil {
			return err
		}

		id, err := tx.Reservations().Insert(ctx, pending)
		if err != nil {
			return mapInsertErr(err)
		}
		created = booking.ReconstructBooking(id, userID, target, c.clock.Now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReserveLaneRange books every slot between the two day offsets or none of
// them. All slots are validated before the first insert, inside the same
// transaction, so a concurrent writer cannot take a middle slot between the
// validation pass and the insert pass.
func (c *bookingCommandsImpl) ReserveLaneRange(ctx context.Context, userID int64, laneID int32, date time.Time, startOffset, endOffset time.Duration) ([]*booking.Booking, error) {
	if err := validateRange(date, c.loc, startOffset, endOffset); err != nil {
		return nil, err
	}

	slots := schedule.SlotsInRange(date, c.loc, startOffset, endOffset)
	pending := make([]*booking.Booking, len(slots))
	for i, slot := range slots {
		b, err := booking.NewBooking(userID, booking.LaneSlot{LaneID: laneID, SlotStart: slot})
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRange)
		}
		pending[i] = b
	}

	var created []*booking.Booking
	err := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = created[:0]

		for _, slot := range slots {
			err := c.checkLaneSlot(ctx, tx, userID, booking.LaneSlot{LaneID: laneID, SlotStart: slot})
			switch {
			case err == nil:
			case errs.Is(err, ErrAlreadyBooked) || errs.Is(err, ErrFull):
				return NewSlotConflictError(slot, err)
			default:
				return err
			}
		}

		for i, b := range pending {
			id, err := tx.Reservations().Insert(ctx, b)
			if err != nil {
				if mapped := mapInsertErr(err); errs.Is(mapped, ErrAlreadyBooked) {
					return NewSlotConflictError(slots[i], mapped)
				}
				return mapInsertErr(err)
			}
			created = append(created, booking.ReconstructBooking(id, userID, b.Target(), c.clock.Now().UTC()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *bookingCommandsImpl) ReserveSession(ctx context.Context, userID, sessionID int64) (*booking.Booking, error) {
	target := booking.SessionEntry{SessionID: sessionID}
	pending, err := booking.NewBooking(userID, target)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionNotFound)
	}

	var created *booking.Booking
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		sessionEntity, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSessionNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		exists, err := tx.Reservations().HasSessionBooking(ctx, userID, sessionID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrAlreadyBooked
		}

		count, err := tx.Reservations().CountSessionBookings(ctx, sessionID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if count >= sessionEntity.AvailableSlots() {
			return ErrFull
		}

		id, err := tx.Reservations().Insert(ctx, pending)
		if err != nil {
			return mapInsertErr(err)
		}
		created = booking.ReconstructBooking(id, userID, target, c.clock.Now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CancelReservation is an idempotent, ownership-scoped delete: a reservation
// belonging to someone else behaves exactly like a missing one.
func (c *bookingCommandsImpl) CancelReservation(ctx context.Context, userID, reservationID int64) (bool, error) {
	var removed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		removed, err = tx.Reservations().DeleteByIDForUser(ctx, reservationID, userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	return removed, err
}

func (c *bookingCommandsImpl) CancelLaneBooking(ctx context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error) {
	var removed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		removed, err = tx.Reservations().DeleteLaneBookingForUser(ctx, userID, laneID, slotStart.UTC())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	return removed, err
}

func (c *bookingCommandsImpl) CancelSessionBooking(ctx context.Context, userID, sessionID int64) (bool, error) {
	var removed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		removed, err = tx.Reservations().DeleteSessionBookingForUser(ctx, userID, sessionID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	return removed, err
}

// checkLaneSlot runs the duplicate and capacity predicates for one lane slot
// inside the caller's transaction.
func (c *bookingCommandsImpl) checkLaneSlot(ctx context.Context, tx shared.Tx, userID int64, target booking.LaneSlot) error {
	laneEntity, err := tx.Lanes().FindByID(ctx, target.LaneID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLaneNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	exists, err := tx.Reservations().HasLaneBooking(ctx, userID, target.LaneID, target.SlotStart)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return ErrAlreadyBooked
	}

	count, err := tx.Reservations().CountLaneBookings(ctx, target.LaneID, target.SlotStart)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count >= laneEntity.Capacity() {
		return ErrFull
	}
	return nil
}

func validateRange(date time.Time, loc *time.Location, startOffset, endOffset time.Duration) error {
	if startOffset < 0 || endOffset <= startOffset {
		return ErrInvalidRange
	}
	if endOffset-startOffset < schedule.SlotLength {
		return ErrInvalidRange
	}
	if !schedule.IsAlignedOffset(startOffset) || !schedule.IsAlignedOffset(endOffset) {
		return ErrInvalidRange
	}
	w := schedule.OperatingWindow(date.In(loc).Weekday())
	if !w.Contains(startOffset, endOffset) {
		return ErrInvalidRange
	}
	return nil
}

func mapInsertErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrAlreadyBooked)
	}
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, ErrLaneNotFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
