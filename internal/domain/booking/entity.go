package booking

import (
	"errors"
	"time"

	"lanebook/internal/domain/schedule"
)

var (
	ErrInvalidUser      = errors.New("booking user id must be positive")
	ErrMissingTarget    = errors.New("booking target is required")
	ErrUnalignedSlot    = errors.New("lane slot start must sit on the half-hour grid")
	ErrInvalidLane      = errors.New("lane id must be positive")
	ErrInvalidSessionID = errors.New("session id must be positive")
)

// Target is the sum type of the two booking shapes: a lane slot on the
// half-hour grid or a whole trainer session. Exactly one variant addresses a
// booking; the type makes the exclusivity invariant structural rather than a
// pair of nullable columns checked at runtime.
type Target interface {
	validate() error
}

type LaneSlot struct {
	LaneID    int32
	SlotStart time.Time
}

func (t LaneSlot) validate() error {
	if t.LaneID <= 0 {
		return ErrInvalidLane
	}
	if !schedule.IsAligned(t.SlotStart) {
		return ErrUnalignedSlot
	}
	return nil
}

type SessionEntry struct {
	SessionID int64
}

func (t SessionEntry) validate() error {
	if t.SessionID <= 0 {
		return ErrInvalidSessionID
	}
	return nil
}

// Booking is the reservation record held by one user for one target.
type Booking struct {
	id        int64
	userID    int64
	target    Target
	createdAt time.Time
}

func NewBooking(userID int64, target Target) (*Booking, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	if target == nil {
		return nil, ErrMissingTarget
	}
	if err := target.validate(); err != nil {
		return nil, err
	}
	return &Booking{userID: userID, target: target}, nil
}

func ReconstructBooking(id, userID int64, target Target, createdAt time.Time) *Booking {
	return &Booking{id: id, userID: userID, target: target, createdAt: createdAt}
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) UserID() int64        { return b.userID }
func (b *Booking) Target() Target       { return b.target }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) LaneSlot() (LaneSlot, bool) {
	t, ok := b.target.(LaneSlot)
	return t, ok
}

func (b *Booking) SessionEntry() (SessionEntry, bool) {
	t, ok := b.target.(SessionEntry)
	return t, ok
}
