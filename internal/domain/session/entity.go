package session

import (
	"errors"
	"strings"
	"time"

	"lanebook/internal/domain/schedule"
)

var (
	ErrEmptyTitle      = errors.New("session title must not be empty")
	ErrInvalidInterval = errors.New("session end must be after start")
	ErrInvalidCapacity = errors.New("session capacity must be positive")
)

// Session is a trainer-defined activity with its own capacity, booked as a
// whole rather than per lane slot.
type Session struct {
	id             int64
	title          string
	start          time.Time
	end            time.Time
	availableSlots int32
}

// NewSession normalizes free-form start/end instants onto the half-hour grid
// before validating the interval.
func NewSession(title string, start, end time.Time, availableSlots int32) (*Session, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if availableSlots <= 0 {
		return nil, ErrInvalidCapacity
	}

	start = schedule.AlignToSlot(start)
	end = schedule.AlignToSlot(end)
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	return &Session{
		title:          title,
		start:          start,
		end:            end,
		availableSlots: availableSlots,
	}, nil
}

func ReconstructSession(id int64, title string, start, end time.Time, availableSlots int32) *Session {
	return &Session{
		id:             id,
		title:          title,
		start:          start,
		end:            end,
		availableSlots: availableSlots,
	}
}

func (s *Session) ID() int64             { return s.id }
func (s *Session) Title() string         { return s.title }
func (s *Session) Start() time.Time      { return s.start }
func (s *Session) End() time.Time        { return s.end }
func (s *Session) AvailableSlots() int32 { return s.availableSlots }
