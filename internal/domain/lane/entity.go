package lane

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID       = errors.New("lane id must be positive")
	ErrInvalidCapacity = errors.New("lane capacity must be positive")
	ErrEmptyName       = errors.New("lane name must not be empty")
)

// Lane is a physical bookable unit of the pool. Capacity is the number of
// concurrent reservations a single half-hour slot admits.
type Lane struct {
	id       int32
	name     string
	capacity int32
}

func NewLane(id int32, name string, capacity int32) (*Lane, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Lane{id: id, name: name, capacity: capacity}, nil
}

// DefaultLane builds the lane materialized for a missing catalog id.
func DefaultLane(id int32, capacity int32) *Lane {
	return &Lane{id: id, name: fmt.Sprintf("Lane %d", id), capacity: capacity}
}

func (l *Lane) ID() int32       { return l.id }
func (l *Lane) Name() string    { return l.name }
func (l *Lane) Capacity() int32 { return l.capacity }
