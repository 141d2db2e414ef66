package response

import (
	"time"

	"lanebook/internal/domain/booking"
)

type BookingResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	LaneID    *int32     `json:"lane_id,omitempty"`
	SlotStart *time.Time `json:"slot_start,omitempty"`
	SessionID *int64     `json:"session_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:        b.ID(),
		UserID:    b.UserID(),
		CreatedAt: b.CreatedAt(),
	}
	if slot, ok := b.LaneSlot(); ok {
		laneID := slot.LaneID
		start := slot.SlotStart
		resp.LaneID = &laneID
		resp.SlotStart = &start
	}
	if entry, ok := b.SessionEntry(); ok {
		sessionID := entry.SessionID
		resp.SessionID = &sessionID
	}
	return resp
}

func FromBookings(items []*booking.Booking) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, b := range items {
		res[i] = FromBooking(b)
	}
	return res
}
