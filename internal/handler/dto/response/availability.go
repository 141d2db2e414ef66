package response

import (
	"time"

	"lanebook/internal/usecase/queries"
)

type LaneResponse struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Capacity int32  `json:"capacity"`
}

type SlotRowResponse struct {
	SlotStart time.Time `json:"slot_start"`
	Counts    []int32   `json:"counts"`
}

type DayGridResponse struct {
	Date  string            `json:"date"`
	Lanes []LaneResponse    `json:"lanes"`
	Slots []SlotRowResponse `json:"slots"`
}

func FromDayGrid(g *queries.DayGrid) *DayGridResponse {
	lanes := make([]LaneResponse, len(g.Lanes))
	for i, l := range g.Lanes {
		lanes[i] = LaneResponse{ID: l.ID, Name: l.Name, Capacity: l.Capacity}
	}

	slots := make([]SlotRowResponse, len(g.Slots))
	for i, s := range g.Slots {
		slots[i] = SlotRowResponse{SlotStart: s.SlotStart, Counts: s.Counts}
	}

	return &DayGridResponse{
		Date:  g.Date.Format("2006-01-02"),
		Lanes: lanes,
		Slots: slots,
	}
}

type ReservationResponse struct {
	ID           int64      `json:"id"`
	LaneID       *int32     `json:"lane_id,omitempty"`
	LaneName     *string    `json:"lane_name,omitempty"`
	SlotStart    *time.Time `json:"slot_start,omitempty"`
	SessionID    *int64     `json:"session_id,omitempty"`
	SessionTitle *string    `json:"session_title,omitempty"`
	SessionStart *time.Time `json:"session_start,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromReservationViews(items []queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(items))
	for i, v := range items {
		res[i] = &ReservationResponse{
			ID:           v.ID,
			LaneID:       v.LaneID,
			LaneName:     v.LaneName,
			SlotStart:    v.SlotStart,
			SessionID:    v.SessionID,
			SessionTitle: v.SessionTitle,
			SessionStart: v.SessionStart,
			CreatedAt:    v.CreatedAt,
		}
	}
	return res
}
