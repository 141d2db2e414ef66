package request

import (
	"time"

	"lanebook/internal/pkg/errs"
)

var ErrMalformedTime = errs.New("malformed time value")

const (
	dateLayout   = "2006-01-02"
	offsetLayout = "15:04"
)

type ReserveLaneSlotRequest struct {
	LaneID    int32     `json:"lane_id" binding:"required,min=1"`
	SlotStart time.Time `json:"slot_start" binding:"required"`
}

type ReserveLaneRangeRequest struct {
	LaneID int32  `json:"lane_id" binding:"required,min=1"`
	Date   string `json:"date" binding:"required"`
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
}

// Resolve parses the wall-clock fields into a local date and two offsets from
// midnight. The range semantics (alignment, window bounds) are validated by
// the booking commands, not here.
func (r ReserveLaneRangeRequest) Resolve(loc *time.Location) (time.Time, time.Duration, time.Duration, error) {
	date, err := time.ParseInLocation(dateLayout, r.Date, loc)
	if err != nil {
		return time.Time{}, 0, 0, errs.Mark(err, ErrMalformedTime)
	}

	start, err := parseDayOffset(r.Start)
	if err != nil {
		return time.Time{}, 0, 0, err
	}
	end, err := parseDayOffset(r.End)
	if err != nil {
		return time.Time{}, 0, 0, err
	}
	return date, start, end, nil
}

func parseDayOffset(s string) (time.Duration, error) {
	t, err := time.Parse(offsetLayout, s)
	if err != nil {
		return 0, errs.Mark(err, ErrMalformedTime)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

type CancelLaneBookingRequest struct {
	LaneID    int32     `json:"lane_id" binding:"required,min=1"`
	SlotStart time.Time `json:"slot_start" binding:"required"`
}
