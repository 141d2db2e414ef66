package queries

import (
	"context"
	"time"

	"lanebook/internal/domain/schedule"
	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/errs"
)

var ErrQueryFailed = errs.New("availability query failed")

type LaneView struct {
	ID       int32
	Name     string
	Capacity int32
}

// SlotRow is one grid line: a slot start and the occupancy per lane, indexed
// like the grid's Lanes slice.
type SlotRow struct {
	SlotStart time.Time
	Counts    []int32
}

// DayGrid is a read-only snapshot of a day's occupancy. It carries no
// reservation guarantee; the booking commands re-validate against the store
// at commit time.
type DayGrid struct {
	Date  time.Time
	Lanes []LaneView
	Slots []SlotRow
}

type SessionView struct {
	ID             int64
	Title          string
	Start          time.Time
	End            time.Time
	AvailableSlots int32
	ReservedCount  int32
}

type ReservationView struct {
	ID           int64
	UserID       int64
	LaneID       *int32
	LaneName     *string
	SlotStart    *time.Time
	SessionID    *int64
	SessionTitle *string
	SessionStart *time.Time
	CreatedAt    time.Time
}

type LaneBookingRow struct {
	LaneID    int32
	SlotStart time.Time
}

type AvailabilityReadStore interface {
	ListLanes(ctx context.Context, limit int32) ([]LaneView, error)
	ListLaneBookingsBetween(ctx context.Context, from, to time.Time) ([]LaneBookingRow, error)
	ListSessionsWithCounts(ctx context.Context) ([]SessionView, error)
	ListUserReservations(ctx context.Context, userID int64) ([]ReservationView, error)
}

type AvailabilityQueries interface {
	LaneGrid(ctx context.Context, date time.Time) (*DayGrid, error)
	ListSessions(ctx context.Context) ([]SessionView, error)
	ListUserReservations(ctx context.Context, userID int64) ([]ReservationView, error)
}

type availabilityQueriesImpl struct {
	store    AvailabilityReadStore
	facility config.FacilityConfig
	loc      *time.Location
}

func NewAvailabilityQueries(store AvailabilityReadStore, cfg config.Config, loc *time.Location) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:    store,
		facility: cfg.Facility,
		loc:      loc,
	}
}

// LaneGrid renders the day in two reads: the lane catalog and one bulk load
// of the day's lane bookings, grouped in memory. Never one query per cell.
func (q *availabilityQueriesImpl) LaneGrid(ctx context.Context, date time.Time) (*DayGrid, error) {
	lanes, err := q.store.ListLanes(ctx, q.facility.LaneCount)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	from, to := schedule.DayWindowUTC(date, q.loc)
	bookings, err := q.store.ListLaneBookingsBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	type cell struct {
		slot time.Time
		lane int32
	}
	counts := make(map[cell]int32, len(bookings))
	for _, b := range bookings {
		counts[cell{slot: b.SlotStart, lane: b.LaneID}]++
	}

	laneIndex := make(map[int32]int, len(lanes))
	for i, l := range lanes {
		laneIndex[l.ID] = i
	}

	slots := schedule.EnumerateSlots(date, q.loc)
	rows := make([]SlotRow, len(slots))
	for i, slot := range slots {
		row := SlotRow{SlotStart: slot, Counts: make([]int32, len(lanes))}
		for _, l := range lanes {
			row.Counts[laneIndex[l.ID]] = counts[cell{slot: slot, lane: l.ID}]
		}
		rows[i] = row
	}

	year, month, day := date.In(q.loc).Date()
	return &DayGrid{
		Date:  time.Date(year, month, day, 0, 0, 0, 0, q.loc),
		Lanes: lanes,
		Slots: rows,
	}, nil
}

func (q *availabilityQueriesImpl) ListSessions(ctx context.Context) ([]SessionView, error) {
	sessions, err := q.store.ListSessionsWithCounts(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return sessions, nil
}

func (q *availabilityQueriesImpl) ListUserReservations(ctx context.Context, userID int64) ([]ReservationView, error) {
	reservations, err := q.store.ListUserReservations(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return reservations, nil
}
