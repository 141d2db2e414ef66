//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReadStore struct {
	lanes        []queries.LaneView
	bookings     []queries.LaneBookingRow
	sessions     []queries.SessionView
	reservations []queries.ReservationView
	err          error

	bookingsFrom time.Time
	bookingsTo   time.Time
}

func (s *stubReadStore) ListLanes(_ context.Context, _ int32) ([]queries.LaneView, error) {
	return s.lanes, s.err
}

func (s *stubReadStore) ListLaneBookingsBetween(_ context.Context, from, to time.Time) ([]queries.LaneBookingRow, error) {
	s.bookingsFrom, s.bookingsTo = from, to
	return s.bookings, s.err
}

func (s *stubReadStore) ListSessionsWithCounts(_ context.Context) ([]queries.SessionView, error) {
	return s.sessions, s.err
}

func (s *stubReadStore) ListUserReservations(_ context.Context, _ int64) ([]queries.ReservationView, error) {
	return s.reservations, s.err
}

func newQueriesFixture(t *testing.T, store *stubReadStore) queries.AvailabilityQueries {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	cfg := config.Config{}
	cfg.Facility = config.FacilityConfig{LaneCount: 2, DefaultLaneCapacity: 1, TimeZone: "Europe/Warsaw"}
	return queries.NewAvailabilityQueries(store, cfg, loc)
}

func TestLaneGrid(t *testing.T) {
	ctx := context.Background()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	// Tuesday
	date := time.Date(2026, time.June, 2, 0, 0, 0, 0, loc)
	slot10 := time.Date(2026, time.June, 2, 10, 0, 0, 0, loc).UTC()
	slot11 := time.Date(2026, time.June, 2, 11, 0, 0, 0, loc).UTC()

	t.Run("groups bookings into per-lane occupancy rows", func(t *testing.T) {
		store := &stubReadStore{
			lanes: []queries.LaneView{
				{ID: 1, Name: "Lane 1", Capacity: 1},
				{ID: 2, Name: "Lane 2", Capacity: 2},
			},
			bookings: []queries.LaneBookingRow{
				{LaneID: 1, SlotStart: slot10},
				{LaneID: 2, SlotStart: slot10},
				{LaneID: 2, SlotStart: slot10},
				{LaneID: 2, SlotStart: slot11},
			},
		}
		q := newQueriesFixture(t, store)

		grid, err := q.LaneGrid(ctx, date)
		require.NoError(t, err)
		require.NotNil(t, grid)

		// Weekday: 32 slots from 06:00 to 21:30 local.
		require.Len(t, grid.Slots, 32)
		require.Len(t, grid.Lanes, 2)

		bySlot := make(map[time.Time][]int32, len(grid.Slots))
		for _, row := range grid.Slots {
			bySlot[row.SlotStart] = row.Counts
		}
		assert.Equal(t, []int32{1, 2}, bySlot[slot10])
		assert.Equal(t, []int32{0, 1}, bySlot[slot11])

		// Untouched slots stay zero.
		empty := time.Date(2026, time.June, 2, 6, 0, 0, 0, loc).UTC()
		assert.Equal(t, []int32{0, 0}, bySlot[empty])
	})

	t.Run("queries the whole operating day", func(t *testing.T) {
		store := &stubReadStore{lanes: []queries.LaneView{{ID: 1, Name: "Lane 1", Capacity: 1}}}
		q := newQueriesFixture(t, store)

		_, err := q.LaneGrid(ctx, date)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, time.June, 2, 6, 0, 0, 0, loc).UTC(), store.bookingsFrom)
		assert.Equal(t, time.Date(2026, time.June, 2, 22, 0, 0, 0, loc).UTC(), store.bookingsTo)
	})

	t.Run("store failure is marked", func(t *testing.T) {
		store := &stubReadStore{err: errs.New("boom")}
		q := newQueriesFixture(t, store)

		_, err := q.LaneGrid(ctx, date)
		require.True(t, errs.Is(err, queries.ErrQueryFailed))
	})
}

func TestListSessions(t *testing.T) {
	ctx := context.Background()

	store := &stubReadStore{
		sessions: []queries.SessionView{
			{ID: 1, Title: "Morning swim", AvailableSlots: 10, ReservedCount: 3},
		},
	}
	q := newQueriesFixture(t, store)

	got, err := q.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int32(3), got[0].ReservedCount)
}

func TestListUserReservations(t *testing.T) {
	ctx := context.Background()

	laneID := int32(1)
	store := &stubReadStore{
		reservations: []queries.ReservationView{
			{ID: 2, UserID: 7, LaneID: &laneID},
			{ID: 1, UserID: 7, SessionID: ptrInt64(9)},
		},
	}
	q := newQueriesFixture(t, store)

	got, err := q.ListUserReservations(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func ptrInt64(v int64) *int64 { return &v }
