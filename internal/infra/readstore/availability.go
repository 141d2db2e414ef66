package readstore

import (
	"context"
	"time"

	"lanebook/internal/infra"
	"lanebook/internal/infra/db"
	"lanebook/internal/usecase/queries"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) ListLanes(ctx context.Context, limit int32) ([]queries.LaneView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, capacity FROM lanes ORDER BY id LIMIT $1`, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lanes", err)
	}
	defer rows.Close()

	var lanes []queries.LaneView
	for rows.Next() {
		var v queries.LaneView
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lane view", err)
		}
		lanes = append(lanes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lane views", err)
	}
	return lanes, nil
}

// ListLaneBookingsBetween bulk-loads every lane-mode reservation of a day
// window, one row per booking, for in-memory grouping by the query layer.
func (r *AvailabilityReadStore) ListLaneBookingsBetween(ctx context.Context, from, to time.Time) ([]queries.LaneBookingRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT lane_id, slot_start
		 FROM reservations
		 WHERE lane_id IS NOT NULL AND slot_start >= $1 AND slot_start < $2`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lane bookings", err)
	}
	defer rows.Close()

	var bookings []queries.LaneBookingRow
	for rows.Next() {
		var (
			b    queries.LaneBookingRow
			slot time.Time
		)
		if err := rows.Scan(&b.LaneID, &slot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lane booking", err)
		}
		b.SlotStart = slot.UTC()
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lane bookings", err)
	}
	return bookings, nil
}

func (r *AvailabilityReadStore) ListSessionsWithCounts(ctx context.Context) ([]queries.SessionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.title, s.start_at, s.end_at, s.available_slots,
		        COUNT(r.id) AS reserved
		 FROM sessions s
		 LEFT JOIN reservations r ON r.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.start_at`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions", err)
	}
	defer rows.Close()

	var sessions []queries.SessionView
	for rows.Next() {
		var (
			v          queries.SessionView
			start, end time.Time
		)
		if err := rows.Scan(&v.ID, &v.Title, &start, &end, &v.AvailableSlots, &v.ReservedCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan session view", err)
		}
		v.Start = start.UTC()
		v.End = end.UTC()
		sessions = append(sessions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate session views", err)
	}
	return sessions, nil
}

func (r *AvailabilityReadStore) ListUserReservations(ctx context.Context, userID int64) ([]queries.ReservationView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT res.id, res.user_id, res.lane_id, l.name, res.slot_start,
		        res.session_id, s.title, s.start_at, res.created_at
		 FROM reservations res
		 LEFT JOIN lanes l ON l.id = res.lane_id
		 LEFT JOIN sessions s ON s.id = res.session_id
		 WHERE res.user_id = $1
		 ORDER BY res.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	defer rows.Close()

	var reservations []queries.ReservationView
	for rows.Next() {
		var v queries.ReservationView
		if err := rows.Scan(&v.ID, &v.UserID, &v.LaneID, &v.LaneName, &v.SlotStart,
			&v.SessionID, &v.SessionTitle, &v.SessionStart, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		if v.SlotStart != nil {
			utc := v.SlotStart.UTC()
			v.SlotStart = &utc
		}
		if v.SessionStart != nil {
			utc := v.SessionStart.UTC()
			v.SessionStart = &utc
		}
		reservations = append(reservations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation views", err)
	}
	return reservations, nil
}
