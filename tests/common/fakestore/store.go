// Package fakestore is an in-memory stand-in for the Postgres unit of work,
// used by command-layer unit tests. Transactions copy the whole state on
// entry and restore it when the callback fails, which reproduces the
// all-or-nothing behavior the real store provides.
package fakestore

import (
	"context"
	"sync"
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/internal/domain/lane"
	"lanebook/internal/domain/session"
	"lanebook/internal/infra"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/shared"
)

type reservationRow struct {
	id        int64
	userID    int64
	laneID    int32
	slotStart time.Time
	sessionID int64
	isLane    bool
}

type state struct {
	lanes        map[int32]*lane.Lane
	sessions     map[int64]*session.Session
	reservations map[int64]reservationRow
	nextRes      int64
	nextSession  int64
	laneInserts  int
}

func (s *state) clone() *state {
	c := &state{
		lanes:        make(map[int32]*lane.Lane, len(s.lanes)),
		sessions:     make(map[int64]*session.Session, len(s.sessions)),
		reservations: make(map[int64]reservationRow, len(s.reservations)),
		nextRes:      s.nextRes,
		nextSession:  s.nextSession,
		laneInserts:  s.laneInserts,
	}
	for k, v := range s.lanes {
		c.lanes[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	return c
}

// Store implements shared.UnitOfWork over process memory.
type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{
		st: &state{
			lanes:        map[int32]*lane.Lane{},
			sessions:     map[int64]*session.Session{},
			reservations: map[int64]reservationRow{},
			nextRes:      1,
			nextSession:  1,
		},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, fn)
}

func (s *Store) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, fn)
}

func (s *Store) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	tx := &fakeTx{st: s.st}
	if err := fn(ctx, tx); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// SeedLane adds a lane without going through a transaction.
func (s *Store) SeedLane(l *lane.Lane) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.lanes[l.ID()] = l
}

// SeedSession stores the session and returns its assigned id.
func (s *Store) SeedSession(sess *session.Session) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.nextSession
	s.st.nextSession++
	s.st.sessions[id] = session.ReconstructSession(id, sess.Title(), sess.Start(), sess.End(), sess.AvailableSlots())
	return id
}

// ReservationCount reports the number of stored reservations.
func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.reservations)
}

// LaneInsertCount reports how many lane rows have been written through
// InsertBatch since the store was created.
func (s *Store) LaneInsertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.laneInserts
}

// LaneReservationCount reports the occupancy of one lane slot.
func (s *Store) LaneReservationCount(laneID int32, slotStart time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.st.reservations {
		if r.isLane && r.laneID == laneID && r.slotStart.Equal(slotStart.UTC()) {
			n++
		}
	}
	return n
}

type fakeTx struct {
	st *state
}

func (t *fakeTx) Lanes() shared.LaneRepository               { return &laneRepo{st: t.st} }
func (t *fakeTx) Sessions() shared.SessionRepository         { return &sessionRepo{st: t.st} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &reservationRepo{st: t.st} }

type laneRepo struct {
	st *state
}

func (r *laneRepo) FindByID(_ context.Context, id int32) (*lane.Lane, error) {
	l, ok := r.st.lanes[id]
	if !ok {
		return nil, infra.WrapRepoErr("lane not found", nil, infra.KindNotFound)
	}
	return l, nil
}

func (r *laneRepo) ExistingIDs(_ context.Context) (map[int32]struct{}, error) {
	ids := make(map[int32]struct{}, len(r.st.lanes))
	for id := range r.st.lanes {
		ids[id] = struct{}{}
	}
	return ids, nil
}

// InsertBatch records every row handed to it in laneInserts, so tests can
// tell an idempotent caller apart from one that blindly re-inserts.
func (r *laneRepo) InsertBatch(_ context.Context, lanes []*lane.Lane) error {
	r.st.laneInserts += len(lanes)
	for _, l := range lanes {
		if _, exists := r.st.lanes[l.ID()]; !exists {
			r.st.lanes[l.ID()] = l
		}
	}
	return nil
}

type sessionRepo struct {
	st *state
}

func (r *sessionRepo) FindByID(_ context.Context, id int64) (*session.Session, error) {
	s, ok := r.st.sessions[id]
	if !ok {
		return nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return s, nil
}

func (r *sessionRepo) Insert(_ context.Context, s *session.Session) (int64, error) {
	id := r.st.nextSession
	r.st.nextSession++
	r.st.sessions[id] = session.ReconstructSession(id, s.Title(), s.Start(), s.End(), s.AvailableSlots())
	return id, nil
}

func (r *sessionRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.st.sessions[id]; !ok {
		return false, nil
	}
	delete(r.st.sessions, id)
	return true, nil
}

type reservationRepo struct {
	st *state
}

func (r *reservationRepo) Insert(_ context.Context, b *booking.Booking) (int64, error) {
	row := reservationRow{userID: b.UserID()}
	switch target := b.Target().(type) {
	case booking.LaneSlot:
		row.isLane = true
		row.laneID = target.LaneID
		row.slotStart = target.SlotStart.UTC()
		if _, ok := r.st.lanes[target.LaneID]; !ok {
			return 0, infra.WrapRepoErr("lane missing", errs.New("fk"), infra.KindForeignKeyViolated)
		}
	case booking.SessionEntry:
		row.sessionID = target.SessionID
		if _, ok := r.st.sessions[target.SessionID]; !ok {
			return 0, infra.WrapRepoErr("session missing", errs.New("fk"), infra.KindForeignKeyViolated)
		}
	}

	for _, existing := range r.st.reservations {
		if row.isLane && existing.isLane &&
			existing.userID == row.userID && existing.laneID == row.laneID && existing.slotStart.Equal(row.slotStart) {
			return 0, infra.WrapRepoErr("duplicate lane booking", errs.New("unique"), infra.KindDuplicateKey)
		}
		if !row.isLane && !existing.isLane &&
			existing.userID == row.userID && existing.sessionID == row.sessionID {
			return 0, infra.WrapRepoErr("duplicate session booking", errs.New("unique"), infra.KindDuplicateKey)
		}
	}

	row.id = r.st.nextRes
	r.st.nextRes++
	r.st.reservations[row.id] = row
	return row.id, nil
}

func (r *reservationRepo) HasLaneBooking(_ context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error) {
	for _, row := range r.st.reservations {
		if row.isLane && row.userID == userID && row.laneID == laneID && row.slotStart.Equal(slotStart.UTC()) {
			return true, nil
		}
	}
	return false, nil
}

func (r *reservationRepo) CountLaneBookings(_ context.Context, laneID int32, slotStart time.Time) (int32, error) {
	var n int32
	for _, row := range r.st.reservations {
		if row.isLane && row.laneID == laneID && row.slotStart.Equal(slotStart.UTC()) {
			n++
		}
	}
	return n, nil
}

func (r *reservationRepo) HasSessionBooking(_ context.Context, userID, sessionID int64) (bool, error) {
	for _, row := range r.st.reservations {
		if !row.isLane && row.userID == userID && row.sessionID == sessionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *reservationRepo) CountSessionBookings(_ context.Context, sessionID int64) (int32, error) {
	var n int32
	for _, row := range r.st.reservations {
		if !row.isLane && row.sessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (r *reservationRepo) DeleteByIDForUser(_ context.Context, id, userID int64) (bool, error) {
	row, ok := r.st.reservations[id]
	if !ok || row.userID != userID {
		return false, nil
	}
	delete(r.st.reservations, id)
	return true, nil
}

func (r *reservationRepo) DeleteLaneBookingForUser(_ context.Context, userID int64, laneID int32, slotStart time.Time) (bool, error) {
	for id, row := range r.st.reservations {
		if row.isLane && row.userID == userID && row.laneID == laneID && row.slotStart.Equal(slotStart.UTC()) {
			delete(r.st.reservations, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *reservationRepo) DeleteSessionBookingForUser(_ context.Context, userID, sessionID int64) (bool, error) {
	for id, row := range r.st.reservations {
		if !row.isLane && row.userID == userID && row.sessionID == sessionID {
			delete(r.st.reservations, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *reservationRepo) DeleteBySession(_ context.Context, sessionID int64) (int64, error) {
	var n int64
	for id, row := range r.st.reservations {
		if !row.isLane && row.sessionID == sessionID {
			delete(r.st.reservations, id)
			n++
		}
	}
	return n, nil
}
