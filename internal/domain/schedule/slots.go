// Package schedule holds the pure half-hour grid arithmetic for the facility.
// All instants handed to other layers are UTC; local-calendar concepts
// (weekday, daily operating window) exist only inside this package, at the
// point where a day is converted into slot boundaries.
package schedule

import "time"

// SlotLength is the atomic unit of booking time.
const SlotLength = 30 * time.Minute

// Window is a day's open/close range expressed as offsets from local midnight.
type Window struct {
	Open  time.Duration
	Close time.Duration
}

// Contains reports whether the [start, end) offsets fit inside the window.
func (w Window) Contains(start, end time.Duration) bool {
	return start >= w.Open && end <= w.Close
}

// OperatingWindow returns the facility hours for a weekday:
// 07:00-21:00 on weekends, 06:00-22:00 otherwise.
func OperatingWindow(day time.Weekday) Window {
	if day == time.Saturday || day == time.Sunday {
		return Window{Open: 7 * time.Hour, Close: 21 * time.Hour}
	}
	return Window{Open: 6 * time.Hour, Close: 22 * time.Hour}
}

// EnumerateSlots returns every half-hour slot start of the given calendar day
// in ascending order, as UTC instants. Each boundary is derived independently
// from the local wall clock, never by adding SlotLength to a previous UTC
// instant, so a DST transition inside the day cannot shift later slots.
func EnumerateSlots(date time.Time, loc *time.Location) []time.Time {
	year, month, day := date.In(loc).Date()
	w := OperatingWindow(time.Date(year, month, day, 0, 0, 0, 0, loc).Weekday())
	return slotsForOffsets(year, month, day, loc, w.Open, w.Close)
}

// SlotsInRange expands the [start, end) offsets of a local day into the
// covered slot starts, as UTC instants. Callers validate the offsets first.
func SlotsInRange(date time.Time, loc *time.Location, start, end time.Duration) []time.Time {
	year, month, day := date.In(loc).Date()
	return slotsForOffsets(year, month, day, loc, start, end)
}

func slotsForOffsets(year int, month time.Month, day int, loc *time.Location, start, end time.Duration) []time.Time {
	var slots []time.Time
	for off := start; off < end; off += SlotLength {
		h := int(off / time.Hour)
		m := int((off % time.Hour) / time.Minute)
		slots = append(slots, time.Date(year, month, day, h, m, 0, 0, loc).UTC())
	}
	return slots
}

// DayWindowUTC returns the UTC instants of the day's open and close
// boundaries, for bulk reservation reads covering the whole day.
func DayWindowUTC(date time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, day := date.In(loc).Date()
	w := OperatingWindow(time.Date(year, month, day, 0, 0, 0, 0, loc).Weekday())
	openAt := time.Date(year, month, day, int(w.Open/time.Hour), int((w.Open%time.Hour)/time.Minute), 0, 0, loc)
	closeAt := time.Date(year, month, day, int(w.Close/time.Hour), int((w.Close%time.Hour)/time.Minute), 0, 0, loc)
	return openAt.UTC(), closeAt.UTC()
}

// InOperatingWindow reports whether the slot starting at t fits entirely
// inside the facility hours of its local calendar day.
func InOperatingWindow(t time.Time, loc *time.Location) bool {
	lt := t.In(loc)
	off := time.Duration(lt.Hour())*time.Hour + time.Duration(lt.Minute())*time.Minute
	return OperatingWindow(lt.Weekday()).Contains(off, off+SlotLength)
}

// AlignToSlot floors an instant to the nearest half-hour boundary within its
// hour, stripping seconds. Used to normalize free-form start times.
func AlignToSlot(t time.Time) time.Time {
	u := t.UTC()
	minute := 0
	if u.Minute() >= 30 {
		minute = 30
	}
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), minute, 0, 0, time.UTC)
}

// IsAligned reports whether t sits exactly on a half-hour boundary.
func IsAligned(t time.Time) bool {
	return t.Minute()%30 == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// IsAlignedOffset reports whether a day offset is a whole number of slots.
func IsAlignedOffset(d time.Duration) bool {
	return d%SlotLength == 0
}
