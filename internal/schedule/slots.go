package schedule

import (
	"time"
)

// timeLayout is the minute-granularity clock format shift windows and
// booked starts are expressed in.
const timeLayout = "15:04"

type Status string

const (
	// StatusNoShift means the window produced no candidates at all:
	// malformed times, end not after start, or a non-positive interval.
	StatusNoShift Status = "no_shift"
	// StatusFullyBooked means the grid had candidates but every one of
	// them is already taken.
	StatusFullyBooked Status = "fully_booked"
	StatusAvailable   Status = "available"
)

type Availability struct {
	Status Status   `json:"status"`
	Slots  []string `json:"slots"`
}

// AvailableSlots returns the ordered bookable start times inside the
// half-open window [shiftStart, shiftEnd), walking forward in steps of
// interval and skipping starts present in booked. A slot is emitted only
// if the whole interval fits before shiftEnd.
//
// Malformed window input soft-fails to an empty slice rather than an
// error: the interactive booking flow treats a bad shift string on a
// doctor profile as "no availability", and input quality is the writing
// side's problem. Callers that need to tell that case apart from a fully
// booked shift should use Compute.
func AvailableSlots(shiftStart, shiftEnd string, interval time.Duration, booked []string) []string {
	slots := make([]string, 0)

	bookedSet := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		bookedSet[b] = struct{}{}
	}

	for _, candidate := range slotGrid(shiftStart, shiftEnd, interval) {
		if _, taken := bookedSet[candidate]; taken {
			continue
		}
		slots = append(slots, candidate)
	}

	return slots
}

// Compute distinguishes "the window yields no grid at all" from "every
// slot is taken", which AvailableSlots collapses into one empty result.
func Compute(shiftStart, shiftEnd string, interval time.Duration, booked []string) Availability {
	candidates := slotGrid(shiftStart, shiftEnd, interval)
	if len(candidates) == 0 {
		return Availability{Status: StatusNoShift, Slots: []string{}}
	}

	slots := AvailableSlots(shiftStart, shiftEnd, interval, booked)
	if len(slots) == 0 {
		return Availability{Status: StatusFullyBooked, Slots: slots}
	}

	return Availability{Status: StatusAvailable, Slots: slots}
}

// slotGrid generates the unfiltered ascending candidate starts. Booked
// values that never appear on this grid are simply never excluded.
func slotGrid(shiftStart, shiftEnd string, interval time.Duration) []string {
	if interval <= 0 {
		return nil
	}

	start, err := time.Parse(timeLayout, shiftStart)
	if err != nil {
		return nil
	}
	end, err := time.Parse(timeLayout, shiftEnd)
	if err != nil {
		return nil
	}
	if !end.After(start) {
		return nil
	}

	var grid []string
	for cur := start; !cur.Add(interval).After(end); cur = cur.Add(interval) {
		grid = append(grid, cur.Format(timeLayout))
	}
	return grid
}
