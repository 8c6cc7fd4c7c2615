package utils

import (
	"errors"
	"fmt"
	"time"
)

const (
	minSlotIntervalMinutes = 5
	maxSlotIntervalMinutes = 240
)

// ValidateShiftWindow checks a doctor's shift configuration at write
// time. The availability calculator itself soft-fails on bad windows, so
// this is where malformed shift input gets surfaced as a real error.
func ValidateShiftWindow(shiftStart, shiftEnd string, slotInterval int32) error {
	start, err := time.Parse("15:04", shiftStart)
	if err != nil {
		return fmt.Errorf("shift start %q is not a valid HH:MM time", shiftStart)
	}
	end, err := time.Parse("15:04", shiftEnd)
	if err != nil {
		return fmt.Errorf("shift end %q is not a valid HH:MM time", shiftEnd)
	}

	if !end.After(start) {
		return errors.New("shift end must be after shift start")
	}

	if slotInterval < minSlotIntervalMinutes || slotInterval > maxSlotIntervalMinutes {
		return fmt.Errorf("slot interval must be between %d and %d minutes", minSlotIntervalMinutes, maxSlotIntervalMinutes)
	}

	if end.Sub(start) < time.Duration(slotInterval)*time.Minute {
		return errors.New("shift is shorter than a single slot")
	}

	return nil
}

// ValidateAppointmentDate accepts today or a future calendar date.
func ValidateAppointmentDate(date string, today time.Time) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("date %q is not a valid YYYY-MM-DD date", date)
	}

	if d.Before(today.Truncate(24 * time.Hour)) {
		return errors.New("appointment date is in the past")
	}

	return nil
}
