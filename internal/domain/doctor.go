package domain

import (
	"time"
)

type Specialty struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Version int32  `json:"-"`
}

// Doctor carries its shift window as "HH:MM" strings. The window is
// half-open [ShiftStart, ShiftEnd); a window whose end is not after its
// start simply yields no bookable slots.
type Doctor struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	SpecialtyID   int64     `json:"specialtyId"`
	SpecialtyName string    `json:"specialty"`
	ShiftStart    string    `json:"shiftStart"`
	ShiftEnd      string    `json:"shiftEnd"`
	SlotInterval  int32     `json:"slotIntervalMinutes"`
	NurseAssigned string    `json:"nurseAssigned"`
	RoomID        *int64    `json:"roomId"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}
