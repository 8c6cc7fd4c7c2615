package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShiftWindow(t *testing.T) {
	tests := []struct {
		name       string
		shiftStart string
		shiftEnd   string
		interval   int32
		wantErr    bool
	}{
		{"typical morning shift", "08:00", "16:00", 20, false},
		{"half hour slots", "09:00", "13:00", 30, false},
		{"shift exactly one slot long", "09:00", "09:30", 30, false},
		{"malformed start", "8am", "16:00", 20, true},
		{"malformed end", "08:00", "4pm", 20, true},
		{"end before start", "16:00", "08:00", 20, true},
		{"end equals start", "08:00", "08:00", 20, true},
		{"interval zero", "08:00", "16:00", 0, true},
		{"interval negative", "08:00", "16:00", -20, true},
		{"interval below minimum", "08:00", "16:00", 4, true},
		{"interval above maximum", "08:00", "16:00", 241, true},
		{"shift shorter than one slot", "09:00", "09:15", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShiftWindow(tt.shiftStart, tt.shiftEnd, tt.interval)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAppointmentDate(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	assert.NoError(t, ValidateAppointmentDate("2025-03-10", today))
	assert.NoError(t, ValidateAppointmentDate("2025-03-11", today))
	assert.NoError(t, ValidateAppointmentDate("2026-01-01", today))

	assert.Error(t, ValidateAppointmentDate("2025-03-09", today))
	assert.Error(t, ValidateAppointmentDate("10-03-2025", today))
	assert.Error(t, ValidateAppointmentDate("2025-3-10", today))
	assert.Error(t, ValidateAppointmentDate("", today))
}

func TestGeneratedDoctorPassesValidation(t *testing.T) {
	for i := 0; i < 50; i++ {
		d := GenerateRandomDoctor(1, "example.com")
		require.NoError(t, ValidateShiftWindow(d.ShiftStart, d.ShiftEnd, d.SlotInterval))
	}
}
