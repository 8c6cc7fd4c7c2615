package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestAvailableSlots_TwentyMinuteGrid(t *testing.T) {
	slots := AvailableSlots("08:00", "09:00", 20*time.Minute, []string{"08:20"})

	want := []string{"08:00", "08:40"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_ThirtyMinuteGrid(t *testing.T) {
	slots := AvailableSlots("09:00", "10:00", 30*time.Minute, nil)

	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_EndBeforeStart(t *testing.T) {
	slots := AvailableSlots("10:00", "09:00", 20*time.Minute, nil)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestAvailableSlots_MalformedInput(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"garbage start", "8 o'clock", "16:00"},
		{"garbage end", "08:00", "afternoon"},
		{"empty window", "", ""},
		{"equal bounds", "12:00", "12:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := AvailableSlots(tc.start, tc.end, 30*time.Minute, nil)
			if len(slots) != 0 {
				t.Fatalf("expected no slots, got %v", slots)
			}
		})
	}
}

func TestAvailableSlots_NonPositiveInterval(t *testing.T) {
	if slots := AvailableSlots("08:00", "16:00", 0, nil); len(slots) != 0 {
		t.Fatalf("expected no slots for zero interval, got %v", slots)
	}
	if slots := AvailableSlots("08:00", "16:00", -20*time.Minute, nil); len(slots) != 0 {
		t.Fatalf("expected no slots for negative interval, got %v", slots)
	}
}

// The count of an unfiltered grid equals (end-start)/interval when the
// window is an exact multiple of the interval, and the last slot plus the
// interval never runs past the window end.
func TestAvailableSlots_GridBounds(t *testing.T) {
	cases := []struct {
		start, end string
		interval   time.Duration
		wantCount  int
		wantLast   string
	}{
		{"08:00", "16:00", 20 * time.Minute, 24, "15:40"},
		{"08:00", "16:00", 30 * time.Minute, 16, "15:30"},
		{"09:00", "09:50", 20 * time.Minute, 2, "09:20"}, // 09:40 would overrun
		{"09:00", "09:19", 20 * time.Minute, 0, ""},
	}

	for _, tc := range cases {
		slots := AvailableSlots(tc.start, tc.end, tc.interval, nil)
		if len(slots) != tc.wantCount {
			t.Fatalf("window %s-%s/%s: expected %d slots, got %d (%v)",
				tc.start, tc.end, tc.interval, tc.wantCount, len(slots), slots)
		}
		if tc.wantCount > 0 && slots[len(slots)-1] != tc.wantLast {
			t.Fatalf("window %s-%s/%s: expected last slot %s, got %s",
				tc.start, tc.end, tc.interval, tc.wantLast, slots[len(slots)-1])
		}
	}
}

func TestAvailableSlots_BookedFiltering(t *testing.T) {
	booked := []string{
		"08:20",
		"08:20", // duplicates are harmless
		"08:25", // off-grid, never excluded and never an error
		"23:59", // outside the window entirely
	}

	slots := AvailableSlots("08:00", "09:00", 20*time.Minute, booked)

	want := []string{"08:00", "08:40"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_Ascending(t *testing.T) {
	slots := AvailableSlots("08:00", "16:00", 20*time.Minute, []string{"09:00", "13:40"})
	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Fatalf("slots not in ascending order: %v", slots)
		}
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	booked := []string{"10:00", "10:30"}

	first := AvailableSlots("09:00", "12:00", 30*time.Minute, booked)
	for i := 0; i < 5; i++ {
		again := AvailableSlots("09:00", "12:00", 30*time.Minute, booked)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestCompute_TaggedStatuses(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		interval   time.Duration
		booked     []string
		want       Status
		wantSlots  int
	}{
		{"open shift", "08:00", "09:00", 20 * time.Minute, nil, StatusAvailable, 3},
		{"partially booked", "08:00", "09:00", 20 * time.Minute, []string{"08:00"}, StatusAvailable, 2},
		{"fully booked", "08:00", "09:00", 20 * time.Minute, []string{"08:00", "08:20", "08:40"}, StatusFullyBooked, 0},
		{"reversed window", "10:00", "09:00", 20 * time.Minute, nil, StatusNoShift, 0},
		{"unparseable window", "soon", "later", 20 * time.Minute, nil, StatusNoShift, 0},
		{"window shorter than interval", "09:00", "09:10", 20 * time.Minute, nil, StatusNoShift, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.start, tc.end, tc.interval, tc.booked)
			if got.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, got.Status)
			}
			if len(got.Slots) != tc.wantSlots {
				t.Fatalf("expected %d slots, got %v", tc.wantSlots, got.Slots)
			}
			if got.Slots == nil {
				t.Fatal("slots must never be nil, the response encoder relies on []")
			}
		})
	}
}
