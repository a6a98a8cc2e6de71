package entity

import "testing"

func TestAvailabilitySlotCovers(t *testing.T) {
	slot := &AvailabilitySlot{StartTime: "09:00", EndTime: "12:00"}

	tests := []struct {
		name string
		time string
		want bool
	}{
		{name: "start is inclusive", time: "09:00", want: true},
		{name: "inside the window", time: "10:30", want: true},
		{name: "end is exclusive", time: "12:00", want: false},
		{name: "before the window", time: "08:59", want: false},
		{name: "after the window", time: "13:00", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slot.Covers(tt.time); got != tt.want {
				t.Errorf("Covers(%q) = %v, want %v", tt.time, got, tt.want)
			}
		})
	}
}
