package model

import (
	"testing"
	"time"
)

func TestReservationOverlaps(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}
	existing := &Reservation{StartTime: at(10, 0), EndTime: at(11, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical window", at(10, 0), at(11, 0), true},
		{"starts inside", at(10, 30), at(11, 30), true},
		{"ends inside", at(9, 30), at(10, 30), true},
		{"fully contains", at(9, 0), at(12, 0), true},
		{"fully contained", at(10, 15), at(10, 45), true},
		{"ends exactly at start", at(9, 0), at(10, 0), false},
		{"starts exactly at end", at(11, 0), at(12, 0), false},
		{"entirely before", at(8, 0), at(9, 0), false},
		{"entirely after", at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := existing.Overlaps(tt.start, tt.end); got != tt.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	ts := time.Date(2026, 3, 10, 17, 45, 30, 123, loc)

	got := DateOf(ts)
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("DateOf(%v) = %v, want %v", ts, got, want)
	}
	if got.Location() != loc {
		t.Fatal("DateOf must preserve the location")
	}
}
