package event

import (
	"testing"
	"time"
)

var testLoc = time.FixedZone("-03", -3*60*60)

func TestResolveYear(t *testing.T) {
	// Reference day: 2024-06-15
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, testLoc)

	tests := []struct {
		name     string
		day      int
		month    int
		expected int
	}{
		{"earlier month rolls over", 1, 1, 2025},
		{"later same month stays", 20, 6, 2024},
		{"same day stays", 15, 6, 2024},
		{"previous day rolls over", 14, 6, 2025},
		{"next day stays", 16, 6, 2024},
		{"later month stays", 1, 7, 2024},
		{"end of year stays", 31, 12, 2024},
		{"earlier day in earlier month rolls over", 14, 5, 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveYear(tt.day, tt.month, now); got != tt.expected {
				t.Errorf("ResolveYear(%d, %d) = %d, expected %d", tt.day, tt.month, got, tt.expected)
			}
		})
	}
}

func TestResolveStart(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, testLoc)

	tests := []struct {
		name     string
		dateStr  string
		timeStr  string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "date with time",
			dateStr:  "20/6",
			timeStr:  "19:30",
			expected: time.Date(2024, time.June, 20, 19, 30, 0, 0, testLoc),
		},
		{
			name:     "hs suffix tolerated",
			dateStr:  "20/6",
			timeStr:  "20:00hs",
			expected: time.Date(2024, time.June, 20, 20, 0, 0, 0, testLoc),
		},
		{
			name:     "missing time means midnight",
			dateStr:  "20/6",
			timeStr:  "",
			expected: time.Date(2024, time.June, 20, 0, 0, 0, 0, testLoc),
		},
		{
			name:     "past day rolls into next year",
			dateStr:  "5/1",
			timeStr:  "21:00",
			expected: time.Date(2025, time.January, 5, 21, 0, 0, 0, testLoc),
		},
		{
			name:     "explicit year bypasses rollover",
			dateStr:  "20/6/2023",
			timeStr:  "10:00",
			expected: time.Date(2023, time.June, 20, 10, 0, 0, 0, testLoc),
		},
		{
			name:    "unparseable date falls back to now",
			dateStr: "junio 20",
			timeStr: "19:30",
			wantErr: true,
		},
		{
			name:    "out of range date falls back to now",
			dateStr: "32/13",
			timeStr: "19:30",
			wantErr: true,
		},
		{
			name:    "unparseable time falls back to now",
			dateStr: "20/6",
			timeStr: "25:99",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStart(tt.dateStr, tt.timeStr, now, testLoc)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveStart(%q, %q) expected error, got none", tt.dateStr, tt.timeStr)
				}
				if !got.Equal(now) {
					t.Errorf("fallback instant = %v, expected now (%v)", got, now)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveStart(%q, %q) unexpected error: %v", tt.dateStr, tt.timeStr, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ResolveStart(%q, %q) = %v, expected %v", tt.dateStr, tt.timeStr, got, tt.expected)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	loc := Location()
	// Buenos Aires sits at a fixed UTC-3 offset year round.
	instant := time.Date(2024, time.June, 20, 20, 0, 0, 0, loc)
	if _, offset := instant.Zone(); offset != -3*60*60 {
		t.Errorf("Location() offset = %d seconds, expected -10800", offset)
	}
}
