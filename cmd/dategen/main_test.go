package main

import (
	"testing"

	"github.com/zapponejosh/lunar-api/internal/lunar"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		year      int
		wantCount int
	}{
		{2023, 39}, // leap second month
		{2024, 36},
	}

	for _, tt := range tests {
		rec, err := lunar.Lookup(tt.year)
		if err != nil {
			t.Fatalf("Lookup(%d) error = %v", tt.year, err)
		}
		samples, err := generate(tt.year, rec)
		if err != nil {
			t.Fatalf("generate(%d) error = %v", tt.year, err)
		}
		if len(samples) != tt.wantCount {
			t.Errorf("generate(%d) = %d samples, want %d", tt.year, len(samples), tt.wantCount)
		}
		if samples[0].Gregorian != formatDate(rec.NewYear(tt.year)) {
			t.Errorf("first sample %s is not New Year", samples[0].Gregorian)
		}
	}
}

func TestGenerate_LeapMonth(t *testing.T) {
	rec, _ := lunar.Lookup(2023)
	samples, err := generate(2023, rec)
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}

	var leap []sampleDate
	for _, s := range samples {
		if s.Leap {
			leap = append(leap, s)
		}
	}
	if len(leap) != 3 {
		t.Fatalf("got %d leap samples, want 3", len(leap))
	}
	if leap[0].Gregorian != "2023-03-22" || leap[2].Gregorian != "2023-04-19" {
		t.Errorf("leap month spans %s..%s, want 2023-03-22..2023-04-19", leap[0].Gregorian, leap[2].Gregorian)
	}
	if leap[2].Day != 29 {
		t.Errorf("leap month last day = %d, want 29", leap[2].Day)
	}
}
