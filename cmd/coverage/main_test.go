package main

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func inclusiveDays(sp span) int {
	return int(sp.end.Sub(sp.start).Hours()/24) + 1
}

func TestChunks(t *testing.T) {
	start, end := day(2024, 1, 1), day(2024, 12, 31)
	got := chunks(start, end)

	// 366 days: four full chunks and a remainder of six.
	if len(got) != 5 {
		t.Fatalf("got %d chunks, want 5", len(got))
	}
	if !got[0].start.Equal(start) || !got[len(got)-1].end.Equal(end) {
		t.Errorf("chunks span %s..%s, want %s..%s",
			got[0].start.Format(time.DateOnly), got[len(got)-1].end.Format(time.DateOnly),
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	total := 0
	for i, sp := range got {
		n := inclusiveDays(sp)
		if n > chunkDays {
			t.Errorf("chunk %d has %d days, limit %d", i, n, chunkDays)
		}
		if i > 0 && !sp.start.Equal(got[i-1].end.AddDate(0, 0, 1)) {
			t.Errorf("chunk %d starts %s, not the day after %s", i,
				sp.start.Format(time.DateOnly), got[i-1].end.Format(time.DateOnly))
		}
		total += n
	}
	if total != 366 {
		t.Errorf("chunks cover %d days, want 366", total)
	}
	if n := inclusiveDays(got[0]); n != chunkDays {
		t.Errorf("first chunk has %d days, want %d", n, chunkDays)
	}
}

func TestChunks_SingleDay(t *testing.T) {
	got := chunks(day(2024, 2, 10), day(2024, 2, 10))
	if len(got) != 1 || inclusiveDays(got[0]) != 1 {
		t.Errorf("chunks() = %+v, want one single-day span", got)
	}
}
