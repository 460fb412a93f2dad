package lunar

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTableCoversRange(t *testing.T) {
	if got, want := len(years), MaxYear-MinYear+1; got != want {
		t.Fatalf("len(years) = %d, want %d", got, want)
	}
}

func TestLookup(t *testing.T) {
	rec, err := Lookup(2023)
	if err != nil {
		t.Fatalf("Lookup(2023) error = %v", err)
	}
	want := YearRecord{LeapMonth: 2, NewYearMonth: time.January, NewYearDay: 22, MonthBits: 0b0100110110101000}
	if diff := cmp.Diff(rec, want); diff != "" {
		t.Errorf("Lookup(2023) mismatch (-got +want):\n%s", diff)
	}

	for _, year := range []int{MinYear - 1, MaxYear + 1, 0, -5} {
		if _, err := Lookup(year); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Lookup(%d) error = %v, want ErrOutOfRange", year, err)
		}
	}
}

func TestMonthLengths(t *testing.T) {
	rec := YearRecord{MonthBits: 0b0100101011100000}
	got := MonthLengths(rec)
	want := [16]int{0, 1, 0, 0, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("MonthLengths() mismatch (-got +want):\n%s", diff)
	}
}

// Every year must end the day before the next year's New Year.
func TestTableConsistency(t *testing.T) {
	for year := MinYear; year < MaxYear; year++ {
		rec, _ := Lookup(year)
		next, _ := Lookup(year + 1)

		if rec.LeapMonth < 0 || rec.LeapMonth > 12 {
			t.Errorf("%d: leap month %d out of range", year, rec.LeapMonth)
		}

		lengths := MonthLengths(rec)
		for slot := rec.MonthCount(); slot < len(lengths); slot++ {
			if lengths[slot] != 0 {
				t.Errorf("%d: unused slot %d is set", year, slot)
			}
		}

		got := rec.NewYear(year).AddDate(0, 0, rec.DaysInYear())
		want := next.NewYear(year + 1)
		if !got.Equal(want) {
			t.Errorf("%d: year ends on %s, next New Year is %s",
				year, got.Format(time.DateOnly), want.Format(time.DateOnly))
		}
	}
}

func TestYearRecord_MonthCount(t *testing.T) {
	if n := (YearRecord{LeapMonth: 0}).MonthCount(); n != 12 {
		t.Errorf("MonthCount() without leap = %d, want 12", n)
	}
	if n := (YearRecord{LeapMonth: 4}).MonthCount(); n != 13 {
		t.Errorf("MonthCount() with leap = %d, want 13", n)
	}
}
