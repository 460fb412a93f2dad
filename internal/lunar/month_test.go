package lunar

import (
	"errors"
	"testing"
	"time"
)

func TestMonthGrid(t *testing.T) {
	grid, err := MonthGrid(2024, time.February)
	if err != nil {
		t.Fatalf("MonthGrid() error = %v", err)
	}

	// 1 February 2024 is a Thursday.
	for i := 0; i < 4; i++ {
		if grid.Cells[i] != nil {
			t.Errorf("Cells[%d] = %v, want nil before the first day", i, grid.Cells[i])
		}
	}
	first := grid.Cells[4]
	if first == nil || !first.Gregorian().Equal(date(2024, 2, 1)) {
		t.Fatalf("Cells[4] = %v, want 2024-02-01", first)
	}
	if first.Year() != 2023 || first.Month() != 12 || first.Day() != 22 {
		t.Errorf("Cells[4] = %d-%d-%d, want 2023-12-22", first.Year(), first.Month(), first.Day())
	}

	newYear := grid.At(1, time.Saturday)
	if newYear == nil || newYear.Month() != 1 || newYear.Day() != 1 {
		t.Errorf("At(1, Saturday) = %v, want lunar new year", newYear)
	}

	last := grid.Cells[4+28]
	if last == nil || !last.Gregorian().Equal(date(2024, 2, 29)) {
		t.Errorf("Cells[32] = %v, want 2024-02-29", last)
	}
	for i := 33; i < GridCells; i++ {
		if grid.Cells[i] != nil {
			t.Errorf("Cells[%d] = %v, want nil after the last day", i, grid.Cells[i])
		}
	}

	if n := len(grid.Days()); n != 29 {
		t.Errorf("len(Days()) = %d, want 29", n)
	}
	if grid.At(6, time.Sunday) != nil || grid.At(0, time.Weekday(7)) != nil {
		t.Error("At() outside the grid should be nil")
	}
}

func TestMonthGrid_PartiallyCovered(t *testing.T) {
	grid, err := MonthGrid(1901, time.February)
	if err != nil {
		t.Fatalf("MonthGrid(1901, February) error = %v", err)
	}

	// 1 February 1901 is a Friday; lunar coverage starts on the 19th.
	days := grid.Days()
	if len(days) != 10 {
		t.Fatalf("len(Days()) = %d, want 10", len(days))
	}
	if grid.Cells[5+17] != nil {
		t.Errorf("Cells[22] = %v, want nil before 1901-02-19", grid.Cells[22])
	}
	if c := grid.Cells[5+18]; c == nil || c.Year() != 1901 || c.Month() != 1 || c.Day() != 1 {
		t.Errorf("Cells[23] = %v, want 1901-1-1", c)
	}

	grid, err = MonthGrid(1901, time.January)
	if err != nil {
		t.Fatalf("MonthGrid(1901, January) error = %v", err)
	}
	if n := len(grid.Days()); n != 0 {
		t.Errorf("len(Days()) = %d, want 0", n)
	}
}

func TestMonthGrid_OutOfRange(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
	}{
		{1900, time.December},
		{2101, time.January},
		{2024, 0},
		{2024, 13},
	}
	for _, tt := range tests {
		if _, err := MonthGrid(tt.year, tt.month); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("MonthGrid(%d, %d) error = %v, want ErrOutOfRange", tt.year, tt.month, err)
		}
	}
}

func TestGregorianMonth(t *testing.T) {
	days, err := GregorianMonth(2024, time.February)
	if err != nil {
		t.Fatalf("GregorianMonth() error = %v", err)
	}
	if len(days) != 29 {
		t.Fatalf("len(days) = %d, want 29", len(days))
	}
	for i, d := range days {
		if want := date(2024, 2, i+1); !d.Gregorian().Equal(want) {
			t.Errorf("days[%d] = %s, want %s", i, d.Gregorian().Format(time.DateOnly), want.Format(time.DateOnly))
		}
	}

	if _, err := GregorianMonth(1901, time.February); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GregorianMonth(1901, February) error = %v, want ErrOutOfRange", err)
	}
}

func TestLunarMonth(t *testing.T) {
	days, err := LunarMonth(2023, 2, IsLeapMonth)
	if err != nil {
		t.Fatalf("LunarMonth() error = %v", err)
	}
	if len(days) != 29 {
		t.Fatalf("len(days) = %d, want 29", len(days))
	}
	if !days[0].Gregorian().Equal(date(2023, 3, 22)) {
		t.Errorf("days[0] = %s, want 2023-03-22", days[0].Gregorian().Format(time.DateOnly))
	}
	for i, d := range days {
		if d.Day() != i+1 || d.Leap() != IsLeapMonth || d.MonthName() != "闰二月" {
			t.Errorf("days[%d] = %v", i, d)
		}
	}

	if _, err := LunarMonth(2024, 2, IsLeapMonth); !errors.Is(err, ErrInvalidLeapMonth) {
		t.Errorf("LunarMonth(2024, 2, IsLeapMonth) error = %v, want ErrInvalidLeapMonth", err)
	}
}
