package lunar

import (
	"errors"
	"fmt"
	"time"
)

// Month grid dimensions: six Sunday-first weeks.
const (
	GridWeeks = 6
	GridCells = GridWeeks * 7
)

// Grid lays out one Gregorian month as a wall calendar. Cells outside the
// month, and days the table does not cover, are nil.
type Grid struct {
	Year  int
	Month time.Month
	Cells [GridCells]*LunarDate
}

// At returns the cell in the given zero-based week and weekday column.
func (g *Grid) At(week int, weekday time.Weekday) *LunarDate {
	if week < 0 || week >= GridWeeks || weekday < time.Sunday || weekday > time.Saturday {
		return nil
	}
	return g.Cells[week*7+int(weekday)]
}

// Days returns the non-empty cells in order.
func (g *Grid) Days() []LunarDate {
	days := make([]LunarDate, 0, 31)
	for _, c := range g.Cells {
		if c != nil {
			days = append(days, *c)
		}
	}
	return days
}

// MonthGrid converts every day of a Gregorian month and places it on a
// 6x7 grid. Days before the first lunar New Year in the table are left
// empty rather than failing the whole month.
func MonthGrid(year int, month time.Month) (Grid, error) {
	if err := checkGregorianMonth(year, month); err != nil {
		return Grid{}, err
	}

	grid := Grid{Year: year, Month: month}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())

	for i, n := 0, daysIn(year, month); i < n; i++ {
		d, err := FromGregorian(first.AddDate(0, 0, i))
		if errors.Is(err, ErrOutOfRange) {
			continue
		}
		if err != nil {
			return Grid{}, err
		}
		grid.Cells[lead+i] = &d
	}
	return grid, nil
}

// GregorianMonth converts every day of a Gregorian month, in order. It
// fails if any day of the month lies outside the table.
func GregorianMonth(year int, month time.Month) ([]LunarDate, error) {
	if err := checkGregorianMonth(year, month); err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n := daysIn(year, month)
	days := make([]LunarDate, 0, n)
	for i := 0; i < n; i++ {
		d, err := FromGregorian(first.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// LunarMonth returns every day of a lunar month, in order.
func LunarMonth(year, month int, leap LeapStatus) ([]LunarDate, error) {
	n, err := MonthLength(year, month, leap)
	if err != nil {
		return nil, err
	}

	days := make([]LunarDate, 0, n)
	for day := 1; day <= n; day++ {
		d, err := FromLunar(year, month, day, leap)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func checkGregorianMonth(year int, month time.Month) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("gregorian year %d: %w", year, ErrOutOfRange)
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("gregorian month %d: %w", month, ErrOutOfRange)
	}
	return nil
}

// daysIn returns the number of days in a Gregorian month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
