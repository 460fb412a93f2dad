// Package lunar converts between the Gregorian calendar and the traditional
// Chinese lunisolar calendar for the years 1901 through 2100.
//
// Conversion is driven entirely by a precomputed table holding, for every
// supported lunar year, the leap month, the Gregorian date of the lunar New
// Year and a bitfield of month lengths. Nothing is computed astronomically.
package lunar

import (
	"fmt"
	"time"
)

// Supported range of lunar years.
const (
	MinYear = 1901
	MaxYear = 2100
)

const (
	maxSlots       = 16 // bits in YearRecord.MonthBits
	longMonthDays  = 30
	shortMonthDays = 29
)

// YearRecord describes the structure of one lunar year.
type YearRecord struct {
	// LeapMonth is the month that is doubled this year, or 0 if the year
	// has no leap month.
	LeapMonth int

	// NewYearMonth and NewYearDay give the Gregorian date of the first day
	// of the lunar year, in the Gregorian year of the same number.
	NewYearMonth time.Month
	NewYearDay   int

	// MonthBits has one bit per month slot, most significant bit first.
	// A set bit is a 30-day month, a clear bit a 29-day month.
	MonthBits uint16
}

// Lookup returns the record for a lunar year.
func Lookup(year int) (YearRecord, error) {
	if year < MinYear || year > MaxYear {
		return YearRecord{}, fmt.Errorf("lunar year %d: %w", year, ErrOutOfRange)
	}
	return years[year-MinYear], nil
}

// MonthLengths unpacks the record's bitfield into one 0/1 flag per slot,
// most significant bit first.
func MonthLengths(rec YearRecord) [maxSlots]int {
	var flags [maxSlots]int
	bits := rec.MonthBits
	for i := maxSlots - 1; i >= 0; i-- {
		flags[i] = int(bits & 1)
		bits >>= 1
	}
	return flags
}

// NewYear returns the Gregorian date of the record's lunar New Year.
func (r YearRecord) NewYear(year int) time.Time {
	return time.Date(year, r.NewYearMonth, r.NewYearDay, 0, 0, 0, 0, time.UTC)
}

// MonthCount returns the number of months in the year: 13 with a leap
// month, 12 otherwise.
func (r YearRecord) MonthCount() int {
	if r.LeapMonth != 0 {
		return 13
	}
	return 12
}

// DaysInSlot returns the length of the zero-based month slot.
func (r YearRecord) DaysInSlot(slot int) int {
	return slotDays(MonthLengths(r)[slot])
}

// DaysInYear returns the total number of days in the lunar year.
func (r YearRecord) DaysInYear() int {
	lengths := MonthLengths(r)
	total := 0
	for slot := 0; slot < r.MonthCount(); slot++ {
		total += slotDays(lengths[slot])
	}
	return total
}

func slotDays(flag int) int {
	if flag == 1 {
		return longMonthDays
	}
	return shortMonthDays
}
