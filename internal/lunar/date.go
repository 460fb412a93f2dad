package lunar

import (
	"fmt"
	"time"
)

// maxLunarMonth is the largest month number accepted before the year's
// structure is consulted.
const maxLunarMonth = 13

// LeapStatus tells whether a lunar date falls in the inserted leap month.
type LeapStatus int

const (
	// NotLeap is a regular month.
	NotLeap LeapStatus = iota

	// LeapPreceding marks the regular month whose number the leap month
	// repeats. It is accepted on input, where it behaves like NotLeap, and
	// is never produced by a conversion.
	LeapPreceding

	// IsLeapMonth is the inserted leap month itself.
	IsLeapMonth
)

// String renders the status the way Chinese almanacs label it.
func (s LeapStatus) String() string {
	if s == IsLeapMonth {
		return "闰月"
	}
	return "非闰月"
}

func (s LeapStatus) valid() bool {
	return s >= NotLeap && s <= IsLeapMonth
}

// IsLeap reports whether s denotes the inserted leap month.
func (s LeapStatus) IsLeap() bool {
	return s == IsLeapMonth
}

// LunarDate is a resolved day of the lunar calendar together with its
// Gregorian equivalent. The zero value is not a valid date; obtain one
// from FromGregorian or FromLunar.
type LunarDate struct {
	year  int
	month int
	day   int
	leap  LeapStatus

	gregorian time.Time
	record    YearRecord

	yearName  string
	monthName string
	dayName   string
}

// FromGregorian converts a Gregorian calendar day to the lunar calendar.
// Only the calendar date of t, in t's own location, is used.
func FromGregorian(t time.Time) (LunarDate, error) {
	date := truncateDay(t)
	year := date.Year()
	if year < MinYear || year > MaxYear {
		return LunarDate{}, fmt.Errorf("gregorian year %d: %w", year, ErrOutOfRange)
	}

	rec, err := Lookup(year)
	if err != nil {
		return LunarDate{}, err
	}
	newYear := rec.NewYear(year)

	// Before the lunar New Year the day still belongs to the previous
	// lunar year.
	if date.Before(newYear) {
		year--
		if rec, err = Lookup(year); err != nil {
			return LunarDate{}, fmt.Errorf("%s precedes the first lunar year: %w",
				date.Format(time.DateOnly), ErrOutOfRange)
		}
	}

	return resolve(date, year, rec)
}

// resolve places date, which must not precede the New Year of rec, inside
// the lunar year described by rec.
func resolve(date time.Time, year int, rec YearRecord) (LunarDate, error) {
	slot, day, err := locate(rec, daysBetween(rec.NewYear(year), date))
	if err != nil {
		return LunarDate{}, fmt.Errorf("convert %s: %w", date.Format(time.DateOnly), err)
	}

	month, leap := ordinalMonth(rec, slot)
	return newLunarDate(year, month, day, leap, date, rec), nil
}

// FromLunar converts a lunar date to the Gregorian calendar. month is the
// ordinal month number; the leap month shares its number with the month
// before it and is selected with IsLeapMonth.
func FromLunar(year, month, day int, leap LeapStatus) (LunarDate, error) {
	if year < MinYear || year > MaxYear ||
		month < 1 || month > maxLunarMonth ||
		day < 1 || day > longMonthDays {
		return LunarDate{}, fmt.Errorf("lunar date %d-%d-%d: %w", year, month, day, ErrOutOfRange)
	}

	rec, err := Lookup(year)
	if err != nil {
		return LunarDate{}, err
	}

	slot, err := slotOf(rec, month, leap)
	if err != nil {
		return LunarDate{}, fmt.Errorf("lunar year %d: %w", year, err)
	}

	lengths := MonthLengths(rec)
	if day > slotDays(lengths[slot]) {
		return LunarDate{}, fmt.Errorf("lunar date %d-%d-%d: month has %d days: %w",
			year, month, day, slotDays(lengths[slot]), ErrOutOfRange)
	}

	offset := day - 1
	for i := 0; i < slot; i++ {
		offset += slotDays(lengths[i])
	}

	if leap == LeapPreceding {
		leap = NotLeap
	}
	date := rec.NewYear(year).AddDate(0, 0, offset)
	return newLunarDate(year, month, day, leap, date, rec), nil
}

// MonthLength returns the number of days in a lunar month.
func MonthLength(year, month int, leap LeapStatus) (int, error) {
	rec, err := Lookup(year)
	if err != nil {
		return 0, err
	}
	slot, err := slotOf(rec, month, leap)
	if err != nil {
		return 0, fmt.Errorf("lunar year %d: %w", year, err)
	}
	return rec.DaysInSlot(slot), nil
}

// YearLength returns the number of days in a lunar year.
func YearLength(year int) (int, error) {
	rec, err := Lookup(year)
	if err != nil {
		return 0, err
	}
	return rec.DaysInYear(), nil
}

// locate walks the month slots of a year and returns the zero-based slot
// and the one-based day reached after the given number of days.
func locate(rec YearRecord, days int) (slot, day int, err error) {
	lengths := MonthLengths(rec)
	for slot = 0; slot < maxSlots; slot++ {
		n := slotDays(lengths[slot])
		if days < n {
			return slot, days + 1, nil
		}
		days -= n
	}
	return 0, 0, fmt.Errorf("%d days left after the last month slot: %w", days, ErrInternal)
}

// ordinalMonth maps a zero-based slot to the month number and leap status
// shown to callers.
func ordinalMonth(rec YearRecord, slot int) (int, LeapStatus) {
	switch {
	case rec.LeapMonth == 0 || slot < rec.LeapMonth:
		return slot + 1, NotLeap
	case slot == rec.LeapMonth:
		return rec.LeapMonth, IsLeapMonth
	default:
		return slot, NotLeap
	}
}

// slotOf is the inverse of ordinalMonth.
func slotOf(rec YearRecord, month int, leap LeapStatus) (int, error) {
	if !leap.valid() {
		return 0, fmt.Errorf("leap status %d: %w", int(leap), ErrOutOfRange)
	}
	if leap == IsLeapMonth {
		if rec.LeapMonth == 0 || month != rec.LeapMonth {
			return 0, fmt.Errorf("month %d: %w", month, ErrInvalidLeapMonth)
		}
		return rec.LeapMonth, nil
	}

	slot := month - 1
	if rec.LeapMonth != 0 && month > rec.LeapMonth {
		slot++
	}
	if slot < 0 || slot >= rec.MonthCount() {
		return 0, fmt.Errorf("month %d: %w", month, ErrOutOfRange)
	}
	return slot, nil
}

func newLunarDate(year, month, day int, leap LeapStatus, gregorian time.Time, rec YearRecord) LunarDate {
	return LunarDate{
		year:      year,
		month:     month,
		day:       day,
		leap:      leap,
		gregorian: gregorian,
		record:    rec,
		yearName:  YearName(year),
		monthName: MonthName(month, leap),
		dayName:   DayName(day),
	}
}

// Year returns the lunar year, numbered after the Gregorian year in which
// it began.
func (d LunarDate) Year() int { return d.year }

// Month returns the ordinal lunar month, 1 through 12.
func (d LunarDate) Month() int { return d.month }

// Day returns the day of the lunar month, 1 through 30.
func (d LunarDate) Day() int { return d.day }

// Leap returns the leap status of the date's month.
func (d LunarDate) Leap() LeapStatus { return d.leap }

// Gregorian returns the equivalent Gregorian day at midnight UTC.
func (d LunarDate) Gregorian() time.Time { return d.gregorian }

// Record returns the table entry of the date's lunar year.
func (d LunarDate) Record() YearRecord { return d.record }

// YearName returns the year in Chinese numerals, e.g. "二零二四".
func (d LunarDate) YearName() string { return d.yearName }

// MonthName returns the month name, e.g. "正月" or "闰二月".
func (d LunarDate) MonthName() string { return d.monthName }

// DayName returns the day name, e.g. "初一".
func (d LunarDate) DayName() string { return d.dayName }

// IsZero reports whether d is the zero value.
func (d LunarDate) IsZero() bool { return d.year == 0 }

// PrecedesLeap reports whether d lies in the regular month whose number
// the year's leap month repeats.
func (d LunarDate) PrecedesLeap() bool {
	return d.leap == NotLeap && d.record.LeapMonth != 0 && d.month == d.record.LeapMonth
}

// AddDays returns the lunar date n days after d. n may be negative.
func (d LunarDate) AddDays(n int) (LunarDate, error) {
	return FromGregorian(d.gregorian.AddDate(0, 0, n))
}

// String renders d as the Chinese date followed by its numeric form and
// the Gregorian date.
func (d LunarDate) String() string {
	return fmt.Sprintf("%s年%s%s (%d-%d-%d %s) %s",
		d.yearName, d.monthName, d.dayName,
		d.year, d.month, d.day, d.leap,
		d.gregorian.Format(time.DateOnly))
}

// truncateDay returns midnight UTC of t's calendar date.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b; both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
