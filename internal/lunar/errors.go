package lunar

import "errors"

var (
	// ErrOutOfRange is returned when a year, month or day falls outside the
	// table's coverage or outside the bounds of the calendar.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidLeapMonth is returned when a leap month is requested for a
	// month that is not the leap month of that year.
	ErrInvalidLeapMonth = errors.New("not the leap month of the year")

	// ErrInternal is returned when the table and the arithmetic disagree.
	// It cannot happen with a well-formed table.
	ErrInternal = errors.New("internal calendar inconsistency")
)
