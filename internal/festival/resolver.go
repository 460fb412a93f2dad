// Package festival resolves stored lunar festivals to Gregorian dates.
package festival

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/zapponejosh/lunar-api/internal/database"
	"github.com/zapponejosh/lunar-api/internal/lunar"
)

// Occurrence is a festival pinned to a concrete day of one lunar year.
type Occurrence struct {
	Festival database.Festival
	Date     lunar.LunarDate
}

// Store is the subset of the database the resolver reads from.
// *database.DB satisfies it.
type Store interface {
	ListFestivals(ctx context.Context) ([]database.Festival, error)
}

// Resolver computes where festivals fall in a given year.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver reading festival definitions from store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveYear returns every festival that occurs in lunar year year, in
// Gregorian order.
//
// A leap festival is skipped in years whose leap month differs, and a
// festival on day 30 is skipped when its month has only 29 days.
func (r *Resolver) ResolveYear(ctx context.Context, year int) ([]Occurrence, error) {
	if _, err := lunar.Lookup(year); err != nil {
		return nil, err
	}

	festivals, err := r.store.ListFestivals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list festivals: %w", err)
	}

	occurrences := make([]Occurrence, 0, len(festivals))
	for _, f := range festivals {
		date, ok, err := Locate(f, year)
		if err != nil {
			return nil, err
		}
		if ok {
			occurrences = append(occurrences, Occurrence{Festival: f, Date: date})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Date.Gregorian().Before(occurrences[j].Date.Gregorian())
	})
	return occurrences, nil
}

// OnDate returns the festivals falling on the Gregorian date of t.
func (r *Resolver) OnDate(ctx context.Context, t time.Time) ([]database.Festival, error) {
	date, err := lunar.FromGregorian(t)
	if err != nil {
		return nil, err
	}

	festivals, err := r.store.ListFestivals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list festivals: %w", err)
	}

	var matches []database.Festival
	for _, f := range festivals {
		if Matches(f, date) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// Locate converts a festival's lunar position in year to a date. ok is false
// when the position does not exist that year.
func Locate(f database.Festival, year int) (date lunar.LunarDate, ok bool, err error) {
	leap := lunar.NotLeap
	if f.IsLeap {
		leap = lunar.IsLeapMonth
	}

	day := f.LunarDay
	if f.IsLastDay() {
		day, err = lunar.MonthLength(year, f.LunarMonth, leap)
		if errors.Is(err, lunar.ErrInvalidLeapMonth) {
			return lunar.LunarDate{}, false, nil
		}
		if err != nil {
			return lunar.LunarDate{}, false, fmt.Errorf("festival %q: %w", f.Name, err)
		}
	}

	date, err = lunar.FromLunar(year, f.LunarMonth, day, leap)
	switch {
	case err == nil:
		return date, true, nil
	case errors.Is(err, lunar.ErrInvalidLeapMonth):
		return lunar.LunarDate{}, false, nil
	case errors.Is(err, lunar.ErrOutOfRange) && day == 30:
		return lunar.LunarDate{}, false, nil
	default:
		return lunar.LunarDate{}, false, fmt.Errorf("festival %q: %w", f.Name, err)
	}
}

// Matches reports whether festival f falls on date.
func Matches(f database.Festival, date lunar.LunarDate) bool {
	if f.LunarMonth != date.Month() || f.IsLeap != date.Leap().IsLeap() {
		return false
	}
	if f.IsLastDay() {
		n, err := lunar.MonthLength(date.Year(), date.Month(), date.Leap())
		return err == nil && date.Day() == n
	}
	return f.LunarDay == date.Day()
}
