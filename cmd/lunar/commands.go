package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/zapponejosh/lunar-api/internal/database"
	"github.com/zapponejosh/lunar-api/internal/festival"
	"github.com/zapponejosh/lunar-api/internal/logger"
	"github.com/zapponejosh/lunar-api/internal/lunar"
)

// CLI defines the command-line interface for lunar.
type CLI struct {
	// Global flags
	Encoding string `name:"encoding" short:"e" enum:"utf-8,gb18030" default:"utf-8" help:"Output encoding (utf-8, gb18030)"`

	Convert   ConvertCmd   `cmd:"" help:"Convert a Gregorian date (YYYY-MM-DD) to the lunar calendar"`
	Reverse   ReverseCmd   `cmd:"" help:"Convert a lunar date to the Gregorian calendar"`
	Grid      GridCmd      `cmd:"" help:"Print a Gregorian month as a Sunday-first grid with lunar days"`
	Month     MonthCmd     `cmd:"" help:"List every day of a lunar month"`
	Festivals FestivalsCmd `cmd:"" help:"List festivals of a lunar year"`
}

// ConvertCmd converts Gregorian to lunar.
type ConvertCmd struct {
	Date string `arg:"" optional:"" help:"Gregorian date, YYYY-MM-DD (default today)"`
}

func (c *ConvertCmd) Run(out *Output) error {
	t := time.Now()
	if c.Date != "" {
		parsed, err := time.Parse(time.DateOnly, c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q, use YYYY-MM-DD", c.Date)
		}
		t = parsed
	}

	d, err := lunar.FromGregorian(t)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, d)
	return err
}

// ReverseCmd converts lunar to Gregorian.
type ReverseCmd struct {
	Year  int  `arg:"" help:"Lunar year"`
	Month int  `arg:"" help:"Lunar month, 1-12"`
	Day   int  `arg:"" help:"Lunar day, 1-30"`
	Leap  bool `short:"l" help:"The date is in the leap occurrence of the month"`
}

func (c *ReverseCmd) Run(out *Output) error {
	d, err := lunar.FromLunar(c.Year, c.Month, c.Day, leapStatus(c.Leap))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s %s\n", d.Gregorian().Format(time.DateOnly), d)
	return err
}

// GridCmd prints a month grid.
type GridCmd struct {
	Year  int `arg:"" help:"Gregorian year"`
	Month int `arg:"" help:"Gregorian month, 1-12"`
}

func (c *GridCmd) Run(out *Output) error {
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", c.Month)
	}
	g, err := lunar.MonthGrid(c.Year, time.Month(c.Month))
	if err != nil {
		return err
	}
	return writeGrid(out, g)
}

// MonthCmd lists a lunar month.
type MonthCmd struct {
	Year  int  `arg:"" help:"Lunar year"`
	Month int  `arg:"" help:"Lunar month, 1-12"`
	Leap  bool `short:"l" help:"List the leap occurrence of the month"`
}

func (c *MonthCmd) Run(out *Output) error {
	days, err := lunar.LunarMonth(c.Year, c.Month, leapStatus(c.Leap))
	if err != nil {
		return err
	}
	for _, d := range days {
		if _, err := fmt.Fprintf(out, "%s %s %s\n",
			d.Gregorian().Format(time.DateOnly),
			d.Gregorian().Weekday().String()[:3],
			d.DayName()); err != nil {
			return err
		}
	}
	return nil
}

// FestivalsCmd lists festivals resolved for a lunar year.
type FestivalsCmd struct {
	Year int    `arg:"" help:"Lunar year"`
	DB   string `name:"db" default:"data/lunar.db" help:"Path to SQLite database" type:"path"`
}

func (c *FestivalsCmd) Run(out *Output) error {
	ctx := context.Background()

	db, err := database.Open(database.DefaultConfig(c.DB), logger.Discard())
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	occurrences, err := festival.NewResolver(db).ResolveYear(ctx, c.Year)
	if err != nil {
		return err
	}
	return writeFestivals(out, occurrences)
}

func leapStatus(leap bool) lunar.LeapStatus {
	if leap {
		return lunar.IsLeapMonth
	}
	return lunar.NotLeap
}

var weekdayHeads = []string{"日", "一", "二", "三", "四", "五", "六"}

// writeGrid prints six weeks. Each cell shows the Gregorian day and the
// lunar day name, or the month name on the first day of a lunar month.
func writeGrid(w io.Writer, g lunar.Grid) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%d年%d月\n", g.Year, int(g.Month))
	fmt.Fprintln(tw, strings.Join(weekdayHeads, "\t")+"\t")

	for week := 0; week < lunar.GridWeeks; week++ {
		var row []string
		empty := true
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			cell := g.At(week, wd)
			if cell == nil {
				row = append(row, "")
				continue
			}
			empty = false
			row = append(row, fmt.Sprintf("%d %s", cell.Gregorian().Day(), cellLabel(*cell)))
		}
		if empty {
			continue
		}
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}

	return tw.Flush()
}

func cellLabel(d lunar.LunarDate) string {
	if d.Day() == 1 {
		return d.MonthName()
	}
	return d.DayName()
}

func writeFestivals(w io.Writer, occurrences []festival.Occurrence) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range occurrences {
		fmt.Fprintf(tw, "%s\t%s\t%s%s\n",
			o.Date.Gregorian().Format(time.DateOnly),
			o.Festival.Name,
			o.Date.MonthName(),
			o.Date.DayName(),
		)
	}
	return tw.Flush()
}
