package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zapponejosh/lunar-api/internal/lunar"
)

// dategen prints sample dates for every month of a lunar year: the first,
// the fifteenth and the last day, leap month included. The output is meant
// for spot checks against the API or another almanac.

type sampleDate struct {
	Gregorian string `json:"gregorian"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Leap      bool   `json:"leap"`
	Text      string `json:"text"`
	Boundary  string `json:"boundary"`
}

func main() {
	year := flag.Int("year", 2025, "Lunar year to generate dates for")
	asJSON := flag.Bool("json", false, "Print samples as JSON")
	flag.Parse()

	rec, err := lunar.Lookup(*year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	samples, err := generate(*year, rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(samples); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(*year, rec, samples)
}

// generate walks the months of the year in calendar order.
func generate(year int, rec lunar.YearRecord) ([]sampleDate, error) {
	var samples []sampleDate

	for month := 1; month <= 12; month++ {
		statuses := []lunar.LeapStatus{lunar.NotLeap}
		if rec.LeapMonth == month {
			statuses = append(statuses, lunar.IsLeapMonth)
		}

		for _, leap := range statuses {
			length, err := lunar.MonthLength(year, month, leap)
			if err != nil {
				return nil, err
			}

			for _, pick := range []struct {
				day      int
				boundary string
			}{
				{1, "first"},
				{15, "middle"},
				{length, "last"},
			} {
				d, err := lunar.FromLunar(year, month, pick.day, leap)
				if err != nil {
					return nil, err
				}
				samples = append(samples, newSample(d, pick.boundary))
			}
		}
	}

	return samples, nil
}

func newSample(d lunar.LunarDate, boundary string) sampleDate {
	return sampleDate{
		Gregorian: formatDate(d.Gregorian()),
		Year:      d.Year(),
		Month:     d.Month(),
		Day:       d.Day(),
		Leap:      d.Leap().IsLeap(),
		Text:      d.YearName() + "年" + d.MonthName() + d.DayName(),
		Boundary:  boundary,
	}
}

func printReport(year int, rec lunar.YearRecord, samples []sampleDate) {
	fmt.Printf("=== Lunar Date Generator for %d ===\n\n", year)

	days, _ := lunar.YearLength(year)
	fmt.Println("Key Dates:")
	fmt.Printf("  New Year:      %s\n", formatDate(rec.NewYear(year)))
	if year < lunar.MaxYear {
		next, _ := lunar.Lookup(year + 1)
		fmt.Printf("  Next New Year: %s\n", formatDate(next.NewYear(year+1)))
	}
	if rec.LeapMonth > 0 {
		fmt.Printf("  Leap Month:    %s\n", lunar.MonthName(rec.LeapMonth, lunar.IsLeapMonth))
	} else {
		fmt.Println("  Leap Month:    none")
	}
	fmt.Printf("  Months:        %d\n", rec.MonthCount())
	fmt.Printf("  Days:          %d\n", days)
	fmt.Println()

	fmt.Println("Sample Dates:")
	for _, s := range samples {
		fmt.Printf("  %s  %-6s  %s\n", s.Gregorian, s.Boundary, s.Text)
	}
	fmt.Println()
	fmt.Printf("Total: %d dates\n", len(samples))
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
