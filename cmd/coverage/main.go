// Command coverage walks every day of a span of Gregorian years through the
// API's range endpoint and compares each answer with the local conversion.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/zapponejosh/lunar-api/internal/api"
	"github.com/zapponejosh/lunar-api/internal/lunar"
)

// chunkDays is the API's range limit; both ends of a chunk count.
const chunkDays = api.MaxRangeDays

type span struct {
	start, end time.Time
}

// chunks splits start..end, both inclusive, into spans of at most chunkDays
// days.
func chunks(start, end time.Time) []span {
	var out []span
	for s := start; !s.After(end); s = s.AddDate(0, 0, chunkDays) {
		e := s.AddDate(0, 0, chunkDays-1)
		if e.After(end) {
			e = end
		}
		out = append(out, span{start: s, end: e})
	}
	return out
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

type rangeData struct {
	Days []api.LunarDateResponse `json:"days"`
}

// TestResult holds the result for a single date
type TestResult struct {
	Date      string `json:"date"`
	Success   bool   `json:"success"`
	Got       string `json:"got,omitempty"`
	Want      string `json:"want,omitempty"`
	MonthName string `json:"month_name,omitempty"`
	Error     string `json:"error,omitempty"`
}

// MonthStats tracks statistics per lunar month name, leap months apart.
type MonthStats struct {
	MonthName   string   `json:"month_name"`
	TotalDays   int      `json:"total_days"`
	SuccessDays int      `json:"success_days"`
	FailedDays  int      `json:"failed_days"`
	FailedDates []string `json:"failed_dates,omitempty"`
}

type YearStats struct {
	Year        int
	TotalDays   int
	SuccessDays int
	FailedDays  int
}

// Analysis holds the analyzed results
type Analysis struct {
	TotalDays    int
	TotalSuccess int
	TotalFailed  int
	ByYear       map[int]*YearStats
	ByMonth      map[string]*MonthStats
	AllFailures  []TestResult
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	startYear := flag.Int("start", 2024, "Start year")
	years := flag.Int("years", 4, "Number of years to test")
	verbose := flag.Bool("v", false, "Verbose output (show each chunk)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("Lunar API - Full Coverage Test")
	fmt.Println("================================================================")
	fmt.Printf("Base URL:    %s\n", *baseURL)
	fmt.Printf("Date Range:  %d-01-01 to %d-12-31\n", *startYear, endYear)
	fmt.Printf("Total Years: %d\n", *years)
	fmt.Println()

	// Check if server is reachable
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	start := time.Date(*startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)

	results := testAllDates(client, *baseURL, start, end, *verbose)
	analysis := analyzeResults(results)

	printSummary(analysis, *startYear, endYear)
	printFailuresByMonth(analysis)
	printAllFailures(analysis)

	if *outputFile != "" {
		saveResults(*outputFile, analysis)
	}

	if analysis.TotalFailed > 0 {
		os.Exit(1)
	}
}

func testAllDates(client *http.Client, baseURL string, start, end time.Time, verbose bool) []TestResult {
	totalDays := int(end.Sub(start).Hours()/24) + 1
	fmt.Printf("Testing %d days in chunks of %d...\n\n", totalDays, chunkDays)

	var results []TestResult
	failed := 0
	lastProgress := -1

	for _, sp := range chunks(start, end) {
		chunkStart, chunkEnd := sp.start, sp.end

		chunk := testChunk(client, baseURL, chunkStart, chunkEnd)
		for _, r := range chunk {
			if !r.Success {
				failed++
			}
		}
		results = append(results, chunk...)

		progress := (len(results) * 100) / totalDays
		if progress/10 != lastProgress/10 {
			fmt.Printf("  Progress: %d%% (%d/%d) - Failures: %d\n", progress, len(results), totalDays, failed)
			lastProgress = progress
		}

		if verbose {
			fmt.Printf("  %s .. %s: %d days\n",
				chunkStart.Format(time.DateOnly), chunkEnd.Format(time.DateOnly), len(chunk))
		}
	}

	fmt.Println()
	return results
}

// testChunk fetches one range and checks every day in it. A failed request
// marks each day of the chunk as failed with the same error.
func testChunk(client *http.Client, baseURL string, start, end time.Time) []TestResult {
	days, err := fetchRange(client, baseURL, start, end)

	var results []TestResult
	i := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		dateStr := current.Format(time.DateOnly)
		result := TestResult{Date: dateStr}

		want, wantErr := lunar.FromGregorian(current)
		switch {
		case err != nil:
			result.Error = err.Error()
		case wantErr != nil:
			result.Error = fmt.Sprintf("local conversion: %v", wantErr)
		case i >= len(days):
			result.Error = "missing from response"
		default:
			got := days[i]
			result.MonthName = want.MonthName()
			result.Got = fmt.Sprintf("%s %s", got.Gregorian, got.Text)
			result.Want = fmt.Sprintf("%s %s", dateStr, want.YearName()+"年"+want.MonthName()+want.DayName())
			result.Success = got.Gregorian == dateStr &&
				got.Year == want.Year() &&
				got.Month == want.Month() &&
				got.Day == want.Day() &&
				got.IsLeap == want.Leap().IsLeap() &&
				got.LeapStatus == want.Leap().String() &&
				result.Got == result.Want
			if !result.Success {
				result.Error = "mismatch"
			}
		}

		results = append(results, result)
		i++
	}
	return results
}

func fetchRange(client *http.Client, baseURL string, start, end time.Time) ([]api.LunarDateResponse, error) {
	q := url.Values{}
	q.Set("start", start.Format(time.DateOnly))
	q.Set("end", end.Format(time.DateOnly))

	resp, err := client.Get(baseURL + "/api/v1/lunar/range?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !env.Success {
		errMsg := "unknown error"
		if env.Error != nil {
			errMsg = env.Error.Code + ": " + env.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	var data rangeData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("data parse error: %w", err)
	}
	return data.Days, nil
}

func analyzeResults(results []TestResult) *Analysis {
	analysis := &Analysis{
		ByYear:  make(map[int]*YearStats),
		ByMonth: make(map[string]*MonthStats),
	}

	for _, r := range results {
		analysis.TotalDays++

		date, _ := time.Parse(time.DateOnly, r.Date)
		year := date.Year()

		if _, ok := analysis.ByYear[year]; !ok {
			analysis.ByYear[year] = &YearStats{Year: year}
		}
		analysis.ByYear[year].TotalDays++

		month := r.MonthName
		if month == "" {
			month = "(unresolved)"
		}
		if _, ok := analysis.ByMonth[month]; !ok {
			analysis.ByMonth[month] = &MonthStats{MonthName: month}
		}
		analysis.ByMonth[month].TotalDays++

		if r.Success {
			analysis.TotalSuccess++
			analysis.ByYear[year].SuccessDays++
			analysis.ByMonth[month].SuccessDays++
		} else {
			analysis.TotalFailed++
			analysis.ByYear[year].FailedDays++
			analysis.ByMonth[month].FailedDays++
			analysis.ByMonth[month].FailedDates = append(analysis.ByMonth[month].FailedDates, r.Date)
			analysis.AllFailures = append(analysis.AllFailures, r)
		}
	}

	return analysis
}

func printSummary(analysis *Analysis, startYear, endYear int) {
	fmt.Println("================================================================")
	fmt.Println("SUMMARY")
	fmt.Println("================================================================")
	fmt.Printf("Total Days Tested: %d\n", analysis.TotalDays)
	fmt.Printf("Matching:          %d (%.1f%%)\n", analysis.TotalSuccess,
		float64(analysis.TotalSuccess)/float64(analysis.TotalDays)*100)
	fmt.Printf("Failed:            %d (%.1f%%)\n", analysis.TotalFailed,
		float64(analysis.TotalFailed)/float64(analysis.TotalDays)*100)
	fmt.Println()

	fmt.Println("By Year:")
	for year := startYear; year <= endYear; year++ {
		stats, ok := analysis.ByYear[year]
		if !ok {
			continue
		}
		status := "✓"
		if stats.FailedDays > 0 {
			status = "✗"
		}
		leap := ""
		if rec, err := lunar.Lookup(year); err == nil && rec.LeapMonth > 0 {
			leap = fmt.Sprintf(", leap month %d", rec.LeapMonth)
		}
		fmt.Printf("  %s %d: %d/%d days%s\n", status, year, stats.SuccessDays, stats.TotalDays, leap)
	}
	fmt.Println()
}

func printFailuresByMonth(analysis *Analysis) {
	if analysis.TotalFailed == 0 {
		fmt.Println("No failures! 🎉")
		return
	}

	fmt.Println("================================================================")
	fmt.Println("FAILURES BY LUNAR MONTH")
	fmt.Println("================================================================")

	var months []*MonthStats
	for _, stats := range analysis.ByMonth {
		if stats.FailedDays > 0 {
			months = append(months, stats)
		}
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].FailedDays > months[j].FailedDays
	})

	for _, stats := range months {
		fmt.Printf("\n%s: %d failures\n", stats.MonthName, stats.FailedDays)
		for i, date := range stats.FailedDates {
			if i >= 5 {
				fmt.Printf("  ... and %d more\n", len(stats.FailedDates)-5)
				break
			}
			fmt.Printf("  - %s\n", date)
		}
	}
	fmt.Println()
}

func printAllFailures(analysis *Analysis) {
	if analysis.TotalFailed == 0 {
		return
	}

	if analysis.TotalFailed > 50 {
		fmt.Printf("(Showing first 50 of %d failures)\n\n", analysis.TotalFailed)
	}

	fmt.Println("================================================================")
	fmt.Println("ALL FAILURES (Date | Got | Want)")
	fmt.Println("================================================================")

	errorGroups := make(map[string][]TestResult)
	var order []string
	for _, f := range analysis.AllFailures {
		if _, ok := errorGroups[f.Error]; !ok {
			order = append(order, f.Error)
		}
		errorGroups[f.Error] = append(errorGroups[f.Error], f)
	}

	shown := 0
	for _, errorType := range order {
		failures := errorGroups[errorType]
		fmt.Printf("\nError: %s (%d occurrences)\n", errorType, len(failures))
		for _, f := range failures {
			if shown >= 50 {
				break
			}
			fmt.Printf("  %s | %s | %s\n", f.Date, f.Got, f.Want)
			shown++
		}
		if shown >= 50 {
			break
		}
	}
	fmt.Println()
}

func saveResults(filename string, analysis *Analysis) {
	output := struct {
		GeneratedAt string                 `json:"generated_at"`
		Summary     map[string]interface{} `json:"summary"`
		ByMonth     map[string]*MonthStats `json:"by_month"`
		Failures    []TestResult           `json:"failures"`
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summary: map[string]interface{}{
			"total_days":    analysis.TotalDays,
			"total_success": analysis.TotalSuccess,
			"total_failed":  analysis.TotalFailed,
			"success_rate":  fmt.Sprintf("%.2f%%", float64(analysis.TotalSuccess)/float64(analysis.TotalDays)*100),
		},
		ByMonth:  analysis.ByMonth,
		Failures: analysis.AllFailures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling results: %v\n", err)
		return
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		return
	}

	fmt.Printf("Results saved to: %s\n", filename)
}
