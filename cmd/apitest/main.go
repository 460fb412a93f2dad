// Command apitest runs smoke tests against a running lunar API server.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/lunar-api/internal/api"
)

// =============================================================================
// Response Types
// =============================================================================

// envelope matches api.Response with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
	Years  []int  `json:"years"`
}

// RangeResponse is the response for /api/v1/lunar/range
type RangeResponse struct {
	Start string                  `json:"start"`
	End   string                  `json:"end"`
	Days  []api.LunarDateResponse `json:"days"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Lunar API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testToday()
	tr.testKnownDates()
	tr.testReverse()
	tr.testRange()
	tr.testCalendar()
	tr.testFestivals()
	tr.testEdgeCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess(fmt.Sprintf("Health check passed (years %v)", health.Years))
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	var d api.LunarDateResponse
	if err := tr.getData("/api/v1/lunar/today", &d); err != nil {
		tr.recordError("Today", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Today %s is %s", d.Gregorian, d.Text))
	tr.printDateDetail(d)
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	cases := []struct {
		date string
		text string
		leap bool
	}{
		{"2024-02-10", "二零二四年正月初一", false},
		{"2024-02-09", "二零二三年腊月三十", false},
		{"2023-03-22", "二零二三年闰二月初一", true},
		{"2023-04-20", "二零二三年三月初一", false},
		{"2024-09-17", "二零二四年八月十五", false},
		{"1901-02-19", "一九零一年正月初一", false},
	}

	for _, c := range cases {
		var d api.LunarDateResponse
		if err := tr.getData("/api/v1/lunar/date/"+c.date, &d); err != nil {
			tr.recordError(c.date, err.Error())
			continue
		}
		if d.Text != c.text || d.IsLeap != c.leap {
			tr.recordError(c.date, fmt.Sprintf("got %s (leap=%v), want %s (leap=%v)", d.Text, d.IsLeap, c.text, c.leap))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s → %s", c.date, d.Text))
		tr.printDateDetail(d)
	}
}

func (tr *TestRunner) testReverse() {
	tr.printSection("Lunar to Gregorian")

	cases := []struct {
		query string
		want  string
	}{
		{"year=2025&month=6&day=1&leap=true", "2025-07-25"},
		{"year=2025&month=7&day=1", "2025-08-23"},
		{"year=2023&month=2&day=29&leap=true", "2023-04-19"},
	}

	for _, c := range cases {
		var d api.LunarDateResponse
		if err := tr.getData("/api/v1/gregorian?"+c.query, &d); err != nil {
			tr.recordError(c.query, err.Error())
			continue
		}
		if d.Gregorian != c.want {
			tr.recordError(c.query, fmt.Sprintf("got %s, want %s", d.Gregorian, c.want))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s → %s", c.query, d.Gregorian))
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Date Range")

	var r RangeResponse
	if err := tr.getData("/api/v1/lunar/range?start=2023-03-20&end=2023-04-22", &r); err != nil {
		tr.recordError("Range", err.Error())
		return
	}
	if len(r.Days) != 34 {
		tr.recordError("Range", fmt.Sprintf("got %d days, want 34", len(r.Days)))
		return
	}

	leapDays := 0
	for _, d := range r.Days {
		if d.IsLeap {
			leapDays++
		}
	}
	if leapDays != 29 {
		tr.recordError("Range", fmt.Sprintf("got %d leap days, want 29", leapDays))
		return
	}
	tr.recordSuccess("Range across the 2023 leap month")
}

func (tr *TestRunner) testCalendar() {
	tr.printSection("Month Grid")

	var g api.GridResponse
	if err := tr.getData("/api/v1/calendar/2024/2", &g); err != nil {
		tr.recordError("Grid", err.Error())
		return
	}

	first := g.Weeks[0][time.Thursday]
	if first == nil || first.Gregorian != "2024-02-01" {
		tr.recordError("Grid", "Feb 1 2024 is not on Thursday of the first week")
		return
	}
	tr.recordSuccess(fmt.Sprintf("Grid %d-%02d starts %s (%s)", g.Year, g.Month, first.Gregorian, first.Text))
}

func (tr *TestRunner) testFestivals() {
	tr.printSection("Festivals")

	var resp struct {
		Year      int                              `json:"year"`
		Festivals []api.FestivalOccurrenceResponse `json:"festivals"`
	}
	if err := tr.getData("/api/v1/festivals?year=2024", &resp); err != nil {
		tr.recordError("Festivals", err.Error())
		return
	}
	if len(resp.Festivals) == 0 {
		tr.recordError("Festivals", "no festivals resolved for 2024")
		return
	}

	tr.recordSuccess(fmt.Sprintf("%d festivals in lunar year %d", len(resp.Festivals), resp.Year))
	if tr.verbose {
		for _, f := range resp.Festivals {
			fmt.Printf("    %s  %s\n", f.Date.Gregorian, f.Festival.Name)
		}
		fmt.Println()
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/v1/lunar/date/1901-02-18", http.StatusBadRequest, api.CodeOutOfRange},
		{"/api/v1/lunar/date/2101-01-01", http.StatusBadRequest, api.CodeOutOfRange},
		{"/api/v1/lunar/date/2024-13-01", http.StatusBadRequest, api.CodeBadRequest},
		{"/api/v1/gregorian?year=2024&month=6&day=1&leap=true", http.StatusBadRequest, api.CodeInvalidLeapMonth},
		{"/api/v1/gregorian?year=2024&month=12&day=30", http.StatusBadRequest, api.CodeOutOfRange},
		{"/api/v1/lunar/range?start=2024-01-01&end=2024-12-31", http.StatusBadRequest, api.CodeBadRequest},
	}

	for _, c := range cases {
		status, env, err := tr.fetch(c.path)
		if err != nil {
			tr.recordError(c.path, err.Error())
			continue
		}
		if status != c.status || env.Error == nil || env.Error.Code != c.code {
			got := ""
			if env.Error != nil {
				got = env.Error.Code
			}
			tr.recordError(c.path, fmt.Sprintf("got %d %s, want %d %s", status, got, c.status, c.code))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s → %d %s", c.path, status, c.code))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

// fetch performs a GET and decodes the envelope whatever the status.
func (tr *TestRunner) fetch(path string) (int, *envelope, error) {
	resp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read error: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, nil, fmt.Errorf("parse error: %w", err)
	}
	return resp.StatusCode, &env, nil
}

// getData performs a GET that must succeed and decodes its payload.
func (tr *TestRunner) getData(path string, target interface{}) error {
	_, env, err := tr.fetch(path)
	if err != nil {
		return err
	}

	if !env.Success {
		errMsg := "unknown error"
		if env.Error != nil {
			errMsg = env.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}

	return json.Unmarshal(env.Data, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printDateDetail(d api.LunarDateResponse) {
	if !tr.verbose {
		return
	}
	fmt.Printf("    %s %s, %d/%d/%d %s\n", d.Gregorian, d.Weekday, d.Year, d.Month, d.Day, d.LeapStatus)
	if len(d.Festivals) > 0 {
		fmt.Printf("    Festivals: %v\n", d.Festivals)
	}
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show date details)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
