package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// runCLI parses args and runs the selected command, returning raw output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("lunar"), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", args, err)
	}

	var buf bytes.Buffer
	out, err := NewOutput(&buf, cli.Encoding)
	if err != nil {
		t.Fatalf("NewOutput() error = %v", err)
	}
	runErr := ctx.Run(out)
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return buf.String(), runErr
}

func TestConvert(t *testing.T) {
	got, err := runCLI(t, "convert", "2023-03-22")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	want := "二零二三年闰二月初一 (2023-2-1 闰月) 2023-03-22\n"
	if got != want {
		t.Errorf("convert = %q, want %q", got, want)
	}

	if _, err := runCLI(t, "convert", "1900-01-01"); err == nil {
		t.Error("convert 1900-01-01 error = nil, want out of range")
	}
}

func TestReverse(t *testing.T) {
	got, err := runCLI(t, "reverse", "2025", "6", "1", "--leap")
	if err != nil {
		t.Fatalf("reverse error = %v", err)
	}
	if !strings.HasPrefix(got, "2025-07-25 ") {
		t.Errorf("reverse = %q, want 2025-07-25 prefix", got)
	}

	if _, err := runCLI(t, "reverse", "2024", "6", "1", "--leap"); err == nil {
		t.Error("reverse of missing leap month error = nil")
	}
}

func TestGrid(t *testing.T) {
	got, err := runCLI(t, "grid", "2024", "2")
	if err != nil {
		t.Fatalf("grid error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if lines[0] != "2024年2月" {
		t.Errorf("title = %q", lines[0])
	}
	// Five weeks hold February 2024; the empty sixth row is skipped.
	if len(lines) != 7 {
		t.Errorf("got %d lines, want 7:\n%s", len(lines), got)
	}
	// Feb 10 is the lunar New Year, shown by month name.
	if !strings.Contains(got, "10 正月") {
		t.Errorf("grid lacks New Year cell:\n%s", got)
	}
	if !strings.Contains(got, "1 廿二") {
		t.Errorf("grid lacks Feb 1 cell:\n%s", got)
	}
}

func TestMonth(t *testing.T) {
	got, err := runCLI(t, "month", "2023", "2", "--leap")
	if err != nil {
		t.Fatalf("month error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 29 {
		t.Fatalf("got %d days, want 29", len(lines))
	}
	if lines[0] != "2023-03-22 Wed 初一" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestFestivals(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lunar.db")

	got, err := runCLI(t, "festivals", "2024", "--db", db)
	if err != nil {
		t.Fatalf("festivals error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d festivals, want 11:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "2024-02-10") || !strings.Contains(lines[0], "春节") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestEncodingGB18030(t *testing.T) {
	got, err := runCLI(t, "--encoding", "gb18030", "convert", "2024-02-10")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	if strings.Contains(got, "正月") {
		t.Error("output still contains UTF-8 text")
	}
	decoded, err := simplifiedchinese.GB18030.NewDecoder().String(got)
	if err != nil {
		t.Fatalf("decode GB18030: %v", err)
	}
	if !strings.HasPrefix(decoded, "二零二四年正月初一") {
		t.Errorf("decoded output = %q", decoded)
	}
}

func TestNewOutput_UnknownEncoding(t *testing.T) {
	if _, err := NewOutput(&bytes.Buffer{}, "big5"); err == nil {
		t.Error("NewOutput(big5) error = nil")
	}
}
