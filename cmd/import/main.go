// Command import loads festival definitions from JSON into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -json data/festivals.json -db data/lunar.db
//
// This tool:
// 1. Parses and validates the JSON file
// 2. Creates/opens the SQLite database
// 3. Runs migrations to ensure schema is current
// 4. Imports all festivals in a single transaction
// 5. Prints where each festival falls in the chosen lunar year
//
// Without -replace, a festival whose name already exists aborts the whole
// import and nothing is written.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zapponejosh/lunar-api/internal/database"
	"github.com/zapponejosh/lunar-api/internal/festival"
	"github.com/zapponejosh/lunar-api/internal/lunar"
)

func main() {
	// Parse command line flags
	jsonPath := flag.String("json", "data/festivals.json", "Path to festival JSON file")
	dbPath := flag.String("db", "data/lunar.db", "Path to SQLite database")
	replace := flag.Bool("replace", false, "Replace festivals with the same name")
	year := flag.Int("year", time.Now().Year(), "Lunar year used for the summary")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*jsonPath, *dbPath, *replace, *year, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(jsonPath, dbPath string, replace bool, year int, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read, parse and validate JSON
	// =========================================================================
	logger.Info("reading JSON file", slog.String("path", jsonPath))

	importData, err := readImportFile(jsonPath)
	if err != nil {
		return err
	}

	logger.Info("parsed JSON",
		slog.Int("festivals", len(importData.Festivals)),
		slog.String("source", importData.Metadata.Source),
		slog.String("generated_at", importData.Metadata.GeneratedAt),
	)

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Import data in a transaction
	// =========================================================================
	festivals := make([]database.Festival, len(importData.Festivals))
	for i, f := range importData.Festivals {
		festivals[i] = f.Festival()
	}

	imported, err := db.ImportFestivals(ctx, festivals, replace)
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	// =========================================================================
	// Step 4: Verify import
	// =========================================================================
	occurrences, err := festival.NewResolver(db).ResolveYear(ctx, year)
	if err != nil {
		return fmt.Errorf("resolve festivals for %d: %w", year, err)
	}

	elapsed := time.Since(startTime)
	logger.Info("import verified",
		slog.Int("imported", imported),
		slog.Int("resolved", len(occurrences)),
		slog.Duration("elapsed", elapsed),
	)

	// Print summary
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Festivals imported:  %d\n", imported)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))
	fmt.Println()
	fmt.Printf("=== Festivals in lunar year %d (%s) ===\n", year, lunar.YearName(year))
	for _, o := range occurrences {
		fmt.Printf("%s  %-8s %s%s\n",
			o.Date.Gregorian().Format(time.DateOnly),
			o.Festival.Name,
			o.Date.MonthName(),
			o.Date.DayName(),
		)
	}

	return nil
}

// readImportFile parses and validates an import document.
func readImportFile(path string) (*database.ImportData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON file: %w", err)
	}

	var importData database.ImportData
	if err := json.Unmarshal(data, &importData); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	if err := validator.New().Struct(importData); err != nil {
		return nil, fmt.Errorf("validate JSON: %w", err)
	}

	return &importData, nil
}
