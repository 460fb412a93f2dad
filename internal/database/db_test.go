package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func strPtr(s string) *string {
	return &s
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)

	applied, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second Migrate() applied %d migrations, want 0", applied)
	}
}

func TestHealth(t *testing.T) {
	db := testDB(t)
	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestListFestivals_Seeded(t *testing.T) {
	db := testDB(t)

	festivals, err := db.ListFestivals(context.Background())
	if err != nil {
		t.Fatalf("ListFestivals() error = %v", err)
	}

	want := []string{
		"春节", "元宵节", "龙抬头", "端午节", "七夕", "中元节",
		"中秋节", "重阳节", "腊八节", "小年", "除夕",
	}
	if len(festivals) != len(want) {
		t.Fatalf("got %d festivals, want %d", len(festivals), len(want))
	}
	for i, name := range want {
		if festivals[i].Name != name {
			t.Errorf("festival[%d] = %q, want %q", i, festivals[i].Name, name)
		}
	}

	last := festivals[len(festivals)-1]
	if !last.IsLastDay() || last.LunarMonth != 12 {
		t.Errorf("除夕 = month %d day %d, want month 12 last day", last.LunarMonth, last.LunarDay)
	}
	if festivals[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestCreateAndGetFestival(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	f := &Festival{
		Name:        "闰月团圆",
		LunarMonth:  6,
		LunarDay:    15,
		IsLeap:      true,
		Description: strPtr("Full moon of a leap sixth month"),
	}
	if err := db.CreateFestival(ctx, f); err != nil {
		t.Fatalf("CreateFestival() error = %v", err)
	}
	if f.ID == 0 {
		t.Fatal("CreateFestival() did not set ID")
	}

	got, err := db.GetFestival(ctx, f.ID)
	if err != nil {
		t.Fatalf("GetFestival() error = %v", err)
	}
	if got.Name != f.Name || got.LunarMonth != 6 || got.LunarDay != 15 || !got.IsLeap {
		t.Errorf("GetFestival() = %+v", got)
	}
	if got.Description == nil || *got.Description != *f.Description {
		t.Errorf("Description = %v, want %q", got.Description, *f.Description)
	}
}

func TestCreateFestival_Duplicate(t *testing.T) {
	db := testDB(t)

	err := db.CreateFestival(context.Background(), &Festival{Name: "中秋节", LunarMonth: 8, LunarDay: 15})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("CreateFestival() error = %v, want ErrDuplicate", err)
	}
}

func TestCreateFestival_CheckConstraint(t *testing.T) {
	db := testDB(t)

	err := db.CreateFestival(context.Background(), &Festival{Name: "bad", LunarMonth: 13, LunarDay: 1})
	if err == nil {
		t.Fatal("CreateFestival() error = nil, want constraint failure")
	}
	if errors.Is(err, ErrDuplicate) {
		t.Errorf("CreateFestival() error = %v, should not be ErrDuplicate", err)
	}
}

func TestGetFestival_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetFestival(context.Background(), 9999)
	if !IsNotFound(err) {
		t.Errorf("GetFestival() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteFestival(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	festivals, err := db.ListFestivals(ctx)
	if err != nil {
		t.Fatalf("ListFestivals() error = %v", err)
	}
	id := festivals[0].ID

	if err := db.DeleteFestival(ctx, id); err != nil {
		t.Fatalf("DeleteFestival() error = %v", err)
	}
	if _, err := db.GetFestival(ctx, id); !IsNotFound(err) {
		t.Errorf("GetFestival() after delete error = %v, want ErrNotFound", err)
	}
	if err := db.DeleteFestival(ctx, id); !IsNotFound(err) {
		t.Errorf("second DeleteFestival() error = %v, want ErrNotFound", err)
	}
}

func TestImportFestivals(t *testing.T) {
	ctx := context.Background()

	t.Run("all or nothing", func(t *testing.T) {
		db := testDB(t)

		batch := []Festival{
			{Name: "天贶节", LunarMonth: 6, LunarDay: 6},
			{Name: "中秋节", LunarMonth: 8, LunarDay: 15},
		}
		if _, err := db.ImportFestivals(ctx, batch, false); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("ImportFestivals() error = %v, want ErrDuplicate", err)
		}

		festivals, err := db.ListFestivals(ctx)
		if err != nil {
			t.Fatalf("ListFestivals() error = %v", err)
		}
		for _, f := range festivals {
			if f.Name == "天贶节" {
				t.Error("failed import left a partial row behind")
			}
		}
	})

	t.Run("replace", func(t *testing.T) {
		db := testDB(t)

		batch := []Festival{
			{Name: "天贶节", LunarMonth: 6, LunarDay: 6},
			{Name: "中秋节", LunarMonth: 8, LunarDay: 15, Description: strPtr("updated")},
		}
		n, err := db.ImportFestivals(ctx, batch, true)
		if err != nil {
			t.Fatalf("ImportFestivals() error = %v", err)
		}
		if n != 2 {
			t.Errorf("ImportFestivals() = %d, want 2", n)
		}

		festivals, err := db.ListFestivals(ctx)
		if err != nil {
			t.Fatalf("ListFestivals() error = %v", err)
		}
		if len(festivals) != 12 {
			t.Errorf("got %d festivals after import, want 12", len(festivals))
		}

		got, err := db.GetFestival(ctx, batch[1].ID)
		if err != nil {
			t.Fatalf("GetFestival() error = %v", err)
		}
		if got.Description == nil || *got.Description != "updated" {
			t.Errorf("Description = %v, want %q", got.Description, "updated")
		}
	})
}
