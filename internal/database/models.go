package database

import (
	"time"
)

// LastDay is the lunar_day value meaning "the last day of the month",
// which is the 29th or 30th depending on the year.
const LastDay = 0

// Festival is a recurring observance pinned to a lunar month and day.
type Festival struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	LunarMonth  int       `json:"lunar_month"` // 1-12
	LunarDay    int       `json:"lunar_day"`   // 1-30, or LastDay
	IsLeap      bool      `json:"is_leap"`     // leap occurrence of LunarMonth
	Description *string   `json:"description"` // nullable
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsLastDay reports whether the festival falls on the final day of its month.
func (f *Festival) IsLastDay() bool {
	return f.LunarDay == LastDay
}

// nullableString maps a nil *string to SQL NULL.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// -----------------------------------------------------------------
// Import types
// -----------------------------------------------------------------

// ImportData is the JSON document read by cmd/import.
type ImportData struct {
	Metadata  ImportMetadata   `json:"metadata"`
	Festivals []ImportFestival `json:"festivals" validate:"required,min=1,dive"`
}

// ImportMetadata describes where an import file came from.
type ImportMetadata struct {
	Source      string `json:"source"`
	GeneratedAt string `json:"generated_at"`
}

// ImportFestival is one festival entry in an import file.
type ImportFestival struct {
	Name        string  `json:"name" validate:"required,max=64"`
	LunarMonth  int     `json:"lunar_month" validate:"min=1,max=12"`
	LunarDay    int     `json:"lunar_day" validate:"min=0,max=30"`
	IsLeap      bool    `json:"is_leap"`
	Description *string `json:"description"`
}

// Festival converts the entry to a storable Festival.
func (f ImportFestival) Festival() Festival {
	return Festival{
		Name:        f.Name,
		LunarMonth:  f.LunarMonth,
		LunarDay:    f.LunarDay,
		IsLeap:      f.IsLeap,
		Description: f.Description,
	}
}
