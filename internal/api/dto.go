package api

import (
	"time"

	"github.com/zapponejosh/lunar-api/internal/database"
	"github.com/zapponejosh/lunar-api/internal/festival"
	"github.com/zapponejosh/lunar-api/internal/lunar"
)

// LunarDateResponse is the JSON form of a lunar.LunarDate.
type LunarDateResponse struct {
	Gregorian  string   `json:"gregorian"` // YYYY-MM-DD
	Weekday    string   `json:"weekday"`
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	Day        int      `json:"day"`
	IsLeap     bool     `json:"is_leap"`
	LeapStatus string   `json:"leap_status"`
	YearName   string   `json:"year_name"`
	MonthName  string   `json:"month_name"`
	DayName    string   `json:"day_name"`
	Text       string   `json:"text"`
	Festivals  []string `json:"festivals,omitempty"`
}

func newLunarDateResponse(d lunar.LunarDate) LunarDateResponse {
	return LunarDateResponse{
		Gregorian:  d.Gregorian().Format(time.DateOnly),
		Weekday:    d.Gregorian().Weekday().String(),
		Year:       d.Year(),
		Month:      d.Month(),
		Day:        d.Day(),
		IsLeap:     d.Leap().IsLeap(),
		LeapStatus: d.Leap().String(),
		YearName:   d.YearName(),
		MonthName:  d.MonthName(),
		DayName:    d.DayName(),
		Text:       d.YearName() + "年" + d.MonthName() + d.DayName(),
	}
}

func newLunarDateResponses(days []lunar.LunarDate) []LunarDateResponse {
	out := make([]LunarDateResponse, len(days))
	for i, d := range days {
		out[i] = newLunarDateResponse(d)
	}
	return out
}

// GridResponse is a month grid as six rows of seven cells, Sunday first.
// Cells outside the month are null.
type GridResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Weeks [][]*LunarDateResponse `json:"weeks"`
}

func newGridResponse(g lunar.Grid) GridResponse {
	resp := GridResponse{
		Year:  g.Year,
		Month: int(g.Month),
		Weeks: make([][]*LunarDateResponse, lunar.GridWeeks),
	}
	for week := 0; week < lunar.GridWeeks; week++ {
		row := make([]*LunarDateResponse, 7)
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if cell := g.At(week, wd); cell != nil {
				d := newLunarDateResponse(*cell)
				row[wd] = &d
			}
		}
		resp.Weeks[week] = row
	}
	return resp
}

// FestivalOccurrenceResponse is a festival resolved for one year.
type FestivalOccurrenceResponse struct {
	Festival database.Festival `json:"festival"`
	Date     LunarDateResponse `json:"date"`
}

func newOccurrenceResponses(occurrences []festival.Occurrence) []FestivalOccurrenceResponse {
	out := make([]FestivalOccurrenceResponse, len(occurrences))
	for i, o := range occurrences {
		out[i] = FestivalOccurrenceResponse{
			Festival: o.Festival,
			Date:     newLunarDateResponse(o.Date),
		}
	}
	return out
}

// CreateFestivalRequest is the body of POST /api/v1/festivals.
type CreateFestivalRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	LunarMonth  int    `json:"lunar_month" validate:"required,min=1,max=12"`
	LunarDay    int    `json:"lunar_day" validate:"min=0,max=30"`
	IsLeap      bool   `json:"is_leap"`
	Description string `json:"description,omitempty" validate:"max=256"`
}

func (req CreateFestivalRequest) festival() *database.Festival {
	f := &database.Festival{
		Name:       req.Name,
		LunarMonth: req.LunarMonth,
		LunarDay:   req.LunarDay,
		IsLeap:     req.IsLeap,
	}
	if req.Description != "" {
		f.Description = &req.Description
	}
	return f
}
