package lunar

import "testing"

func TestDayName(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "初一"},
		{9, "初九"},
		{10, "初十"},
		{11, "十一"},
		{15, "十五"},
		{19, "十九"},
		{20, "廿十"},
		{21, "廿一"},
		{29, "廿九"},
		{30, "三十"},
		{31, "卅一"},
		{0, ""},
		{41, ""},
	}
	for _, tt := range tests {
		if got := DayName(tt.day); got != tt.want {
			t.Errorf("DayName(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		leap  LeapStatus
		want  string
	}{
		{1, NotLeap, "正月"},
		{2, IsLeapMonth, "闰二月"},
		{2, LeapPreceding, "二月"},
		{10, NotLeap, "十月"},
		{11, NotLeap, "冬月"},
		{12, NotLeap, "腊月"},
		{6, IsLeapMonth, "闰六月"},
		{0, NotLeap, ""},
		{13, NotLeap, ""},
	}
	for _, tt := range tests {
		if got := MonthName(tt.month, tt.leap); got != tt.want {
			t.Errorf("MonthName(%d, %d) = %q, want %q", tt.month, tt.leap, got, tt.want)
		}
	}
}

func TestYearName(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2024, "二零二四"},
		{1901, "一九零一"},
		{2100, "二一零零"},
		{1999, "一九九九"},
	}
	for _, tt := range tests {
		if got := YearName(tt.year); got != tt.want {
			t.Errorf("YearName(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}
