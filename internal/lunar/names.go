package lunar

import (
	"strconv"
	"strings"
)

const leapPrefix = "闰"

var (
	numerals   = [...]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
	dayHeads   = [...]string{"初", "十", "廿", "卅"}
	monthNames = [...]string{"正月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "冬月", "腊月"}
)

// DayName renders a day of a lunar month: 初一 through 初十, 十一 through
// 十九, 廿十, 廿一 through 廿九 and 三十. Days past 30 use the 卅 head.
// It returns "" for days that cannot be rendered.
func DayName(day int) string {
	switch {
	case day < 1:
		return ""
	case day <= 10:
		return dayHeads[0] + numerals[day]
	case day < 20:
		return dayHeads[1] + numerals[day-10]
	case day == 20:
		return dayHeads[2] + numerals[10]
	case day < 30:
		return dayHeads[2] + numerals[day-20]
	case day == 30:
		return numerals[3] + numerals[10]
	case day <= 40:
		return dayHeads[3] + numerals[day-30]
	}
	return ""
}

// MonthName renders a lunar month number. The leap month takes the name
// of the month it repeats, prefixed with 闰.
func MonthName(month int, leap LeapStatus) string {
	if month < 1 || month > len(monthNames) {
		return ""
	}
	if leap == IsLeapMonth {
		return leapPrefix + monthNames[month-1]
	}
	return monthNames[month-1]
}

// YearName renders a year digit by digit, e.g. 2024 becomes 二零二四.
func YearName(year int) string {
	var b strings.Builder
	for _, c := range strconv.Itoa(year) {
		if c >= '0' && c <= '9' {
			b.WriteString(numerals[c-'0'])
		}
	}
	return b.String()
}
