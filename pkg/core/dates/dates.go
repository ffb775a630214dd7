// Package dates holds the date formatting and holiday lookup helpers
// shared by the validation rules and the selector.
package dates

import (
	"time"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// Layout is the single serialized date form used throughout the engine.
const Layout = "2006-01-02"

// Format renders a date as zero-padded "YYYY-MM-DD".
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse is the inverse of Format.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// IsHoliday reports whether the calendar marks the date as a holiday.
// Absent entries and a nil calendar mean "not a holiday".
func IsHoliday(date string, calendar model.HolidayCalendar) bool {
	if calendar == nil {
		return false
	}
	return calendar[date]
}

// MonthStart returns the first day of the given month.
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of the given month.
func MonthEnd(year int, month time.Month) time.Time {
	return MonthStart(year, month).AddDate(0, 1, -1)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return MonthEnd(year, month).Day()
}

// SameMonth reports whether the date falls inside the given month.
func SameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
