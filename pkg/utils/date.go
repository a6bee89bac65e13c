package utils

import "time"

// DateLayout is the canonical trade entry date format. Trades store their entry
// date as a plain string in this layout and the calendar matches on string
// equality, so no timezone conversion ever happens.
const DateLayout = "2006-01-02"

// FormatDate renders a time as a canonical YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current local date as a canonical date string.
func Today() string {
	return FormatDate(time.Now())
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthLabel returns a human-readable month label, e.g. "March 2024".
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
