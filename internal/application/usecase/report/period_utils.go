// Package report contains the financial report use cases.
package report

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of report dates.
const DateLayout = "2006-01-02"

// monthAbbreviations are the Indonesian month abbreviations used in period labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "Mei",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Agu",
	time.September: "Sep",
	time.October:   "Okt",
	time.November:  "Nov",
	time.December:  "Des",
}

// PeriodInfo holds information about a single calendar period.
type PeriodInfo struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// DateOnly truncates a time to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthLabel generates a human-readable label for the month containing date, e.g. "Mei 2025".
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}

// MonthKey returns a unique key for the month containing date.
func MonthKey(date time.Time) string {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// GenerateMonthSeries generates every calendar month overlapping [startDate, endDate].
// The series has no gaps so months without transactions still show up.
func GenerateMonthSeries(startDate, endDate time.Time) []PeriodInfo {
	var periods []PeriodInfo

	current := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := DateOnly(endDate)
	for !current.After(last) {
		periods = append(periods, PeriodInfo{
			PeriodStart: current,
			PeriodEnd:   current.AddDate(0, 1, -1),
			PeriodLabel: MonthLabel(current),
		})
		current = current.AddDate(0, 1, 0)
	}

	return periods
}

// YearBounds returns the first day of year and the first day of the following year.
func YearBounds(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
