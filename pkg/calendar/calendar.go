// Package calendar builds the month grid and owns month arithmetic.
package calendar

import "time"

// GridSize is the fixed cell count of the month view: six rows of seven
// days, regardless of how many weeks the month actually spans.
const GridSize = 6 * 7

// Day describes a single grid cell. Cells are derived fresh for every
// displayed month and carry no identity beyond their date.
type Day struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	IsPast         bool
}

// BuildMonth returns exactly GridSize cells for the given month in strict
// ascending date order. The first row always begins on Monday, so up to six
// leading cells come from the previous month and the remainder is padded
// with trailing cells from the next month.
//
// Leading cells are always marked past; this mirrors how the grid renders
// prior-month days with the dimmed past treatment even when the displayed
// month is in the future. Trailing cells are never past and never today.
func BuildMonth(year int, month time.Month, today time.Time) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	midnight := StartOfDay(today)

	days := make([]Day, 0, GridSize)

	// Monday == 0 leading cells, Sunday == 6.
	lead := (int(first.Weekday()) + 6) % 7
	for i := lead; i > 0; i-- {
		days = append(days, Day{
			Date:           first.AddDate(0, 0, -i),
			IsCurrentMonth: false,
			IsToday:        false,
			IsPast:         true,
		})
	}

	last := first.AddDate(0, 1, -1)
	for i := 1; i <= last.Day(); i++ {
		date := time.Date(year, month, i, 0, 0, 0, 0, today.Location())
		days = append(days, Day{
			Date:           date,
			IsCurrentMonth: true,
			IsToday:        date.Equal(midnight),
			IsPast:         date.Before(midnight),
		})
	}

	next := first.AddDate(0, 1, 0)
	for i := 0; len(days) < GridSize; i++ {
		days = append(days, Day{
			Date:           next.AddDate(0, 0, i),
			IsCurrentMonth: false,
			IsToday:        false,
			IsPast:         false,
		})
	}

	return days
}

// ChangeMonth applies a signed month delta, carrying overflow and underflow
// into the year. It is total over all integer deltas.
func ChangeMonth(year int, month time.Month, delta int) (int, time.Month) {
	m := int(month) - 1 + delta
	y := year + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	return y, time.Month(m + 1)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EpochDay returns the civil-day number of t: days since the Unix epoch of
// the wall-clock date. It is the grouping key for anything keyed by
// calendar day, so two moments on the same local date always collide and
// dates in different years never do.
func EpochDay(t time.Time) int {
	return int(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// FirstOfMonth returns midnight on the first of the given month.
func FirstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

// MonthLabel renders the "January 2006" header for a month.
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}
