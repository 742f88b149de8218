package quiz

import "time"

// CalendarDate returns the calendar day of t in loc, as midnight UTC.
// Ledger dates are stored in this form.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from one date to
// another. Only the year, month and day of each value are used.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// DayStart returns the start of the current day in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// NextDayStart returns the start of the next day in tz, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	// AddDate keeps DST transitions correct; Add(24h) does not.
	next := DayStart(now, tz).In(tz).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}
