// Package coaching contains the spending-analytics and coaching engine.
//
// The four derivation functions (patterns, recommendations, insights, goals)
// are pure: given the same input collections and the same reference time they
// always produce the same output. They perform no I/O; fetching the inputs
// and rendering the outputs belong to the surrounding use cases.
package coaching

import (
	"math"
	"time"
)

// monthOf returns the year and month containing the given time.
func monthOf(t time.Time) (int, time.Month) {
	return t.Year(), t.Month()
}

// previousMonthOf returns the year and month immediately before the month
// containing the given time, rolling the year over at January.
func previousMonthOf(t time.Time) (int, time.Month) {
	year, month := t.Year(), t.Month()
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// inMonth reports whether the date falls in the given year and month.
func inMonth(date time.Time, year int, month time.Month) bool {
	return date.Year() == year && date.Month() == month
}

// daysUntil returns the number of days from now until the due date, rounded
// up so a due date later today still counts as one day away. Past dates
// yield negative values.
func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// monthsUntil converts a day count to months (30-day months), with a floor
// of one month so imminent dates never divide savings into a zero window.
func monthsUntil(days int) float64 {
	return math.Max(float64(days)/30.0, 1)
}

// isWeekend reports whether the date falls on Saturday or Sunday.
func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
