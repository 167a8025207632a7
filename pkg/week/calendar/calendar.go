// Package calendar contains the Monday-anchored week arithmetic used by the
// week planner. All functions are pure and keep the location of their input.
package calendar

import (
	"fmt"
	"time"
)

// DayLayout is the storage and URL format of a calendar day.
const DayLayout = "2006-01-02"

// DaysPerWeek is the length of a Monday..Sunday week.
const DaysPerWeek = 7

// indexed by time.Weekday, Sunday first
var weekdayNames = [DaysPerWeek]string{
	"Sonntag",
	"Montag",
	"Dienstag",
	"Mittwoch",
	"Donnerstag",
	"Freitag",
	"Samstag",
}

// WeekdayName returns the German name of t's weekday.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// ISOWeekday numbers Monday as 1 and Sunday as 7.
func ISOWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// Midnight drops the time of day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Monday returns midnight of the Monday starting t's week.
func Monday(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, -(ISOWeekday(t) - 1))
}

// NextMonday returns the Monday exactly one week after t's Monday.
func NextMonday(t time.Time) time.Time {
	return Monday(t).AddDate(0, 0, DaysPerWeek)
}

// WeekDates returns the seven midnights Monday..Sunday starting at monday.
func WeekDates(monday time.Time) []time.Time {
	start := Midnight(monday)
	out := make([]time.Time, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// DayKey formats the date part of t.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD day in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}
