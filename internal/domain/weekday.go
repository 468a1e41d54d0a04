package domain

import (
	"errors"
	"strings"
	"time"
)

// Weekday is one of the seven canonical English weekday names.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// DateLayout is the calendar-day format used for progress entries and query params.
const DateLayout = "2006-01-02"

var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekdays lists the canonical names in calendar-week order (Monday first).
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday matches s case-insensitively against the canonical names.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, d := range Weekdays {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", ErrInvalidWeekday
}

// WeekdayOf returns the canonical weekday name of t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday().String())
}

// ParseWeekdays parses and de-duplicates a list of weekday names, keeping input order.
func ParseWeekdays(names []string) ([]Weekday, error) {
	seen := make(map[Weekday]bool, len(names))
	days := make([]Weekday, 0, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days, nil
}

// ParseDate parses a YYYY-MM-DD calendar day in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}
