// Package plantext turns generated plan text into structures the tracker and
// the plan view can use. Parsing is best-effort: unrecognised lines are
// skipped and malformed input yields partial or empty output, never an error.
package plantext

import (
	"regexp"
	"strconv"
	"strings"

	"alcyxob/fitplanner/internal/domain"
)

const (
	DefaultSets = 3
	DefaultReps = 12

	// Counts above these are treated as garbage and replaced by the default.
	MaxSets = 20
	MaxReps = 100
)

// Schedule maps a weekday to the sub-workout parsed for it.
type Schedule map[domain.Weekday]domain.DayWorkout

var (
	// "Monday: Upper Body", "Monday - Upper Body", "monday upper body"
	dayHeaderPattern = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday)[:\s-]`)
	repsPattern      = regexp.MustCompile(`(?i)(\d+)[-\s]?reps`)
	setsPattern      = regexp.MustCompile(`(?i)(\d+)[-\s]?sets`)
)

// ParseSchedule scans day-keyed plan text line by line.
//
// A line starting with a weekday name followed by a colon, hyphen or
// whitespace opens that day. Lines starting with "- " under an open day are
// exercises in the form "Name: description", where the description may carry
// "N sets" and "N reps". A day with no exercise lines before the next header
// or the end of input is left out of the result.
func ParseSchedule(text string) Schedule {
	schedule := make(Schedule)

	var (
		currentDay domain.Weekday
		exercises  []domain.Exercise
	)
	flush := func() {
		if currentDay == "" || len(exercises) == 0 {
			return
		}
		schedule[currentDay] = domain.DayWorkout{
			Name:      workoutName(exercises),
			Exercises: exercises,
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if m := dayHeaderPattern.FindStringSubmatch(line); m != nil {
			flush()
			day, _ := domain.ParseWeekday(m[1]) // the pattern only admits canonical names
			currentDay = day
			exercises = nil
			continue
		}

		if currentDay == "" {
			continue
		}
		if ex, ok := parseExerciseLine(line); ok {
			exercises = append(exercises, ex)
		}
	}
	flush()

	return schedule
}

func parseExerciseLine(line string) (domain.Exercise, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "- ") {
		return domain.Exercise{}, false
	}
	entry := strings.TrimSpace(strings.TrimPrefix(trimmed, "- "))

	name, description, _ := strings.Cut(entry, ":")
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	return domain.Exercise{
		Name:   name,
		Sets:   firstNumber(setsPattern, description, DefaultSets, MaxSets),
		Reps:   firstNumber(repsPattern, description, DefaultReps, MaxReps),
		Weight: 0,
		Notes:  description,
	}, true
}

// firstNumber returns the first count pattern captures in s, or fallback when
// there is none or it falls outside 1..limit.
func firstNumber(pattern *regexp.Regexp, s string, fallback, limit int) int {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > limit {
		return fallback
	}
	return n
}

// workoutName names a day after its first exercise, cut at any colon.
func workoutName(exercises []domain.Exercise) string {
	name, _, _ := strings.Cut(exercises[0].Name, ":")
	return name
}

// Days returns the weekdays present in s in calendar-week order.
func (s Schedule) Days() []domain.Weekday {
	days := make([]domain.Weekday, 0, len(s))
	for _, d := range domain.Weekdays {
		if _, ok := s[d]; ok {
			days = append(days, d)
		}
	}
	return days
}
