// Package schedule projects tracked plans onto a calendar week.
package schedule

import (
	"time"

	"alcyxob/fitplanner/internal/domain"

	"go.uber.org/zap"
)

const DaysInWeek = 7

// ScheduledWorkout is one tracked plan's sub-workout on a given date.
type ScheduledWorkout struct {
	PlanID      string            `json:"planId"`
	PlanName    string            `json:"planName"`
	WorkoutName string            `json:"workoutName"`
	Exercises   []domain.Exercise `json:"exercises"`
	Completed   bool              `json:"completed"`
}

// Day is one date of the projected week.
type Day struct {
	Date     string             `json:"date"`
	Weekday  domain.Weekday     `json:"weekday"`
	Workouts []ScheduledWorkout `json:"workouts"`
}

// Projector maps tracked plans onto the Monday-first calendar week.
type Projector struct {
	logger *zap.Logger
}

func NewProjector(logger *zap.Logger) *Projector {
	return &Projector{logger: logger}
}

// StartOfWeek returns midnight of the Monday on or before t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekDates returns the seven dates of the week containing reference, Monday first.
func WeekDates(reference time.Time) []time.Time {
	start := StartOfWeek(reference)
	dates := make([]time.Time, DaysInWeek)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// Week lists, for every date of the week containing reference, the plans
// active on that weekday with the day's sub-workout. A plan scheduled on a
// weekday that has no sub-workout is skipped for that date and logged.
func (p *Projector) Week(reference time.Time, plans []domain.TrackedPlan) []Day {
	dates := WeekDates(reference)
	week := make([]Day, len(dates))
	for i, date := range dates {
		weekday := domain.WeekdayOf(date)
		dateStr := date.Format(domain.DateLayout)
		week[i] = Day{
			Date:     dateStr,
			Weekday:  weekday,
			Workouts: p.workoutsOn(weekday, dateStr, plans),
		}
	}
	return week
}

// On returns the workouts scheduled on a single date.
func (p *Projector) On(date time.Time, plans []domain.TrackedPlan) []ScheduledWorkout {
	return p.workoutsOn(domain.WeekdayOf(date), date.Format(domain.DateLayout), plans)
}

func (p *Projector) workoutsOn(weekday domain.Weekday, date string, plans []domain.TrackedPlan) []ScheduledWorkout {
	workouts := make([]ScheduledWorkout, 0)
	for i := range plans {
		plan := &plans[i]
		if !plan.IsScheduledOn(weekday) {
			continue
		}
		dayWorkout, ok := plan.WorkoutsByDay[weekday]
		if !ok {
			p.logger.Warn("tracked plan scheduled on a day without a workout",
				zap.String("planId", plan.ID.Hex()),
				zap.String("planName", plan.Name),
				zap.String("weekday", string(weekday)),
			)
			continue
		}
		name := dayWorkout.Name
		if name == "" {
			name = plan.Name
		}
		workouts = append(workouts, ScheduledWorkout{
			PlanID:      plan.ID.Hex(),
			PlanName:    plan.Name,
			WorkoutName: name,
			Exercises:   dayWorkout.Exercises,
			Completed:   plan.HasProgressOn(date),
		})
	}
	return workouts
}
