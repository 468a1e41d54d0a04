package domain

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidTrackedPlan = errors.New("invalid tracked plan")
	ErrInvalidProgress    = errors.New("invalid progress entry")
)

// Exercise is a planned exercise with its targets.
type Exercise struct {
	Name   string `bson:"name" json:"name"`
	Sets   int    `bson:"sets" json:"sets"`
	Reps   int    `bson:"reps" json:"reps"`
	Weight int    `bson:"weight,omitempty" json:"weight,omitempty"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// DayWorkout is the named sub-workout scheduled on one weekday.
type DayWorkout struct {
	Name      string     `bson:"name" json:"name"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// PerformedSet is one set the user actually did.
type PerformedSet struct {
	Reps   int `bson:"reps" json:"reps"`
	Weight int `bson:"weight" json:"weight"`
}

// ExerciseLog is the list of sets performed for one exercise on one day.
type ExerciseLog struct {
	Name string         `bson:"name" json:"name"`
	Sets []PerformedSet `bson:"sets" json:"sets"`
}

// ProgressEntry is one day's logged performance against a tracked plan.
// Date is a calendar day (YYYY-MM-DD). Nothing prevents two entries for the
// same date; aggregation treats them as separate sessions.
type ProgressEntry struct {
	Date      string        `bson:"date" json:"date"`
	Completed bool          `bson:"completed" json:"completed"`
	Exercises []ExerciseLog `bson:"exercises" json:"exercises"`
}

// Validate checks the date format and that no set carries negative numbers.
func (e *ProgressEntry) Validate() error {
	if _, err := ParseDate(e.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidProgress)
	}
	for _, ex := range e.Exercises {
		if ex.Name == "" {
			return fmt.Errorf("%w: exercise name is required", ErrInvalidProgress)
		}
		for _, set := range ex.Sets {
			if set.Reps < 0 || set.Weight < 0 {
				return fmt.Errorf("%w: reps and weight must be non-negative", ErrInvalidProgress)
			}
		}
	}
	return nil
}

// TrackedPlan is a user-scheduled, progress-logged instantiation of a GeneratedPlan.
type TrackedPlan struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID     `bson:"userId" json:"userId"`
	GeneratedPlanID primitive.ObjectID     `bson:"generatedPlanId" json:"generatedPlanId"`
	Name            string                 `bson:"name" json:"name"`
	Description     string                 `bson:"description,omitempty" json:"description,omitempty"`
	Schedule        []Weekday              `bson:"schedule" json:"schedule"`
	WorkoutsByDay   map[Weekday]DayWorkout `bson:"workoutsByDay" json:"workoutsByDay"`
	Progress        []ProgressEntry        `bson:"progress" json:"progress"`
	CreatedAt       time.Time              `bson:"createdAt" json:"createdAt"`
}

// IsScheduledOn reports whether day is one of the plan's active weekdays.
func (p *TrackedPlan) IsScheduledOn(day Weekday) bool {
	for _, d := range p.Schedule {
		if d == day {
			return true
		}
	}
	return false
}

// HasProgressOn reports whether any progress entry was logged for date (YYYY-MM-DD).
func (p *TrackedPlan) HasProgressOn(date string) bool {
	for _, e := range p.Progress {
		if e.Date == date {
			return true
		}
	}
	return false
}
