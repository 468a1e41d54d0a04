package schedule_test

import (
	"testing"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWeekDates_WednesdayReference(t *testing.T) {
	wednesday := time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC)

	dates := schedule.WeekDates(wednesday)

	require.Len(t, dates, schedule.DaysInWeek)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), dates[6])
	assert.Equal(t, time.Sunday, dates[6].Weekday())
}

func TestStartOfWeek_EdgeDays(t *testing.T) {
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, monday, schedule.StartOfWeek(monday))
	assert.Equal(t, monday, schedule.StartOfWeek(sunday))
	// crosses a month boundary
	assert.Equal(t, time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
		schedule.StartOfWeek(time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)))
}

func TestProjector_Week(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	projector := schedule.NewProjector(zap.New(core))

	push := domain.DayWorkout{Name: "Bench Press", Exercises: []domain.Exercise{{Name: "Bench Press", Sets: 4, Reps: 8}}}
	legs := domain.DayWorkout{Name: "Squat", Exercises: []domain.Exercise{{Name: "Squat", Sets: 5, Reps: 5}}}

	strength := domain.TrackedPlan{
		ID:       primitive.NewObjectID(),
		Name:     "Strength",
		Schedule: []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		WorkoutsByDay: map[domain.Weekday]domain.DayWorkout{
			domain.Monday:    push,
			domain.Wednesday: legs,
			// Friday intentionally missing
		},
		Progress: []domain.ProgressEntry{{Date: "2024-01-08", Completed: true}},
	}
	cardio := domain.TrackedPlan{
		ID:            primitive.NewObjectID(),
		Name:          "Cardio",
		Schedule:      []domain.Weekday{domain.Monday},
		WorkoutsByDay: map[domain.Weekday]domain.DayWorkout{domain.Monday: {Exercises: []domain.Exercise{{Name: "Run"}}}},
	}

	week := projector.Week(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), []domain.TrackedPlan{strength, cardio})

	require.Len(t, week, 7)
	assert.Equal(t, "2024-01-08", week[0].Date)
	assert.Equal(t, domain.Monday, week[0].Weekday)
	require.Len(t, week[0].Workouts, 2)
	assert.Equal(t, "Bench Press", week[0].Workouts[0].WorkoutName)
	assert.True(t, week[0].Workouts[0].Completed)
	assert.Equal(t, "Cardio", week[0].Workouts[1].WorkoutName, "falls back to plan name")
	assert.False(t, week[0].Workouts[1].Completed)

	assert.Empty(t, week[1].Workouts)
	require.Len(t, week[2].Workouts, 1)
	assert.Equal(t, "Squat", week[2].Workouts[0].WorkoutName)

	assert.Empty(t, week[4].Workouts, "friday has no workout mapping")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Friday", entry.ContextMap()["weekday"])
	assert.Equal(t, "Strength", entry.ContextMap()["planName"])

	assert.Equal(t, "2024-01-14", week[6].Date)
	assert.Equal(t, domain.Sunday, week[6].Weekday)
}

func TestProjector_On(t *testing.T) {
	projector := schedule.NewProjector(zap.NewNop())
	plan := domain.TrackedPlan{
		ID:            primitive.NewObjectID(),
		Name:          "Plan",
		Schedule:      []domain.Weekday{domain.Tuesday},
		WorkoutsByDay: map[domain.Weekday]domain.DayWorkout{domain.Tuesday: {Name: "Pull"}},
	}

	assert.Len(t, projector.On(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), []domain.TrackedPlan{plan}), 1)
	assert.Empty(t, projector.On(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), []domain.TrackedPlan{plan}))
}
