package progress_test

import (
	"testing"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squatPlan() *domain.TrackedPlan {
	return &domain.TrackedPlan{
		Name: "Legs",
		Progress: []domain.ProgressEntry{
			{
				Date:      "2024-01-01",
				Completed: true,
				Exercises: []domain.ExerciseLog{
					{Name: "Squat", Sets: []domain.PerformedSet{{Reps: 10, Weight: 100}}},
				},
			},
			{
				Date:      "2024-01-08",
				Completed: true,
				Exercises: []domain.ExerciseLog{
					{Name: "Lunge", Sets: []domain.PerformedSet{{Reps: 12, Weight: 20}}},
					{Name: "Squat", Sets: []domain.PerformedSet{{Reps: 8, Weight: 110}}},
				},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	history := progress.History(squatPlan(), "Squat")

	stats := progress.Summarize(history)

	require.NotNil(t, stats)
	assert.Equal(t, progress.Stats{
		MaxWeight:    110,
		MaxReps:      10,
		TotalVolume:  10*100 + 8*110,
		WorkoutCount: 2,
	}, *stats)
	assert.Equal(t, 1880, stats.TotalVolume)
}

func TestHistory_NewestFirst(t *testing.T) {
	history := progress.History(squatPlan(), "Squat")

	require.Len(t, history, 2)
	assert.Equal(t, "2024-01-08", history[0].Date)
	assert.Equal(t, []domain.PerformedSet{{Reps: 8, Weight: 110}}, history[0].Sets)
	assert.Equal(t, "2024-01-01", history[1].Date)
}

func TestSummarize_NoHistoryIsAbsent(t *testing.T) {
	assert.Nil(t, progress.Summarize(nil))
	assert.Nil(t, progress.Summarize(progress.History(squatPlan(), "Deadlift")))
}

func TestSummarize_ZeroPerformanceIsNotAbsent(t *testing.T) {
	stats := progress.Summarize([]progress.HistoryEntry{{Date: "2024-02-01", Sets: []domain.PerformedSet{{Reps: 0, Weight: 0}}}})

	require.NotNil(t, stats)
	assert.Equal(t, progress.Stats{WorkoutCount: 1}, *stats)
}

func TestHistory_DuplicateDatesAreSeparateSessions(t *testing.T) {
	plan := squatPlan()
	plan.Progress = append(plan.Progress, domain.ProgressEntry{
		Date:      "2024-01-08",
		Exercises: []domain.ExerciseLog{{Name: "Squat", Sets: []domain.PerformedSet{{Reps: 5, Weight: 120}, {Reps: 5, Weight: 120}}}},
	})

	report := progress.Report(plan, "Squat")

	require.Len(t, report.History, 3)
	assert.Equal(t, "2024-01-08", report.History[0].Date)
	assert.Equal(t, "2024-01-08", report.History[1].Date)
	assert.Len(t, report.History[1].Sets, 2, "stable order keeps the later entry second")
	require.NotNil(t, report.Stats)
	assert.Equal(t, 3, report.Stats.WorkoutCount)
	assert.Equal(t, 120, report.Stats.MaxWeight)
	assert.Equal(t, 1880+2*5*120, report.Stats.TotalVolume)
}
