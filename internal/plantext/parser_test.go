package plantext_test

import (
	"testing"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/plantext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule_DropsDayWithoutExercises(t *testing.T) {
	text := "Monday: Push Day\n- Bench Press: 4 sets, 8 reps\n- Overhead Press: 3 sets, 10 reps\nTuesday: Rest\n"

	schedule := plantext.ParseSchedule(text)

	require.Len(t, schedule, 1)
	monday, ok := schedule[domain.Monday]
	require.True(t, ok)
	require.Len(t, monday.Exercises, 2)
	assert.Equal(t, "Bench Press", monday.Exercises[0].Name)
	assert.Equal(t, 4, monday.Exercises[0].Sets)
	assert.Equal(t, 8, monday.Exercises[0].Reps)
	assert.Equal(t, "Overhead Press", monday.Exercises[1].Name)
	assert.Equal(t, 3, monday.Exercises[1].Sets)
	assert.Equal(t, 10, monday.Exercises[1].Reps)

	_, ok = schedule[domain.Tuesday]
	assert.False(t, ok)
}

func TestParseSchedule_Defaults(t *testing.T) {
	text := "Wednesday - Legs\n- Squat: heavy, rest 2 minutes\n- Lunges\n"

	schedule := plantext.ParseSchedule(text)

	wed := schedule[domain.Wednesday]
	require.Len(t, wed.Exercises, 2)
	assert.Equal(t, domain.Exercise{
		Name:  "Squat",
		Sets:  plantext.DefaultSets,
		Reps:  plantext.DefaultReps,
		Notes: "heavy, rest 2 minutes",
	}, wed.Exercises[0])
	assert.Equal(t, "Lunges", wed.Exercises[1].Name)
	assert.Equal(t, 3, wed.Exercises[1].Sets)
	assert.Equal(t, 12, wed.Exercises[1].Reps)
	assert.Empty(t, wed.Exercises[1].Notes)
}

func TestParseSchedule_WorkoutNamedAfterFirstExercise(t *testing.T) {
	schedule := plantext.ParseSchedule("Friday: Upper Body Strength\n- Pull Ups: 5 sets\n- Rows: 4 sets of 10 reps")

	fri := schedule[domain.Friday]
	assert.Equal(t, "Pull Ups", fri.Name)
	assert.Equal(t, 5, fri.Exercises[0].Sets)
	assert.Equal(t, 12, fri.Exercises[0].Reps)
	assert.Equal(t, 4, fri.Exercises[1].Sets)
	assert.Equal(t, 10, fri.Exercises[1].Reps)
}

func TestParseSchedule_CaseInsensitiveHeadersAndCounts(t *testing.T) {
	schedule := plantext.ParseSchedule("sunday cardio\n  - Row: 3 SETS 15-reps\n")

	sun, ok := schedule[domain.Sunday]
	require.True(t, ok)
	require.Len(t, sun.Exercises, 1)
	assert.Equal(t, 3, sun.Exercises[0].Sets)
	assert.Equal(t, 15, sun.Exercises[0].Reps)
}

func TestParseSchedule_IgnoresNoise(t *testing.T) {
	text := `### Weekly Workout Schedule
- Orphan: 3 sets, 5 reps
Some intro text.
Monday: Full Body
* Not a dash bullet
-NoSpace: 2 sets
- Deadlift: 3 sets, 5 reps
Mondayish: not a header
- : 2 sets
Thursday:
Saturday: Conditioning
- Burpees: 4 sets, 20 reps
`

	schedule := plantext.ParseSchedule(text)

	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Saturday}, schedule.Days())
	require.Len(t, schedule[domain.Monday].Exercises, 2)
	assert.Equal(t, "Deadlift", schedule[domain.Monday].Exercises[0].Name)
	// a dash line with nothing before the colon is still an exercise
	assert.Equal(t, domain.Exercise{Sets: 2, Reps: plantext.DefaultReps, Notes: "2 sets"}, schedule[domain.Monday].Exercises[1])
	require.Len(t, schedule[domain.Saturday].Exercises, 1)
	assert.Equal(t, 20, schedule[domain.Saturday].Exercises[0].Reps)
}

func TestParseSchedule_OutOfRangeCountsFallBackToDefaults(t *testing.T) {
	text := "Monday: Core\n" +
		"- Plank: 1099511627776 sets, hold 30s\n" +
		"- Crunches: 3 sets, 99999999999999999999 reps\n" +
		"- Dead Bug: 0 sets, 0 reps\n" +
		"- Hollow Hold: 20 sets, 100 reps\n"

	schedule := plantext.ParseSchedule(text)

	exercises := schedule[domain.Monday].Exercises
	require.Len(t, exercises, 4)
	assert.Equal(t, plantext.DefaultSets, exercises[0].Sets)
	assert.Equal(t, 3, exercises[1].Sets)
	assert.Equal(t, plantext.DefaultReps, exercises[1].Reps)
	assert.Equal(t, plantext.DefaultSets, exercises[2].Sets)
	assert.Equal(t, plantext.DefaultReps, exercises[2].Reps)
	assert.Equal(t, plantext.MaxSets, exercises[3].Sets)
	assert.Equal(t, plantext.MaxReps, exercises[3].Reps)
}

func TestParseSchedule_RepeatedDayKeepsLast(t *testing.T) {
	text := "Monday: A\n- First: 1 sets\nMonday: B\n- Second: 2 sets\n"

	schedule := plantext.ParseSchedule(text)

	require.Len(t, schedule[domain.Monday].Exercises, 1)
	assert.Equal(t, "Second", schedule[domain.Monday].Exercises[0].Name)
}

func TestParseSchedule_Idempotent(t *testing.T) {
	text := "Monday: Push\n- Bench: 4 sets, 8 reps\nTuesday: Pull\n- Rows: 3 sets\r\nThursday: Legs\n- Squat: 5 sets, 5 reps\n"

	assert.Equal(t, plantext.ParseSchedule(text), plantext.ParseSchedule(text))
}

func TestParseSchedule_EmptyInput(t *testing.T) {
	assert.Empty(t, plantext.ParseSchedule(""))
	assert.Empty(t, plantext.ParseSchedule("nothing to see\n- here: 3 sets"))
}
