package profileflow_test

import (
	"testing"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/profileflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillAll(f *profileflow.Flow) {
	f.SetIdentity(" Alex ", 30, "Female")
	f.SetStats(65, 170, domain.ActivityModerate, 4)
	f.SetNotes("", "vegetarian")
}

func TestFlow_BackOnFirstStepIsNoop(t *testing.T) {
	f := profileflow.New(profileflow.Draft{})

	f.Back()

	assert.Equal(t, profileflow.StepIdentity, f.Step())
}

func TestFlow_NextStopsAtLastStep(t *testing.T) {
	f := profileflow.New(profileflow.Draft{})

	f.Next()
	assert.Equal(t, profileflow.StepStats, f.Step())
	f.Next()
	assert.Equal(t, profileflow.StepNotes, f.Step())
	f.Next()
	assert.Equal(t, profileflow.StepNotes, f.Step())

	f.Back()
	assert.Equal(t, profileflow.StepStats, f.Step())
}

func TestFlow_SubmitOnlyFromLastStep(t *testing.T) {
	f := profileflow.New(profileflow.Draft{})
	fillAll(f)

	for f.Step() < profileflow.StepNotes {
		_, err := f.Submit()
		require.ErrorIs(t, err, profileflow.ErrSubmitNotReachable)
		f.Next()
	}

	profile, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Alex", profile.Name)
	assert.Equal(t, "female", profile.Gender)
	assert.Equal(t, 4, profile.WorkoutDaysPerWeek)
	assert.Equal(t, "vegetarian", profile.DietaryRestrictions)
}

func TestFlow_SubmitValidates(t *testing.T) {
	f, err := profileflow.Resume(profileflow.StepNotes, profileflow.Draft{Name: "Sam", Age: 12})
	require.NoError(t, err)

	_, err = f.Submit()

	require.ErrorIs(t, err, domain.ErrInvalidProfile)
	assert.Contains(t, err.Error(), "age must be between 16 and 100")
}

func TestResume_RejectsUnknownStep(t *testing.T) {
	_, err := profileflow.Resume(0, profileflow.Draft{})
	require.ErrorIs(t, err, profileflow.ErrInvalidStep)

	_, err = profileflow.Resume(4, profileflow.Draft{})
	require.ErrorIs(t, err, profileflow.ErrInvalidStep)
}

func TestDraftFromProfile_RoundTripsThroughSubmit(t *testing.T) {
	original := &domain.Profile{
		Name: "Kim", Age: 40, Gender: "other", WeightKg: 80, HeightCm: 180,
		ActivityLevel: domain.ActivityLight, WorkoutDaysPerWeek: 3,
	}

	f, err := profileflow.Resume(profileflow.StepNotes, profileflow.DraftFromProfile(original))
	require.NoError(t, err)
	profile, err := f.Submit()

	require.NoError(t, err)
	assert.Equal(t, original, profile)
}
