// Package profileflow implements the three-step onboarding form that collects
// a profile before plan generation is allowed.
package profileflow

import (
	"errors"
	"fmt"
	"strings"

	"alcyxob/fitplanner/internal/domain"
)

// Step numbers. The flow is linear: Identity -> Stats -> Notes.
const (
	StepIdentity = 1
	StepStats    = 2
	StepNotes    = 3
)

var (
	ErrSubmitNotReachable = errors.New("profile can only be submitted from the last step")
	ErrInvalidStep        = errors.New("invalid step")
)

// Draft is the profile being collected. Every field is captured into the draft
// as it changes; Submit reads only from here.
type Draft struct {
	Name                string               `json:"name"`
	Age                 int                  `json:"age"`
	Gender              string               `json:"gender"`
	WeightKg            float64              `json:"weight"`
	HeightCm            float64              `json:"height"`
	ActivityLevel       domain.ActivityLevel `json:"activityLevel"`
	WorkoutDaysPerWeek  int                  `json:"workoutDaysPerWeek"`
	HealthConditions    string               `json:"healthConditions"`
	DietaryRestrictions string               `json:"dietaryRestrictions"`
}

// Flow is the form state machine. The zero value is not usable; use New or Resume.
type Flow struct {
	step  int
	draft Draft
}

// New starts a flow at step 1, optionally pre-filled (edit flow).
func New(prefill Draft) *Flow {
	return &Flow{step: StepIdentity, draft: prefill}
}

// Resume rebuilds a flow at step with the client-held draft.
func Resume(step int, draft Draft) (*Flow, error) {
	if step < StepIdentity || step > StepNotes {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	return &Flow{step: step, draft: draft}, nil
}

func (f *Flow) Step() int    { return f.step }
func (f *Flow) Draft() Draft { return f.draft }
func (f *Flow) IsLast() bool { return f.step == StepNotes }

// Next advances one step. It is a no-op on the last step.
func (f *Flow) Next() {
	if f.step < StepNotes {
		f.step++
	}
}

// Back retreats one step. It is a no-op on the first step.
func (f *Flow) Back() {
	if f.step > StepIdentity {
		f.step--
	}
}

func (f *Flow) SetIdentity(name string, age int, gender string) {
	f.draft.Name = name
	f.draft.Age = age
	f.draft.Gender = gender
}

func (f *Flow) SetStats(weightKg, heightCm float64, activity domain.ActivityLevel, workoutDays int) {
	f.draft.WeightKg = weightKg
	f.draft.HeightCm = heightCm
	f.draft.ActivityLevel = activity
	f.draft.WorkoutDaysPerWeek = workoutDays
}

func (f *Flow) SetNotes(healthConditions, dietaryRestrictions string) {
	f.draft.HealthConditions = healthConditions
	f.draft.DietaryRestrictions = dietaryRestrictions
}

// Submit hands the collected profile to the caller. It fails unless the flow
// is on the last step, and validates the draft at this boundary.
func (f *Flow) Submit() (*domain.Profile, error) {
	if !f.IsLast() {
		return nil, ErrSubmitNotReachable
	}
	d := f.draft
	profile := &domain.Profile{
		Name:                strings.TrimSpace(d.Name),
		Age:                 d.Age,
		Gender:              strings.ToLower(strings.TrimSpace(d.Gender)),
		WeightKg:            d.WeightKg,
		HeightCm:            d.HeightCm,
		ActivityLevel:       domain.ActivityLevel(strings.ToLower(string(d.ActivityLevel))),
		WorkoutDaysPerWeek:  d.WorkoutDaysPerWeek,
		HealthConditions:    strings.TrimSpace(d.HealthConditions),
		DietaryRestrictions: strings.TrimSpace(d.DietaryRestrictions),
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// DraftFromProfile pre-fills a draft for editing an existing profile.
func DraftFromProfile(p *domain.Profile) Draft {
	return Draft{
		Name:                p.Name,
		Age:                 p.Age,
		Gender:              p.Gender,
		WeightKg:            p.WeightKg,
		HeightCm:            p.HeightCm,
		ActivityLevel:       p.ActivityLevel,
		WorkoutDaysPerWeek:  p.WorkoutDaysPerWeek,
		HealthConditions:    p.HealthConditions,
		DietaryRestrictions: p.DietaryRestrictions,
	}
}
