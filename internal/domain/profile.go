package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLevel describes how active the user is outside planned workouts.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

var ErrInvalidProfile = errors.New("invalid profile")

// Profile bounds accepted at the boundary. Weight is kilograms, height centimetres.
const (
	MinAge         = 16
	MaxAge         = 100
	MinWeightKg    = 30
	MaxWeightKg    = 300
	MinHeightCm    = 100
	MaxHeightCm    = 250
	MinWorkoutDays = 2
	MaxWorkoutDays = 6
)

var genders = map[string]bool{"male": true, "female": true, "other": true}

// Profile holds the user attributes collected during onboarding.
// There is exactly one per user; saving overwrites it in place.
type Profile struct {
	UserID              primitive.ObjectID `bson:"_id" json:"-"`
	Name                string             `bson:"name" json:"name"`
	Age                 int                `bson:"age" json:"age"`
	Gender              string             `bson:"gender" json:"gender"`
	WeightKg            float64            `bson:"weight" json:"weight"`
	HeightCm            float64            `bson:"height" json:"height"`
	ActivityLevel       ActivityLevel      `bson:"activityLevel" json:"activityLevel"`
	WorkoutDaysPerWeek  int                `bson:"workoutDaysPerWeek" json:"workoutDaysPerWeek"`
	HealthConditions    string             `bson:"healthConditions,omitempty" json:"healthConditions,omitempty"`
	DietaryRestrictions string             `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ParseActivityLevel returns the level for s or an error for unknown values.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch l := ActivityLevel(strings.ToLower(strings.TrimSpace(s))); l {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVery, ActivityExtra:
		return l, nil
	}
	return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, s)
}

// Validate checks the identity, stats and frequency fields.
// Health and dietary notes are free text and never rejected.
func (p *Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.Age < MinAge || p.Age > MaxAge {
		errs = append(errs, fmt.Errorf("age must be between %d and %d", MinAge, MaxAge))
	}
	if !genders[p.Gender] {
		errs = append(errs, errors.New("gender must be one of male, female, other"))
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		errs = append(errs, fmt.Errorf("weight must be between %d and %d kg", MinWeightKg, MaxWeightKg))
	}
	if p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		errs = append(errs, fmt.Errorf("height must be between %d and %d cm", MinHeightCm, MaxHeightCm))
	}
	if _, err := ParseActivityLevel(string(p.ActivityLevel)); err != nil {
		errs = append(errs, fmt.Errorf("unknown activity level %q", p.ActivityLevel))
	}
	if p.WorkoutDaysPerWeek < MinWorkoutDays || p.WorkoutDaysPerWeek > MaxWorkoutDays {
		errs = append(errs, fmt.Errorf("workout days per week must be between %d and %d", MinWorkoutDays, MaxWorkoutDays))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(errs...))
	}
	return nil
}
