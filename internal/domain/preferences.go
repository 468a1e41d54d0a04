package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// EquipmentTier is the coarse equipment bucket picked in the generation form.
type EquipmentTier string

const (
	EquipmentMinimal EquipmentTier = "minimal"
	EquipmentBasic   EquipmentTier = "basic"
	EquipmentFull    EquipmentTier = "full"
)

var ErrInvalidPreferences = errors.New("invalid generation preferences")

// TimeAvailableOptions are the session lengths, in minutes, a user can pick.
var TimeAvailableOptions = []int{15, 30, 45, 60}

// GenerationPreferences is scoped to a single generation request and stored
// alongside the plan it produced.
type GenerationPreferences struct {
	FitnessLevel    FitnessLevel  `bson:"fitnessLevel" json:"fitnessLevel"`
	Goals           string        `bson:"goals" json:"goals"`
	TimeAvailable   int           `bson:"timeAvailable" json:"timeAvailable"`
	Equipment       EquipmentTier `bson:"equipment" json:"equipment"`
	CustomEquipment []string      `bson:"customEquipment,omitempty" json:"customEquipment,omitempty"`
}

// Normalize trims custom equipment entries and drops blanks and duplicates.
func (p *GenerationPreferences) Normalize() {
	p.Goals = strings.TrimSpace(p.Goals)
	cleaned := make([]string, 0, len(p.CustomEquipment))
	for _, item := range p.CustomEquipment {
		item = strings.TrimSpace(item)
		if item == "" || slices.Contains(cleaned, item) {
			continue
		}
		cleaned = append(cleaned, item)
	}
	p.CustomEquipment = cleaned
}

func (p *GenerationPreferences) Validate() error {
	switch p.FitnessLevel {
	case FitnessBeginner, FitnessIntermediate, FitnessAdvanced:
	default:
		return fmt.Errorf("%w: unknown fitness level %q", ErrInvalidPreferences, p.FitnessLevel)
	}
	switch p.Equipment {
	case EquipmentMinimal, EquipmentBasic, EquipmentFull:
	default:
		return fmt.Errorf("%w: unknown equipment tier %q", ErrInvalidPreferences, p.Equipment)
	}
	if !slices.Contains(TimeAvailableOptions, p.TimeAvailable) {
		return fmt.Errorf("%w: time available must be one of %v minutes", ErrInvalidPreferences, TimeAvailableOptions)
	}
	return nil
}

// EquipmentDescription renders the tier plus any custom items, e.g. "basic (Additional: kettlebell, bench)".
func (p *GenerationPreferences) EquipmentDescription() string {
	if len(p.CustomEquipment) == 0 {
		return string(p.Equipment)
	}
	return fmt.Sprintf("%s (Additional: %s)", p.Equipment, strings.Join(p.CustomEquipment, ", "))
}
