package generation

import (
	"fmt"
	"strings"

	"alcyxob/fitplanner/internal/domain"
)

// RequiredSections are the headings the assistant must structure its answer with.
var RequiredSections = []string{
	"Information Summary",
	"Weekly Workout Schedule",
	"Exercise Descriptions",
	"Safety Advice",
	"Progress Tracking Suggestions",
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}

// BuildPrompt renders the user message sent to the assistant. Every profile
// and preference field is embedded.
func BuildPrompt(profile *domain.Profile, prefs domain.GenerationPreferences) string {
	var b strings.Builder

	b.WriteString("Create a workout plan with these parameters:\n")
	fmt.Fprintf(&b, "Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "Gender: %s\n", profile.Gender)
	fmt.Fprintf(&b, "Weight: %g kg\n", profile.WeightKg)
	fmt.Fprintf(&b, "Height: %g cm\n", profile.HeightCm)
	fmt.Fprintf(&b, "Activity Level: %s\n", profile.ActivityLevel)
	fmt.Fprintf(&b, "Workout Days Per Week: %d\n", profile.WorkoutDaysPerWeek)
	fmt.Fprintf(&b, "Health Conditions: %s\n", orNone(profile.HealthConditions))
	fmt.Fprintf(&b, "Dietary Restrictions: %s\n", orNone(profile.DietaryRestrictions))

	b.WriteString("\nWorkout Preferences:\n")
	fmt.Fprintf(&b, "Fitness Level: %s\n", prefs.FitnessLevel)
	fmt.Fprintf(&b, "Goals: %s\n", prefs.Goals)
	fmt.Fprintf(&b, "Time Available: %d minutes\n", prefs.TimeAvailable)
	fmt.Fprintf(&b, "Equipment: %s\n", prefs.EquipmentDescription())

	b.WriteString("\nPlease provide a detailed workout plan that takes into account any health conditions ")
	b.WriteString("and dietary restrictions. Structure the response with these sections:\n")
	for _, section := range RequiredSections {
		fmt.Fprintf(&b, "### %s\n", section)
	}
	return b.String()
}
