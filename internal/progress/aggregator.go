// Package progress computes per-exercise history and statistics from the
// progress entries logged against a tracked plan.
package progress

import (
	"sort"

	"alcyxob/fitplanner/internal/domain"
)

// HistoryEntry is the sets performed for one exercise in one progress entry.
type HistoryEntry struct {
	Date string                `json:"date"`
	Sets []domain.PerformedSet `json:"sets"`
}

// Stats summarises an exercise's history. Volume is reps x weight summed over
// every set.
type Stats struct {
	MaxWeight    int `json:"maxWeight"`
	MaxReps      int `json:"maxReps"`
	TotalVolume  int `json:"totalVolume"`
	WorkoutCount int `json:"workoutCount"`
}

// History returns the sets logged under exerciseName, newest date first.
// Entries that share a date are kept as separate sessions in logged order.
func History(plan *domain.TrackedPlan, exerciseName string) []HistoryEntry {
	history := make([]HistoryEntry, 0)
	for _, entry := range plan.Progress {
		for _, ex := range entry.Exercises {
			if ex.Name != exerciseName {
				continue
			}
			history = append(history, HistoryEntry{Date: entry.Date, Sets: ex.Sets})
			break
		}
	}

	// YYYY-MM-DD sorts lexically in date order.
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history
}

// Summarize returns nil when history is empty so callers can tell "no data"
// apart from zero performance.
func Summarize(history []HistoryEntry) *Stats {
	if len(history) == 0 {
		return nil
	}

	stats := &Stats{WorkoutCount: len(history)}
	for _, day := range history {
		for _, set := range day.Sets {
			stats.MaxWeight = max(stats.MaxWeight, set.Weight)
			stats.MaxReps = max(stats.MaxReps, set.Reps)
			stats.TotalVolume += set.Reps * set.Weight
		}
	}
	return stats
}

// ExerciseReport bundles the history and stats for one exercise.
type ExerciseReport struct {
	Exercise string         `json:"exercise"`
	History  []HistoryEntry `json:"history"`
	Stats    *Stats         `json:"stats"`
}

// Report builds the history and summary for exerciseName in plan.
func Report(plan *domain.TrackedPlan, exerciseName string) ExerciseReport {
	history := History(plan, exerciseName)
	return ExerciseReport{
		Exercise: exerciseName,
		History:  history,
		Stats:    Summarize(history),
	}
}
