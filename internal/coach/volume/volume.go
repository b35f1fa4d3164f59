// Package volume counts trailing-week working sets per muscle group and
// classifies them against the MEV/MRV landmarks.
package volume

import (
	"sort"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/library"
	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

const trailingWindow = 7 * 24 * time.Hour

type Analyzer struct {
	library *library.Library
}

func NewAnalyzer(lib *library.Library) *Analyzer {
	return &Analyzer{library: lib}
}

// Analyze counts completed sets per muscle group over the trailing seven
// days ending at now. An exercise hitting several muscle groups credits
// its full set count to each of them. Metrics come back sorted by weekly
// sets descending, then group name.
func (a *Analyzer) Analyze(history []model.WorkoutSummary, now time.Time) []model.VolumeMetric {
	weeklySets := make(map[string]int)
	windowStart := now.Add(-trailingWindow)

	for _, workout := range history {
		if workout.CompletedAt.Before(windowStart) || workout.CompletedAt.After(now) {
			continue
		}
		for _, exercise := range workout.Exercises {
			if exercise.CompletedSets == 0 {
				continue
			}
			muscleGroups := exercise.MuscleGroups
			if len(muscleGroups) == 0 {
				muscleGroups = a.library.MuscleGroups(exercise.ExerciseName)
			}
			for _, muscleGroup := range muscleGroups {
				weeklySets[muscleGroup] += exercise.CompletedSets
			}
		}
	}

	metrics := make([]model.VolumeMetric, 0, len(weeklySets))
	for muscleGroup, sets := range weeklySets {
		landmarks := a.library.Landmarks(muscleGroup)
		metrics = append(metrics, model.VolumeMetric{
			MuscleGroup: muscleGroup,
			WeeklySets:  sets,
			MEV:         landmarks.MEV,
			MRV:         landmarks.MRV,
			Status:      classify(sets, landmarks),
		})
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].WeeklySets != metrics[j].WeeklySets {
			return metrics[i].WeeklySets > metrics[j].WeeklySets
		}
		return metrics[i].MuscleGroup < metrics[j].MuscleGroup
	})
	return metrics
}

func classify(weeklySets int, landmarks library.VolumeLandmarks) model.VolumeStatus {
	switch {
	case weeklySets < landmarks.MEV:
		return model.VolumeStatusUnderMEV
	case weeklySets <= landmarks.MRV:
		return model.VolumeStatusOptimal
	case float64(weeklySets) <= float64(landmarks.MRV)*1.2:
		return model.VolumeStatusAboveMRV
	default:
		return model.VolumeStatusMaxed
	}
}
