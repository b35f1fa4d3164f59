package feedback

import (
	"sort"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

// ExerciseHistoryStats holds the day-bucketed averages of one exercise,
// used by clients to draw progress charts.
type ExerciseHistoryStats struct {
	ExerciseName string                    `json:"exerciseName"`
	Stats        map[time.Time]DailyLifted `json:"stats"`
}

type DailyLifted struct {
	AvgWeight float64 `json:"avgWeight"`
	AvgReps   float64 `json:"avgReps"`
	Sets      int     `json:"sets"`
}

// ExerciseHistory buckets every completed set of the exercise by calendar
// day (UTC) and averages weight and reps within each bucket.
func ExerciseHistory(exerciseName string, history []model.WorkoutSummary) ExerciseHistoryStats {
	type dayAccumulator struct {
		weightSum float64
		repsSum   int
		sets      int
	}
	days := make(map[time.Time]*dayAccumulator)

	for _, workout := range history {
		day := workout.CompletedAt.UTC().Truncate(24 * time.Hour)
		for _, exercise := range workout.Exercises {
			if exercise.ExerciseName != exerciseName {
				continue
			}
			for _, set := range exercise.Sets {
				if !set.IsCompleted {
					continue
				}
				acc := days[day]
				if acc == nil {
					acc = &dayAccumulator{}
					days[day] = acc
				}
				acc.weightSum += set.Weight
				acc.repsSum += set.Reps
				acc.sets++
			}
		}
	}

	stats := make(map[time.Time]DailyLifted, len(days))
	for day, acc := range days {
		stats[day] = DailyLifted{
			AvgWeight: acc.weightSum / float64(acc.sets),
			AvgReps:   float64(acc.repsSum) / float64(acc.sets),
			Sets:      acc.sets,
		}
	}

	return ExerciseHistoryStats{
		ExerciseName: exerciseName,
		Stats:        stats,
	}
}

// Days returns the bucketed days sorted ascending.
func (s ExerciseHistoryStats) Days() []time.Time {
	days := make([]time.Time, 0, len(s.Stats))
	for day := range s.Stats {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
