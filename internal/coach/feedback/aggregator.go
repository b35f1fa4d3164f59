// Package feedback folds raw workout history into per-exercise rolling
// stats. The fold is order-insensitive: means are computed from sums and
// counts, so shuffling the history changes nothing.
package feedback

import (
	"sort"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

type Aggregator struct {
	painClassifier PainClassifier
}

func NewAggregator(painClassifier PainClassifier) *Aggregator {
	if painClassifier == nil {
		painClassifier = NewKeywordPainClassifier()
	}
	return &Aggregator{painClassifier: painClassifier}
}

type exerciseAccumulator struct {
	connectionSum   float64
	connectionCount int
	rpeSum          float64
	rpeCount        int
	totalSets       int
	painReports     int
	lastPerformed   time.Time
}

// Aggregate folds the whole history into per-exercise feedback, keyed by
// exercise name. Exercises without a single completed set are omitted.
func (a *Aggregator) Aggregate(history []model.WorkoutSummary) map[string]model.ExerciseFeedback {
	accumulators := make(map[string]*exerciseAccumulator)

	for _, workout := range history {
		for _, exercise := range workout.Exercises {
			acc := accumulators[exercise.ExerciseName]
			if acc == nil {
				acc = &exerciseAccumulator{}
			}

			completed := 0
			for _, set := range exercise.Sets {
				if !set.IsCompleted {
					continue
				}
				completed++
				if set.MuscleConnection != nil {
					acc.connectionSum += float64(*set.MuscleConnection)
					acc.connectionCount++
				}
				if set.RPE != nil {
					acc.rpeSum += *set.RPE
					acc.rpeCount++
				}
				if a.painClassifier.IsPainSignal(set.Note, set.RPE, set.Reps) {
					acc.painReports++
				}
			}
			if completed == 0 {
				continue
			}

			acc.totalSets += completed
			if workout.CompletedAt.After(acc.lastPerformed) {
				acc.lastPerformed = workout.CompletedAt
			}
			accumulators[exercise.ExerciseName] = acc
		}
	}

	feedback := make(map[string]model.ExerciseFeedback, len(accumulators))
	for exerciseName, acc := range accumulators {
		exerciseFeedback := model.ExerciseFeedback{
			ExerciseName:  exerciseName,
			TotalSets:     acc.totalSets,
			PainReports:   acc.painReports,
			LastPerformed: acc.lastPerformed,
		}
		if acc.connectionCount > 0 {
			exerciseFeedback.AvgMuscleConnection = acc.connectionSum / float64(acc.connectionCount)
		}
		if acc.rpeCount > 0 {
			exerciseFeedback.AvgRPE = acc.rpeSum / float64(acc.rpeCount)
		}
		feedback[exerciseName] = exerciseFeedback
	}

	return feedback
}

// SortedNames returns feedback keys sorted alphabetically, for stable
// report ordering.
func SortedNames(feedback map[string]model.ExerciseFeedback) []string {
	names := make([]string, 0, len(feedback))
	for name := range feedback {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
