package model

import "time"

// CompletedSet is a single logged set within an exercise session.
// Immutable once logged; owned by the workout it was logged in.
type CompletedSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	// RPE is the rate of perceived exertion, 0-10, when reported
	RPE *float64 `json:"rpe,omitempty"`
	// MuscleConnection is a 1-5 mind-muscle connection rating, when reported
	MuscleConnection *int   `json:"muscleConnection,omitempty"`
	IsCompleted      bool   `json:"isCompleted"`
	Note             string `json:"note,omitempty"`
}

// Volume returns the set volume (weight x reps), 0 for incomplete sets.
func (s CompletedSet) Volume() float64 {
	if !s.IsCompleted {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// ExerciseSessionSummary aggregates all sets of one exercise within one
// workout session. Created at session completion, immutable thereafter.
type ExerciseSessionSummary struct {
	ExerciseName  string         `json:"exerciseName"`
	MuscleGroups  []string       `json:"muscleGroups"`
	Equipment     string         `json:"equipment,omitempty"`
	CompletedSets int            `json:"completedSets"`
	TotalSets     int            `json:"totalSets"`
	TotalVolume   float64        `json:"totalVolume"`
	TopWeight     float64        `json:"topWeight"`
	TopReps       int            `json:"topReps"`
	AvgRPE        float64        `json:"avgRpe"`
	Sets          []CompletedSet `json:"sets"`
}

// NewExerciseSessionSummary derives the aggregate fields from the raw sets.
func NewExerciseSessionSummary(
	exerciseName string,
	muscleGroups []string,
	equipment string,
	sets []CompletedSet,
) ExerciseSessionSummary {
	summary := ExerciseSessionSummary{
		ExerciseName: exerciseName,
		MuscleGroups: muscleGroups,
		Equipment:    equipment,
		TotalSets:    len(sets),
		Sets:         sets,
	}

	var rpeSum float64
	var rpeCount int
	for _, set := range sets {
		if !set.IsCompleted {
			continue
		}
		summary.CompletedSets++
		summary.TotalVolume += set.Volume()
		if set.Weight > summary.TopWeight {
			summary.TopWeight = set.Weight
		}
		if set.Reps > summary.TopReps {
			summary.TopReps = set.Reps
		}
		if set.RPE != nil {
			rpeSum += *set.RPE
			rpeCount++
		}
	}
	if rpeCount > 0 {
		summary.AvgRPE = rpeSum / float64(rpeCount)
	}

	return summary
}

// WorkoutSummary is one completed workout. Workout history is append-only.
type WorkoutSummary struct {
	ID                 int                      `json:"id"`
	WorkoutName        string                   `json:"workoutName"`
	DurationSeconds    int                      `json:"durationSeconds"`
	TotalVolume        float64                  `json:"totalVolume"`
	TotalSetsCompleted int                      `json:"totalSetsCompleted"`
	TotalSetsPlanned   int                      `json:"totalSetsPlanned"`
	AverageRPE         float64                  `json:"averageRpe"`
	Exercises          []ExerciseSessionSummary `json:"exercises"`
	CompletedAt        time.Time                `json:"completedAt"`
	PRs                []PersonalRecord         `json:"prs,omitempty"`
}

// ExerciseFeedback holds per-exercise rolling stats derived from history.
// Never persisted separately - recomputed by the feedback aggregator.
type ExerciseFeedback struct {
	ExerciseName        string    `json:"exerciseName"`
	AvgMuscleConnection float64   `json:"avgMuscleConnection"`
	AvgRPE              float64   `json:"avgRpe"`
	TotalSets           int       `json:"totalSets"`
	PainReports         int       `json:"painReports"`
	LastPerformed       time.Time `json:"lastPerformed"`
}

// PainRate returns the share of sets flagged as pain signals, in [0,1].
func (f ExerciseFeedback) PainRate() float64 {
	if f.TotalSets == 0 {
		return 0
	}
	return float64(f.PainReports) / float64(f.TotalSets)
}
