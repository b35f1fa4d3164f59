// Package library holds the static exercise catalog and the per-muscle
// weekly volume landmarks the analyzers classify against.
package library

import "strings"

// ExerciseInfo is the catalog entry for one known exercise.
type ExerciseInfo struct {
	Name string `json:"name"`
	// MuscleGroups lists trained muscles, primary first.
	MuscleGroups []string `json:"muscleGroups"`
	Equipment    string   `json:"equipment"`
	// PopulationRating is the population-average
	// stimulus-to-fatigue rating on a 0-10 scale.
	PopulationRating float64 `json:"populationRating"`
	IsCompound       bool    `json:"isCompound"`
}

// VolumeLandmarks are the weekly set-count boundaries of one muscle group:
// MEV is the minimum effective volume, MRV the maximum recoverable volume.
type VolumeLandmarks struct {
	MEV int `json:"mev"`
	MRV int `json:"mrv"`
}

type Library struct {
	exercises map[string]ExerciseInfo
	landmarks map[string]VolumeLandmarks
}

func New() *Library {
	return &Library{
		exercises: defaultExercises(),
		landmarks: defaultLandmarks(),
	}
}

// WithLandmarkOverrides replaces landmarks for the given muscle groups,
// keeping defaults for the rest.
func (l *Library) WithLandmarkOverrides(overrides map[string]VolumeLandmarks) *Library {
	for muscleGroup, landmarks := range overrides {
		l.landmarks[normalize(muscleGroup)] = landmarks
	}
	return l
}

// Exercise looks up a catalog entry by name, case-insensitive.
func (l *Library) Exercise(name string) (ExerciseInfo, bool) {
	info, ok := l.exercises[normalize(name)]
	return info, ok
}

// PopulationRating returns the catalog rating for the exercise, or the
// neutral midpoint 5.0 for exercises the catalog does not know.
func (l *Library) PopulationRating(exerciseName string) float64 {
	if info, ok := l.Exercise(exerciseName); ok {
		return info.PopulationRating
	}
	return 5.0
}

// MuscleGroups returns the trained muscles for the exercise; unknown
// exercises yield none.
func (l *Library) MuscleGroups(exerciseName string) []string {
	if info, ok := l.Exercise(exerciseName); ok {
		return info.MuscleGroups
	}
	return nil
}

// Landmarks returns the MEV/MRV boundaries for a muscle group, falling
// back to generic landmarks for untracked groups.
func (l *Library) Landmarks(muscleGroup string) VolumeLandmarks {
	if landmarks, ok := l.landmarks[normalize(muscleGroup)]; ok {
		return landmarks
	}
	return VolumeLandmarks{MEV: 8, MRV: 18}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func defaultLandmarks() map[string]VolumeLandmarks {
	return map[string]VolumeLandmarks{
		"chest":      {MEV: 10, MRV: 20},
		"back":       {MEV: 10, MRV: 22},
		"lats":       {MEV: 10, MRV: 22},
		"quads":      {MEV: 8, MRV: 18},
		"hamstrings": {MEV: 6, MRV: 16},
		"glutes":     {MEV: 4, MRV: 16},
		"shoulders":  {MEV: 8, MRV: 22},
		"biceps":     {MEV: 8, MRV: 20},
		"triceps":    {MEV: 6, MRV: 18},
		"calves":     {MEV: 8, MRV: 20},
		"abs":        {MEV: 6, MRV: 20},
		"traps":      {MEV: 4, MRV: 16},
		"forearms":   {MEV: 4, MRV: 16},
	}
}

func defaultExercises() map[string]ExerciseInfo {
	catalog := []ExerciseInfo{
		{
			Name:             "Bench Press",
			MuscleGroups:     []string{"chest", "triceps", "shoulders"},
			Equipment:        "barbell",
			PopulationRating: 7.5,
			IsCompound:       true,
		},
		{
			Name:             "Incline Dumbbell Press",
			MuscleGroups:     []string{"chest", "shoulders", "triceps"},
			Equipment:        "dumbbell",
			PopulationRating: 8,
			IsCompound:       true,
		},
		{
			Name:             "Cable Fly",
			MuscleGroups:     []string{"chest"},
			Equipment:        "cable",
			PopulationRating: 8.5,
			IsCompound:       false,
		},
		{
			Name:             "Machine Chest Press",
			MuscleGroups:     []string{"chest", "triceps"},
			Equipment:        "machine",
			PopulationRating: 7,
			IsCompound:       true,
		},
		{
			Name:             "Deadlift",
			MuscleGroups:     []string{"back", "hamstrings", "glutes", "traps"},
			Equipment:        "barbell",
			PopulationRating: 5.5,
			IsCompound:       true,
		},
		{
			Name:             "Barbell Row",
			MuscleGroups:     []string{"back", "lats", "biceps"},
			Equipment:        "barbell",
			PopulationRating: 7,
			IsCompound:       true,
		},
		{
			Name:             "Pull Up",
			MuscleGroups:     []string{"lats", "biceps"},
			Equipment:        "bodyweight",
			PopulationRating: 8.5,
			IsCompound:       true,
		},
		{
			Name:             "Lat Pulldown",
			MuscleGroups:     []string{"lats", "biceps"},
			Equipment:        "cable",
			PopulationRating: 8,
			IsCompound:       true,
		},
		{
			Name:             "Seated Cable Row",
			MuscleGroups:     []string{"back", "lats", "biceps"},
			Equipment:        "cable",
			PopulationRating: 8,
			IsCompound:       true,
		},
		{
			Name:             "Squat",
			MuscleGroups:     []string{"quads", "glutes"},
			Equipment:        "barbell",
			PopulationRating: 6.5,
			IsCompound:       true,
		},
		{
			Name:             "Leg Press",
			MuscleGroups:     []string{"quads", "glutes"},
			Equipment:        "machine",
			PopulationRating: 8,
			IsCompound:       true,
		},
		{
			Name:             "Leg Extension",
			MuscleGroups:     []string{"quads"},
			Equipment:        "machine",
			PopulationRating: 8.5,
			IsCompound:       false,
		},
		{
			Name:             "Romanian Deadlift",
			MuscleGroups:     []string{"hamstrings", "glutes"},
			Equipment:        "barbell",
			PopulationRating: 7.5,
			IsCompound:       true,
		},
		{
			Name:             "Leg Curl",
			MuscleGroups:     []string{"hamstrings"},
			Equipment:        "machine",
			PopulationRating: 8.5,
			IsCompound:       false,
		},
		{
			Name:             "Hip Thrust",
			MuscleGroups:     []string{"glutes"},
			Equipment:        "barbell",
			PopulationRating: 8,
			IsCompound:       true,
		},
		{
			Name:             "Overhead Press",
			MuscleGroups:     []string{"shoulders", "triceps"},
			Equipment:        "barbell",
			PopulationRating: 7,
			IsCompound:       true,
		},
		{
			Name:             "Lateral Raise",
			MuscleGroups:     []string{"shoulders"},
			Equipment:        "dumbbell",
			PopulationRating: 9,
			IsCompound:       false,
		},
		{
			Name:             "Face Pull",
			MuscleGroups:     []string{"shoulders", "traps"},
			Equipment:        "cable",
			PopulationRating: 8.5,
			IsCompound:       false,
		},
		{
			Name:             "Barbell Curl",
			MuscleGroups:     []string{"biceps"},
			Equipment:        "barbell",
			PopulationRating: 8,
			IsCompound:       false,
		},
		{
			Name:             "Hammer Curl",
			MuscleGroups:     []string{"biceps", "forearms"},
			Equipment:        "dumbbell",
			PopulationRating: 8,
			IsCompound:       false,
		},
		{
			Name:             "Triceps Pushdown",
			MuscleGroups:     []string{"triceps"},
			Equipment:        "cable",
			PopulationRating: 8.5,
			IsCompound:       false,
		},
		{
			Name:             "Skull Crusher",
			MuscleGroups:     []string{"triceps"},
			Equipment:        "barbell",
			PopulationRating: 7.5,
			IsCompound:       false,
		},
		{
			Name:             "Standing Calf Raise",
			MuscleGroups:     []string{"calves"},
			Equipment:        "machine",
			PopulationRating: 8,
			IsCompound:       false,
		},
		{
			Name:             "Cable Crunch",
			MuscleGroups:     []string{"abs"},
			Equipment:        "cable",
			PopulationRating: 8,
			IsCompound:       false,
		},
		{
			Name:             "Hanging Leg Raise",
			MuscleGroups:     []string{"abs"},
			Equipment:        "bodyweight",
			PopulationRating: 8,
			IsCompound:       false,
		},
	}

	exercises := make(map[string]ExerciseInfo, len(catalog))
	for _, info := range catalog {
		exercises[normalize(info.Name)] = info
	}
	return exercises
}
