// Package sfr scores the stimulus-to-fatigue ratio of exercises by
// blending the population baseline with the lifter's own feedback, and
// classifies each exercise as proven, experimental or blacklisted.
package sfr

import (
	"fmt"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

type Status string

const (
	StatusProven       Status = "proven"
	StatusExperimental Status = "experimental"
	StatusBlacklisted  Status = "blacklisted"
)

func (s Status) String() string {
	return string(s)
}

// Score is the personalized SFR assessment of one exercise.
type Score struct {
	ExerciseName string  `json:"exerciseName"`
	Score        float64 `json:"score"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`

	ConnectionScore float64 `json:"connectionScore"`
	PainPenalty     float64 `json:"painPenalty"`
}

// ComputeScore blends the catalog population rating (0-10) with personal
// feedback into a 0-5 score:
//
//	score = popRating*0.5*0.3 + avgConnection*0.5 - painPenalty*0.2
//
// where painPenalty = painReports/totalSets * 5. The result is clamped
// to [0, 5]. With no feedback, or fewer than 3 logged sets, the
// normalized population rating is returned as-is: one or two sets say
// nothing reliable about connection or pain. Confidence grows with
// logged sets: 0 without feedback, capped at 0.3 under 3 sets, full
// scale at 20 sets.
func ComputeScore(exerciseName string, populationRating float64, feedback *model.ExerciseFeedback) Score {
	normalizedPop := clamp(populationRating*0.5, 0, 5)

	if feedback == nil || feedback.TotalSets == 0 {
		return Score{
			ExerciseName: exerciseName,
			Score:        normalizedPop,
			Confidence:   0,
			Reasoning:    "no personal feedback yet, score reflects the population baseline only",
		}
	}

	painPenalty := float64(feedback.PainReports) / float64(feedback.TotalSets) * 5

	if feedback.TotalSets < 3 {
		return Score{
			ExerciseName:    exerciseName,
			Score:           normalizedPop,
			Confidence:      min(float64(feedback.TotalSets)/10, 0.3),
			Reasoning:       "not enough logged sets yet, score reflects the population baseline only",
			ConnectionScore: feedback.AvgMuscleConnection,
			PainPenalty:     painPenalty,
		}
	}

	score := normalizedPop*0.3 + feedback.AvgMuscleConnection*0.5 - painPenalty*0.2
	score = clamp(score, 0, 5)

	return Score{
		ExerciseName:    exerciseName,
		Score:           score,
		Confidence:      min(float64(feedback.TotalSets)/20, 1),
		Reasoning:       reasoning(score, feedback.AvgMuscleConnection, painPenalty),
		ConnectionScore: feedback.AvgMuscleConnection,
		PainPenalty:     painPenalty,
	}
}

func reasoning(score, connection, painPenalty float64) string {
	var tier string
	switch {
	case score >= 4:
		tier = "excellent stimulus-to-fatigue ratio for you"
	case score >= 3:
		tier = "good stimulus-to-fatigue ratio"
	case score >= 2:
		tier = "moderate stimulus-to-fatigue ratio"
	default:
		tier = "low stimulus-to-fatigue ratio, consider a substitute"
	}

	switch {
	case painPenalty > 1:
		return fmt.Sprintf("%s, but pain reports are dragging it down", tier)
	case connection >= 4:
		return fmt.Sprintf("%s, with a strong mind-muscle connection", tier)
	default:
		return tier
	}
}

// DetermineStatus classifies an exercise from its score and feedback.
// Pain wins over everything: repeated pain at a meaningful rate
// blacklists the exercise regardless of how well it scores.
func DetermineStatus(score Score, feedback *model.ExerciseFeedback) Status {
	if feedback != nil && feedback.PainReports > 2 && feedback.PainRate() > 0.3 {
		return StatusBlacklisted
	}
	if score.Confidence >= 0.5 && score.Score >= 2.5 {
		return StatusProven
	}
	return StatusExperimental
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
