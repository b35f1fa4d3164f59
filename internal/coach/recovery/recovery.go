// Package recovery derives the lifter's recovery status and a composite
// training-stress score from trailing exertion, readiness surveys and
// session frequency.
package recovery

import (
	"math"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

type Status string

const (
	StatusRecovered   Status = "recovered"
	StatusFatigued    Status = "fatigued"
	StatusOvertrained Status = "overtrained"
)

func (s Status) String() string {
	return string(s)
}

type StressLevel string

const (
	StressLevelLow      StressLevel = "low"
	StressLevelModerate StressLevel = "moderate"
	StressLevelHigh     StressLevel = "high"
	StressLevelExtreme  StressLevel = "extreme"
)

// neutralReadiness stands in when no surveys were filed in the window.
const neutralReadiness = 75

const trailingWindow = 7 * 24 * time.Hour

// Analysis is the combined recovery and stress picture of the trailing
// week.
type Analysis struct {
	Status            Status  `json:"status"`
	SuggestedRestDays int     `json:"suggestedRestDays"`
	AvgRPE            float64 `json:"avgRpe"`
	ReadinessScore    int     `json:"readinessScore"`
	HasReadinessData  bool    `json:"hasReadinessData"`
	WeeklySessions    int     `json:"weeklySessions"`
	WeeklySets        int     `json:"weeklySets"`

	StressScore int         `json:"stressScore"`
	StressLevel StressLevel `json:"stressLevel"`
}

// Analyze computes the trailing-week recovery status and stress score at
// the given reference time.
func Analyze(
	history []model.WorkoutSummary,
	readiness []model.ReadinessEntry,
	now time.Time,
) Analysis {
	windowStart := now.Add(-trailingWindow)

	var sessions, weeklySets int
	var rpeSum float64
	var rpeCount int
	for _, workout := range history {
		if workout.CompletedAt.Before(windowStart) || workout.CompletedAt.After(now) {
			continue
		}
		sessions++
		for _, exercise := range workout.Exercises {
			weeklySets += exercise.CompletedSets
			for _, set := range exercise.Sets {
				if set.IsCompleted && set.RPE != nil {
					rpeSum += *set.RPE
					rpeCount++
				}
			}
		}
	}
	var avgRPE float64
	if rpeCount > 0 {
		avgRPE = rpeSum / float64(rpeCount)
	}

	readinessScore, hasReadiness := avgReadiness(readiness, windowStart, now)

	analysis := Analysis{
		AvgRPE:           avgRPE,
		ReadinessScore:   readinessScore,
		HasReadinessData: hasReadiness,
		WeeklySessions:   sessions,
		WeeklySets:       weeklySets,
	}

	switch {
	case avgRPE >= 9 || readinessScore < 30:
		analysis.Status = StatusOvertrained
		analysis.SuggestedRestDays = 2
	case avgRPE >= 8 || readinessScore < 50:
		analysis.Status = StatusFatigued
		analysis.SuggestedRestDays = 1
	default:
		analysis.Status = StatusRecovered
		analysis.SuggestedRestDays = 0
	}
	// even a recovered lifter training daily gets a rest day
	if sessions >= 6 && analysis.SuggestedRestDays < 1 {
		analysis.SuggestedRestDays = 1
	}

	analysis.StressScore = stressScore(readinessScore, sessions, weeklySets)
	analysis.StressLevel = stressLevel(analysis.StressScore)
	return analysis
}

func avgReadiness(readiness []model.ReadinessEntry, windowStart, now time.Time) (int, bool) {
	var sum, count int
	for _, entry := range readiness {
		if entry.SurveyedAt.Before(windowStart) || entry.SurveyedAt.After(now) {
			continue
		}
		sum += entry.Score()
		count++
	}
	if count == 0 {
		return neutralReadiness, false
	}
	return int(math.Round(float64(sum) / float64(count))), true
}

// stressScore blends readiness, frequency and volume stress 0.4/0.3/0.3,
// capped at 100.
func stressScore(readinessScore, sessions, weeklySets int) int {
	readinessStress := float64(100 - readinessScore)

	var frequencyStress float64
	switch {
	case sessions >= 6:
		frequencyStress = 40
	case sessions >= 4:
		frequencyStress = 20
	case sessions >= 3:
		frequencyStress = 0
	default:
		frequencyStress = 10
	}

	var volumeStress float64
	switch {
	case weeklySets >= 100:
		volumeStress = 30
	case weeklySets >= 60:
		volumeStress = 15
	}

	score := int(math.Round(readinessStress*0.4 + frequencyStress*0.3 + volumeStress*0.3))
	if score > 100 {
		score = 100
	}
	return score
}

func stressLevel(score int) StressLevel {
	switch {
	case score < 25:
		return StressLevelLow
	case score < 50:
		return StressLevelModerate
	case score < 75:
		return StressLevelHigh
	default:
		return StressLevelExtreme
	}
}
