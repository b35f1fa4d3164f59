// Package autonomy estimates how much programming independence the
// lifter has earned, from training consistency, volume handled and
// readiness over the trailing four weeks.
package autonomy

import (
	"math"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelElite        Level = "elite"
)

func (l Level) String() string {
	return string(l)
}

const (
	trailingWeeks  = 4
	trailingWindow = trailingWeeks * 7 * 24 * time.Hour

	// sessionCeiling is the weekly session count that maxes out the
	// consistency component.
	sessionCeiling = 5.0

	// advancedWeeklySets is the weekly completed-set volume that maxes
	// out the progression component.
	advancedWeeklySets = 60.0

	// neutralReadiness stands in when no surveys exist in the window.
	neutralReadiness = 75.0
)

// Estimate is the lifter's autonomy assessment on a 0-100 scale.
type Estimate struct {
	Level Level   `json:"level"`
	Score float64 `json:"score"`

	ConsistencyScore float64 `json:"consistencyScore"`
	ProgressionScore float64 `json:"progressionScore"`
	ReadinessScore   float64 `json:"readinessScore"`

	// NextLevel is empty at elite.
	NextLevel Level `json:"nextLevel,omitempty"`
	// WeeksToNextLevel estimates weeks of current-trajectory training
	// to reach the next tier; zero at elite.
	WeeksToNextLevel int `json:"weeksToNextLevel,omitempty"`
}

// Estimate blends consistency (x0.3), volume progression (x0.4) and
// readiness (x0.3) over the trailing four weeks.
func EstimateAutonomy(
	history []model.WorkoutSummary,
	readiness []model.ReadinessEntry,
	now time.Time,
) Estimate {
	windowStart := now.Add(-trailingWindow)

	var sessions, completedSets int
	for _, workout := range history {
		if workout.CompletedAt.Before(windowStart) || workout.CompletedAt.After(now) {
			continue
		}
		sessions++
		for _, exercise := range workout.Exercises {
			completedSets += exercise.CompletedSets
		}
	}

	avgWeeklySessions := float64(sessions) / trailingWeeks
	consistency := math.Min(avgWeeklySessions/sessionCeiling*100, 100)

	avgWeeklySets := float64(completedSets) / trailingWeeks
	progression := math.Min(avgWeeklySets/advancedWeeklySets*100, 100)

	readinessComponent := neutralReadiness
	var readinessSum, readinessCount int
	for _, entry := range readiness {
		if entry.SurveyedAt.Before(windowStart) || entry.SurveyedAt.After(now) {
			continue
		}
		readinessSum += entry.Score()
		readinessCount++
	}
	if readinessCount > 0 {
		readinessComponent = float64(readinessSum) / float64(readinessCount)
	}

	estimate := Estimate{
		Score:            consistency*0.3 + progression*0.4 + readinessComponent*0.3,
		ConsistencyScore: consistency,
		ProgressionScore: progression,
		ReadinessScore:   readinessComponent,
	}
	estimate.Level = levelFor(estimate.Score)

	if next, floor, ok := nextLevel(estimate.Level); ok {
		estimate.NextLevel = next
		weeks := int(math.Ceil((floor - estimate.Score) / 2))
		if weeks < 1 {
			weeks = 1
		}
		estimate.WeeksToNextLevel = weeks
	}

	return estimate
}

func levelFor(score float64) Level {
	switch {
	case score < 25:
		return LevelBeginner
	case score < 50:
		return LevelIntermediate
	case score < 75:
		return LevelAdvanced
	default:
		return LevelElite
	}
}

func nextLevel(level Level) (Level, float64, bool) {
	switch level {
	case LevelBeginner:
		return LevelIntermediate, 25, true
	case LevelIntermediate:
		return LevelAdvanced, 50, true
	case LevelAdvanced:
		return LevelElite, 75, true
	default:
		return "", 0, false
	}
}
