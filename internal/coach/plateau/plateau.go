// Package plateau detects stalled strength progress by regressing an
// exercise's weight-record timeline over time.
package plateau

import (
	"fmt"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

const (
	// DefaultMinWeeks is how long without a new weight record counts as
	// a plateau candidate.
	DefaultMinWeeks = 4

	criticalWeeks = 8

	// slopeThreshold in kg per week; flatter trends count as stalled.
	slopeThreshold = 0.1

	weekHours = 7 * 24
)

type Result struct {
	ExerciseName string `json:"exerciseName"`
	// HasEnoughData is false with fewer than three weight records, in
	// which case the rest of the result carries no signal.
	HasEnoughData        bool    `json:"hasEnoughData"`
	IsOnPlateau          bool    `json:"isOnPlateau"`
	WeeksSinceLastRecord float64 `json:"weeksSinceLastRecord"`
	// SlopePerWeek is the fitted weight change per week, positive when
	// the records trend up.
	SlopePerWeek float64 `json:"slopePerWeek"`
	Message      string  `json:"message"`
}

// Detect fits an ordinary-least-squares line through the exercise's
// weight records (weeks ago vs weight) and flags a plateau when the
// newest record is at least minWeeks old and the fitted trend is flat.
func Detect(exerciseName string, timeline []model.PersonalRecord, now time.Time, minWeeks int) Result {
	result := Result{ExerciseName: exerciseName}
	if len(timeline) < 3 {
		result.Message = "not enough records yet to judge progression"
		return result
	}
	result.HasEnoughData = true

	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(timeline))
	newest := timeline[0].AchievedAt
	for _, record := range timeline {
		weeksAgo := now.Sub(record.AchievedAt).Hours() / weekHours
		sumX += weeksAgo
		sumY += record.Weight
		sumXY += weeksAgo * record.Weight
		sumXX += weeksAgo * weeksAgo
		if record.AchievedAt.After(newest) {
			newest = record.AchievedAt
		}
	}

	denominator := n*sumXX - sumX*sumX
	if denominator != 0 {
		// slope on the weeks-ago axis is inverted: negate so that a
		// positive slope means the weight is going up over time
		result.SlopePerWeek = -(n*sumXY - sumX*sumY) / denominator
	}

	result.WeeksSinceLastRecord = now.Sub(newest).Hours() / weekHours
	flat := result.SlopePerWeek < slopeThreshold && result.SlopePerWeek > -slopeThreshold
	result.IsOnPlateau = result.WeeksSinceLastRecord >= float64(minWeeks) && flat

	result.Message = message(result)
	return result
}

func message(result Result) string {
	weeks := int(result.WeeksSinceLastRecord)
	switch {
	case result.IsOnPlateau && result.WeeksSinceLastRecord >= criticalWeeks:
		return fmt.Sprintf(
			"no weight record in %d weeks and progress is flat: change the stimulus (new variation, rep range or a deload)",
			weeks,
		)
	case result.IsOnPlateau:
		return fmt.Sprintf(
			"progress has stalled for %d weeks, consider rotating this movement or adjusting the load",
			weeks,
		)
	case result.SlopePerWeek >= slopeThreshold:
		return "progressing well, keep the current approach"
	case result.WeeksSinceLastRecord >= float64(DefaultMinWeeks):
		return "records are moving but slowly, watch the trend"
	default:
		return "recent records look healthy"
	}
}
