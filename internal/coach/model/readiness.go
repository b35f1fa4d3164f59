package model

import (
	"fmt"
	"math"
	"time"
)

// ReadinessEntry is one daily pre-training survey. All four answers are
// on a 1-5 scale.
type ReadinessEntry struct {
	ID           int       `json:"id"`
	Soreness     int       `json:"soreness"`
	SleepQuality int       `json:"sleepQuality"`
	StressLevel  int       `json:"stressLevel"`
	EnergyLevel  int       `json:"energyLevel"`
	Notes        string    `json:"notes,omitempty"`
	SurveyedAt   time.Time `json:"surveyedAt"`
}

func (r ReadinessEntry) Validate() error {
	for _, answer := range []struct {
		name  string
		value int
	}{
		{"soreness", r.Soreness},
		{"sleepQuality", r.SleepQuality},
		{"stressLevel", r.StressLevel},
		{"energyLevel", r.EnergyLevel},
	} {
		if answer.value < 1 || answer.value > 5 {
			return fmt.Errorf("%s must be between 1 and 5, got %d", answer.name, answer.value)
		}
	}
	return nil
}

// Score maps the four answers to a 0-100 readiness score. Soreness and
// stress count inverted (a rating of 5 is bad), sleep and energy count
// directly.
func (r ReadinessEntry) Score() int {
	raw := float64((5-r.Soreness)+r.SleepQuality+(5-r.StressLevel)+r.EnergyLevel) / 20 * 100
	return int(math.Round(raw))
}
