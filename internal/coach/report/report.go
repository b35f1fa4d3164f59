// Package report assembles the weekly adaptation report by running every
// analyzer over the same history snapshot and merging their findings.
package report

import (
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/autonomy"
	"github.com/mdjurovic/liftcoach/internal/coach/model"
	"github.com/mdjurovic/liftcoach/internal/coach/plateau"
	"github.com/mdjurovic/liftcoach/internal/coach/recovery"
	"github.com/mdjurovic/liftcoach/internal/coach/sfr"
)

// ExerciseAssessment pairs the lifter's feedback on one exercise with
// its SFR score and compatibility status.
type ExerciseAssessment struct {
	ExerciseName string                 `json:"exerciseName"`
	Feedback     model.ExerciseFeedback `json:"feedback"`
	SFR          sfr.Score              `json:"sfr"`
	Status       sfr.Status             `json:"status"`
}

// WeekSummary is the headline numbers of the trailing seven days.
type WeekSummary struct {
	Sessions      int                    `json:"sessions"`
	TotalVolume   float64                `json:"totalVolume"`
	CompletedSets int                    `json:"completedSets"`
	NewRecords    []model.PersonalRecord `json:"newRecords,omitempty"`
}

// TrainTodayVerdict is the report's bottom line for the current day.
type TrainTodayVerdict struct {
	CanTrain bool   `json:"canTrain"`
	Message  string `json:"message"`
}

// WeeklyAdaptationReport is the full weekly output. It is always
// structurally complete: when a collaborator fails, its section is
// computed from empty data and Partial is set.
type WeeklyAdaptationReport struct {
	GeneratedAt time.Time                 `json:"generatedAt"`
	WeekSummary WeekSummary               `json:"weekSummary"`
	Volume      []model.VolumeMetric      `json:"volume"`
	Recovery    recovery.Analysis         `json:"recovery"`
	Plateaus    []plateau.Result          `json:"plateaus"`
	Exercises   []ExerciseAssessment      `json:"exercises"`
	Autonomy    autonomy.Estimate         `json:"autonomy"`
	Insights    []model.CoachInsight      `json:"insights"`
	// PriorityActions is ordered most urgent first.
	PriorityActions []string          `json:"priorityActions"`
	Summary         string            `json:"summary"`
	TrainToday      TrainTodayVerdict `json:"trainToday"`
	Partial         bool              `json:"partial,omitempty"`
}

// QuickStatus is the lightweight widget payload, always available.
type QuickStatus struct {
	CanTrain          bool      `json:"canTrain"`
	Status            string    `json:"status"`
	Message           string    `json:"message"`
	SuggestedRestDays int       `json:"suggestedRestDays"`
	CheckedAt         time.Time `json:"checkedAt"`
}
