package model

import (
	"fmt"
	"time"
)

type InsightPriority string

const (
	InsightPriorityHigh   InsightPriority = "high"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityLow    InsightPriority = "low"
)

func (p InsightPriority) String() string {
	return string(p)
}

func (p InsightPriority) IsValid() bool {
	switch p {
	case InsightPriorityHigh, InsightPriorityMedium, InsightPriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting, high first.
func (p InsightPriority) Rank() int {
	switch p {
	case InsightPriorityHigh:
		return 0
	case InsightPriorityMedium:
		return 1
	default:
		return 2
	}
}

type InsightType string

const (
	InsightTypeStress    InsightType = "stress"
	InsightTypeRecovery  InsightType = "recovery"
	InsightTypeVolume    InsightType = "volume"
	InsightTypePlateau   InsightType = "plateau"
	InsightTypeExercise  InsightType = "exercise"
	InsightTypeReadiness InsightType = "readiness"
)

// CoachInsight is one human-readable recommendation in the weekly report.
type CoachInsight struct {
	ID         string          `json:"id"`
	Type       InsightType     `json:"type"`
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Confidence float64         `json:"confidence"`
	Priority   InsightPriority `json:"priority"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NewInsight builds an insight with a deterministic-enough id for client
// side deduplication within one report.
func NewInsight(
	insightType InsightType,
	priority InsightPriority,
	title, body string,
	confidence float64,
	createdAt time.Time,
) CoachInsight {
	return CoachInsight{
		ID:         fmt.Sprintf("%s-%s-%d", insightType, priority, createdAt.UnixNano()),
		Type:       insightType,
		Title:      title,
		Body:       body,
		Confidence: confidence,
		Priority:   priority,
		CreatedAt:  createdAt,
	}
}

type VolumeStatus string

const (
	VolumeStatusUnderMEV VolumeStatus = "under_mev"
	VolumeStatusOptimal  VolumeStatus = "optimal"
	VolumeStatusAboveMRV VolumeStatus = "above_mrv"
	VolumeStatusMaxed    VolumeStatus = "maxed"
)

func (s VolumeStatus) String() string {
	return string(s)
}

// VolumeMetric is the trailing-week set count of one muscle group,
// classified against its MEV/MRV landmarks.
type VolumeMetric struct {
	MuscleGroup string       `json:"muscleGroup"`
	WeeklySets  int          `json:"weeklySets"`
	MEV         int          `json:"mev"`
	MRV         int          `json:"mrv"`
	Status      VolumeStatus `json:"status"`
}
