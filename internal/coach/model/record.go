package model

import (
	"time"
)

type RecordType string

const (
	RecordTypeWeight RecordType = "weight"
	RecordTypeReps   RecordType = "reps"
	RecordTypeVolume RecordType = "volume"
)

func (rt RecordType) String() string {
	return string(rt)
}

func (rt RecordType) IsValid() bool {
	switch rt {
	case RecordTypeWeight, RecordTypeReps, RecordTypeVolume:
		return true
	default:
		return false
	}
}

// RecordTypes lists all record types, in display order.
func RecordTypes() []RecordType {
	return []RecordType{RecordTypeWeight, RecordTypeReps, RecordTypeVolume}
}

// PersonalRecord is one entry in the append-only PR ledger.
type PersonalRecord struct {
	ID           int        `json:"id,omitempty"`
	ExerciseName string     `json:"exerciseName"`
	Type         RecordType `json:"type"`
	// Value is the record magnitude in the unit of Type:
	// kg for weight, reps count for reps, kg*reps for volume.
	Value      float64   `json:"value"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	AchievedAt time.Time `json:"achievedAt"`
}
