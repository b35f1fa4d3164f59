package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExerciseSessionSummary(t *testing.T) {
	rpe8 := 8.0
	rpe9 := 9.0
	sets := []CompletedSet{
		{Weight: 100, Reps: 8, RPE: &rpe8, IsCompleted: true},
		{Weight: 105, Reps: 6, RPE: &rpe9, IsCompleted: true},
		{Weight: 110, Reps: 4, IsCompleted: false},
	}

	summary := NewExerciseSessionSummary("Bench Press", []string{"chest", "triceps"}, "barbell", sets)

	assert.Equal(t, 2, summary.CompletedSets)
	assert.Equal(t, 3, summary.TotalSets)
	assert.Equal(t, float64(100*8+105*6), summary.TotalVolume)
	assert.Equal(t, 105.0, summary.TopWeight)
	assert.Equal(t, 8, summary.TopReps)
	assert.InDelta(t, 8.5, summary.AvgRPE, 0.001)
}

func TestNewExerciseSessionSummary_NoCompletedSets(t *testing.T) {
	summary := NewExerciseSessionSummary("Squat", []string{"quads"}, "barbell", []CompletedSet{
		{Weight: 120, Reps: 5, IsCompleted: false},
	})

	assert.Equal(t, 0, summary.CompletedSets)
	assert.Zero(t, summary.TotalVolume)
	assert.Zero(t, summary.TopWeight)
	assert.Zero(t, summary.AvgRPE)
}

func TestReadinessEntry_Score(t *testing.T) {
	testCases := []struct {
		name     string
		entry    ReadinessEntry
		expected int
	}{
		{
			name: "perfect",
			entry: ReadinessEntry{
				Soreness: 1, SleepQuality: 5, StressLevel: 1, EnergyLevel: 5,
			},
			expected: 90,
		},
		{
			name: "worst",
			entry: ReadinessEntry{
				Soreness: 5, SleepQuality: 1, StressLevel: 5, EnergyLevel: 1,
			},
			expected: 10,
		},
		{
			name: "middling",
			entry: ReadinessEntry{
				Soreness: 3, SleepQuality: 3, StressLevel: 3, EnergyLevel: 3,
			},
			expected: 50,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.entry.Score())
		})
	}
}

func TestReadinessEntry_Validate(t *testing.T) {
	valid := ReadinessEntry{
		Soreness: 2, SleepQuality: 4, StressLevel: 1, EnergyLevel: 5,
		SurveyedAt: time.Now(),
	}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.EnergyLevel = 6
	require.Error(t, invalid.Validate())

	invalid = valid
	invalid.Soreness = 0
	require.Error(t, invalid.Validate())
}

func TestRecordType_IsValid(t *testing.T) {
	for _, rt := range RecordTypes() {
		assert.True(t, rt.IsValid())
	}
	assert.False(t, RecordType("tonnage").IsValid())
}

func TestInsightPriority_Rank(t *testing.T) {
	assert.Less(t, InsightPriorityHigh.Rank(), InsightPriorityMedium.Rank())
	assert.Less(t, InsightPriorityMedium.Rank(), InsightPriorityLow.Rank())
}
