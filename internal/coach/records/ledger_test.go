package records

import (
	"math"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

func TestLedger_CheckForPR_FirstEverSet(t *testing.T) {
	now := time.Date(2025, 4, 1, 18, 30, 0, 0, time.UTC)
	ledger := NewLedgerWithClock(func() time.Time { return now })

	result := ledger.CheckForPR("Bench Press", 185, 8)

	require.True(t, result.IsNewPR)
	assert.ElementsMatch(t, []model.RecordType{
		model.RecordTypeWeight, model.RecordTypeReps, model.RecordTypeVolume,
	}, result.Types)

	weightPR, ok := ledger.CurrentBest("Bench Press", model.RecordTypeWeight)
	require.True(t, ok)
	assert.Equal(t, 185.0, weightPR.Value)
	assert.Equal(t, now, weightPR.AchievedAt)

	volumePR, ok := ledger.CurrentBest("Bench Press", model.RecordTypeVolume)
	require.True(t, ok)
	assert.Equal(t, 185.0*8, volumePR.Value)
}

func TestLedger_CheckForPR_StrictlyGreaterOnly(t *testing.T) {
	ledger := NewLedger()
	require.True(t, ledger.CheckForPR("Squat", 140, 5).IsNewPR)

	// equal values are not records
	repeat := ledger.CheckForPR("Squat", 140, 5)
	assert.False(t, repeat.IsNewPR)
	assert.Empty(t, repeat.Types)

	// heavier but fewer reps and less volume: weight PR only
	heavier := ledger.CheckForPR("Squat", 145, 3)
	require.True(t, heavier.IsNewPR)
	assert.Equal(t, []model.RecordType{model.RecordTypeWeight}, heavier.Types)
}

func TestLedger_CheckForPR_RejectsNonPositiveInput(t *testing.T) {
	ledger := NewLedger()

	assert.False(t, ledger.CheckForPR("Deadlift", 0, 5).IsNewPR)
	assert.False(t, ledger.CheckForPR("Deadlift", -100, 5).IsNewPR)
	assert.False(t, ledger.CheckForPR("Deadlift", 180, 0).IsNewPR)
	assert.Empty(t, ledger.CurrentBests())
}

func TestLedger_CheckForPR_BestsAreMonotonic(t *testing.T) {
	ledger := NewLedger()
	weights := []float64{100, 95, 110, 110, 102, 120, 80}

	maxWeight := 0.0
	for _, weight := range weights {
		ledger.CheckForPR("Overhead Press", weight, 5)
		if weight > maxWeight {
			maxWeight = weight
		}
		best, ok := ledger.CurrentBest("Overhead Press", model.RecordTypeWeight)
		require.True(t, ok)
		assert.Equal(t, maxWeight, best.Value)
	}
}

func rebuildHistory() []model.WorkoutSummary {
	day := func(d int) time.Time {
		return time.Date(2025, 2, d, 17, 0, 0, 0, time.UTC)
	}
	session := func(d int, topWeight float64, topReps int) model.WorkoutSummary {
		return model.WorkoutSummary{
			CompletedAt: day(d),
			Exercises: []model.ExerciseSessionSummary{{
				ExerciseName:  "Bench Press",
				CompletedSets: 3,
				TopWeight:     topWeight,
				TopReps:       topReps,
			}},
		}
	}
	return []model.WorkoutSummary{
		session(3, 80, 8),
		session(10, 82.5, 8),
		session(17, 82.5, 10),
		session(24, 85, 6),
	}
}

func TestLedger_RebuildFromHistory(t *testing.T) {
	ledger := NewLedger()
	// descending input: rebuild must order by completedAt itself
	history := rebuildHistory()
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	ledger.RebuildFromHistory(history)

	weight, ok := ledger.CurrentBest("Bench Press", model.RecordTypeWeight)
	require.True(t, ok)
	assert.Equal(t, 85.0, weight.Value)

	reps, ok := ledger.CurrentBest("Bench Press", model.RecordTypeReps)
	require.True(t, ok)
	assert.Equal(t, 10.0, reps.Value)

	volume, ok := ledger.CurrentBest("Bench Press", model.RecordTypeVolume)
	require.True(t, ok)
	assert.Equal(t, 825.0, volume.Value)

	timeline := ledger.WeightTimeline("Bench Press")
	require.Len(t, timeline, 3) // 80, 82.5, 85
	assert.True(t, timeline[0].AchievedAt.Before(timeline[2].AchievedAt))
}

func TestLedger_RebuildFromHistory_Idempotent(t *testing.T) {
	ledger := NewLedger()
	history := rebuildHistory()

	ledger.RebuildFromHistory(history)
	firstSnapshot := ledger.Snapshot()

	ledger.RebuildFromHistory(history)
	assert.Equal(t, firstSnapshot, ledger.Snapshot())
}

func TestLedger_RebuildFromHistory_SkipsInvalidSessions(t *testing.T) {
	ledger := NewLedger()
	ledger.RebuildFromHistory([]model.WorkoutSummary{{
		CompletedAt: time.Now(),
		Exercises: []model.ExerciseSessionSummary{
			{ExerciseName: "Bench Press", CompletedSets: 0, TopWeight: 100, TopReps: 8},
			{ExerciseName: "Squat", CompletedSets: 2, TopWeight: 0, TopReps: 8},
		},
	}})

	assert.Empty(t, ledger.CurrentBests())
}

func TestLedger_ExerciseRecords_NewestFirst(t *testing.T) {
	ledger := NewLedger()
	ledger.RebuildFromHistory(rebuildHistory())

	exerciseRecords := ledger.ExerciseRecords("Bench Press")
	require.NotEmpty(t, exerciseRecords)
	for i := 1; i < len(exerciseRecords); i++ {
		assert.False(t, exerciseRecords[i].AchievedAt.After(exerciseRecords[i-1].AchievedAt))
	}
}

func TestLedger_LoadSnapshotRoundTrip(t *testing.T) {
	ledger := NewLedger()
	ledger.RebuildFromHistory(rebuildHistory())
	snapshot := ledger.Snapshot()

	restored := NewLedger()
	restored.Load(snapshot)

	assert.Equal(t, snapshot, restored.Snapshot())
	assert.Equal(t, ledger.CurrentBests(), restored.CurrentBests())
	assert.Equal(t, []string{"Bench Press"}, restored.ExerciseNames())
}

func TestLedger_BestsMatchMaxSeen_Randomized(t *testing.T) {
	faker := gofakeit.New(42)
	ledger := NewLedger()

	var maxWeight, maxVolume float64
	var maxReps int
	for i := 0; i < 200; i++ {
		weight := faker.Float64Range(20, 220)
		reps := faker.Number(1, 15)
		ledger.CheckForPR("Deadlift", weight, reps)

		maxWeight = math.Max(maxWeight, weight)
		maxVolume = math.Max(maxVolume, weight*float64(reps))
		if reps > maxReps {
			maxReps = reps
		}
	}

	weightPR, ok := ledger.CurrentBest("Deadlift", model.RecordTypeWeight)
	require.True(t, ok)
	assert.InDelta(t, maxWeight, weightPR.Value, 1e-9)

	repsPR, ok := ledger.CurrentBest("Deadlift", model.RecordTypeReps)
	require.True(t, ok)
	assert.Equal(t, float64(maxReps), repsPR.Value)

	volumePR, ok := ledger.CurrentBest("Deadlift", model.RecordTypeVolume)
	require.True(t, ok)
	assert.InDelta(t, maxVolume, volumePR.Value, 1e-9)
}
