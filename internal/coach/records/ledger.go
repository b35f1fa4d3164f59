// Package records keeps the personal-record ledger: an append-only record
// history per exercise plus a current-best cache that answers the
// between-sets "was that a PR?" question without touching storage.
package records

import (
	"sort"
	"sync"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
)

// CheckResult is the outcome of a PR check for one candidate set.
type CheckResult struct {
	ExerciseName string             `json:"exerciseName"`
	IsNewPR      bool               `json:"isNewPR"`
	Types        []model.RecordType `json:"types,omitempty"`
	// Records holds the newly minted record per achieved type.
	Records []model.PersonalRecord `json:"records,omitempty"`
}

type Ledger struct {
	mu sync.RWMutex
	// best: exercise -> type -> current best record
	best map[string]map[model.RecordType]model.PersonalRecord
	// history: exercise -> records in achievement order
	history map[string][]model.PersonalRecord

	now func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{
		best:    make(map[string]map[model.RecordType]model.PersonalRecord),
		history: make(map[string][]model.PersonalRecord),
		now:     time.Now,
	}
}

// NewLedgerWithClock is used in tests to pin achievement timestamps.
func NewLedgerWithClock(now func() time.Time) *Ledger {
	ledger := NewLedger()
	ledger.now = now
	return ledger
}

// CheckForPR evaluates a completed set against the current-best cache and
// records every record type the set strictly beats. The very first valid
// set of an exercise establishes all three records at once. Non-positive
// weight or reps never produce a record.
func (l *Ledger) CheckForPR(exerciseName string, weight float64, reps int) CheckResult {
	result := CheckResult{ExerciseName: exerciseName}
	if weight <= 0 || reps <= 0 {
		return result
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	achieved := l.recordCandidates(exerciseName, weight, reps, l.now())
	if len(achieved) == 0 {
		return result
	}

	result.IsNewPR = true
	result.Records = achieved
	for _, record := range achieved {
		result.Types = append(result.Types, record.Type)
		l.store(record)
	}
	return result
}

// recordCandidates returns the records a (weight, reps) candidate earns
// against the current bests. Caller holds the lock.
func (l *Ledger) recordCandidates(
	exerciseName string,
	weight float64,
	reps int,
	achievedAt time.Time,
) []model.PersonalRecord {
	values := map[model.RecordType]float64{
		model.RecordTypeWeight: weight,
		model.RecordTypeReps:   float64(reps),
		model.RecordTypeVolume: weight * float64(reps),
	}

	var achieved []model.PersonalRecord
	for _, recordType := range model.RecordTypes() {
		current, exists := l.best[exerciseName][recordType]
		if exists && values[recordType] <= current.Value {
			continue
		}
		achieved = append(achieved, model.PersonalRecord{
			ExerciseName: exerciseName,
			Type:         recordType,
			Value:        values[recordType],
			Weight:       weight,
			Reps:         reps,
			AchievedAt:   achievedAt,
		})
	}
	return achieved
}

// store appends the record and advances the current-best cache.
// Caller holds the lock.
func (l *Ledger) store(record model.PersonalRecord) {
	if l.best[record.ExerciseName] == nil {
		l.best[record.ExerciseName] = make(map[model.RecordType]model.PersonalRecord)
	}
	l.best[record.ExerciseName][record.Type] = record
	l.history[record.ExerciseName] = append(l.history[record.ExerciseName], record)
}

// RebuildFromHistory replaces the whole ledger with records derived from
// the given workouts, processed in ascending completedAt order. Within a
// workout, each exercise contributes one candidate built from its top
// weight and top reps; exercises without completed sets or without
// positive tops are skipped. Deterministic and idempotent for the same
// history.
func (l *Ledger) RebuildFromHistory(workouts []model.WorkoutSummary) {
	ordered := make([]model.WorkoutSummary, len(workouts))
	copy(ordered, workouts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CompletedAt.Before(ordered[j].CompletedAt)
	})

	l.mu.Lock()
	defer l.mu.Unlock()

	l.best = make(map[string]map[model.RecordType]model.PersonalRecord)
	l.history = make(map[string][]model.PersonalRecord)

	for _, workout := range ordered {
		for _, exercise := range workout.Exercises {
			if exercise.CompletedSets == 0 || exercise.TopWeight <= 0 || exercise.TopReps <= 0 {
				continue
			}
			achieved := l.recordCandidates(
				exercise.ExerciseName, exercise.TopWeight, exercise.TopReps, workout.CompletedAt,
			)
			for _, record := range achieved {
				l.store(record)
			}
		}
	}
}

// Load seeds the ledger from a persisted snapshot, replacing its state.
// Records are replayed in achievedAt order so the current-best cache ends
// up consistent with the history.
func (l *Ledger) Load(snapshot []model.PersonalRecord) {
	ordered := make([]model.PersonalRecord, len(snapshot))
	copy(ordered, snapshot)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AchievedAt.Before(ordered[j].AchievedAt)
	})

	l.mu.Lock()
	defer l.mu.Unlock()

	l.best = make(map[string]map[model.RecordType]model.PersonalRecord)
	l.history = make(map[string][]model.PersonalRecord)
	for _, record := range ordered {
		l.store(record)
	}
}

// CurrentBest returns the standing record for an (exercise, type) pair.
func (l *Ledger) CurrentBest(exerciseName string, recordType model.RecordType) (model.PersonalRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	record, ok := l.best[exerciseName][recordType]
	return record, ok
}

// CurrentBests returns all standing records, sorted by achievedAt
// descending then exercise name for a stable order.
func (l *Ledger) CurrentBests() []model.PersonalRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var bests []model.PersonalRecord
	for _, byType := range l.best {
		for _, record := range byType {
			bests = append(bests, record)
		}
	}
	sort.Slice(bests, func(i, j int) bool {
		if !bests[i].AchievedAt.Equal(bests[j].AchievedAt) {
			return bests[i].AchievedAt.After(bests[j].AchievedAt)
		}
		if bests[i].ExerciseName != bests[j].ExerciseName {
			return bests[i].ExerciseName < bests[j].ExerciseName
		}
		return bests[i].Type < bests[j].Type
	})
	return bests
}

// ExerciseRecords returns the full record history of one exercise, newest
// first.
func (l *Ledger) ExerciseRecords(exerciseName string) []model.PersonalRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := l.history[exerciseName]
	newestFirst := make([]model.PersonalRecord, len(history))
	for i, record := range history {
		newestFirst[len(history)-1-i] = record
	}
	return newestFirst
}

// WeightTimeline returns the weight-type records of an exercise in
// achievement order, the input the plateau detector regresses over.
func (l *Ledger) WeightTimeline(exerciseName string) []model.PersonalRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var timeline []model.PersonalRecord
	for _, record := range l.history[exerciseName] {
		if record.Type == model.RecordTypeWeight {
			timeline = append(timeline, record)
		}
	}
	return timeline
}

// ExerciseNames returns every exercise with at least one record, sorted.
func (l *Ledger) ExerciseNames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.history))
	for name := range l.history {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the full record history across exercises,
// in achievedAt order, for persistence.
func (l *Ledger) Snapshot() []model.PersonalRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var snapshot []model.PersonalRecord
	for _, history := range l.history {
		snapshot = append(snapshot, history...)
	}
	sort.SliceStable(snapshot, func(i, j int) bool {
		if !snapshot[i].AchievedAt.Equal(snapshot[j].AchievedAt) {
			return snapshot[i].AchievedAt.Before(snapshot[j].AchievedAt)
		}
		if snapshot[i].ExerciseName != snapshot[j].ExerciseName {
			return snapshot[i].ExerciseName < snapshot[j].ExerciseName
		}
		return snapshot[i].Type < snapshot[j].Type
	})
	return snapshot
}
