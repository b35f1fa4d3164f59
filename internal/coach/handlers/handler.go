// Package handlers exposes the coach engine over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/feedback"
	"github.com/mdjurovic/liftcoach/internal/coach/model"
	"github.com/mdjurovic/liftcoach/internal/coach/records"
	"github.com/mdjurovic/liftcoach/internal/coach/report"
	"github.com/mdjurovic/liftcoach/internal/telemetry/metrics"
	"github.com/mdjurovic/liftcoach/internal/telemetry/tracing"
	"github.com/mdjurovic/liftcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=handlers_test

type workoutsStore interface {
	Add(ctx context.Context, workout model.WorkoutSummary) (int, error)
	GetAll(ctx context.Context) ([]model.WorkoutSummary, error)
}

type readinessStore interface {
	Add(ctx context.Context, entry model.ReadinessEntry) (int, error)
	GetLatest(ctx context.Context, limit int) ([]model.ReadinessEntry, error)
}

type recordsLedger interface {
	CheckForPR(exerciseName string, weight float64, reps int) records.CheckResult
	RebuildFromHistory(workouts []model.WorkoutSummary)
	CurrentBests() []model.PersonalRecord
	ExerciseRecords(exerciseName string) []model.PersonalRecord
	Snapshot() []model.PersonalRecord
}

type recordsSnapshots interface {
	ReplaceAll(ctx context.Context, snapshot []model.PersonalRecord) error
}

type reportGenerator interface {
	GenerateWeeklyReport(ctx context.Context, userID string) *report.WeeklyAdaptationReport
	QuickStatus(ctx context.Context, userID string) report.QuickStatus
	InvalidateCaches(ctx context.Context, userID string)
}

type Handler struct {
	workouts  workoutsStore
	readiness readinessStore
	ledger    recordsLedger
	snapshots recordsSnapshots
	reports   reportGenerator
	metrics   *metrics.Manager

	now func() time.Time
}

type NewHandlerParams struct {
	Workouts  workoutsStore
	Readiness readinessStore
	Ledger    recordsLedger
	Snapshots recordsSnapshots
	Reports   reportGenerator
	Metrics   *metrics.Manager
}

func NewHandler(params NewHandlerParams) *Handler {
	return &Handler{
		workouts:  params.Workouts,
		readiness: params.Readiness,
		ledger:    params.Ledger,
		snapshots: params.Snapshots,
		reports:   params.Reports,
		metrics:   params.Metrics,
		now:       time.Now,
	}
}

// userID identifies whose caches to use; single-lifter deployments just
// fall through to the default.
func userID(r *http.Request) string {
	if user := r.URL.Query().Get("user"); user != "" {
		return user
	}
	return "default"
}

type completedSetRequest struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
}

// HandleCompletedSet runs the synchronous PR check for one finished set.
func (h *Handler) HandleCompletedSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.set")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var setReq completedSetRequest
	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		log.Errorf("completed set, unmarshal json params: %s", err)
		http.Error(w, "pr check failed", http.StatusBadRequest)
		return
	}
	if setReq.ExerciseName == "" {
		http.Error(w, "exercise name required", http.StatusBadRequest)
		return
	}

	h.metrics.CounterPRChecks.Inc()
	result := h.ledger.CheckForPR(setReq.ExerciseName, setReq.Weight, setReq.Reps)
	for _, recordType := range result.Types {
		h.metrics.CounterPRsDetected.WithLabelValues(recordType.String()).Inc()
	}

	if result.IsNewPR {
		h.reports.InvalidateCaches(ctx, userID(r))
		if err := h.snapshots.ReplaceAll(ctx, h.ledger.Snapshot()); err != nil {
			// the in-memory ledger stays authoritative
			log.Errorf("persist records snapshot: %s", err)
		}
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal pr check result: %s", err)
		http.Error(w, "pr check failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

// HandleNewWorkout appends a finished workout to history.
func (h *Handler) HandleNewWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.new.workout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout model.WorkoutSummary
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}
	if workout.CompletedAt.IsZero() {
		workout.CompletedAt = h.now()
	}

	id, err := h.workouts.Add(ctx, workout)
	if err != nil {
		log.Errorf("new workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}
	workout.ID = id

	h.reports.InvalidateCaches(ctx, userID(r))

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

// HandleNewReadiness appends a morning readiness survey.
func (h *Handler) HandleNewReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.new.readiness")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry model.ReadinessEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("new readiness entry, unmarshal json params: %s", err)
		http.Error(w, "add readiness entry failed", http.StatusBadRequest)
		return
	}
	if err := entry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if entry.SurveyedAt.IsZero() {
		entry.SurveyedAt = h.now()
	}

	id, err := h.readiness.Add(ctx, entry)
	if err != nil {
		log.Errorf("new readiness entry: %s", err)
		http.Error(w, "add readiness entry failed", http.StatusInternalServerError)
		return
	}
	entry.ID = id

	h.reports.InvalidateCaches(ctx, userID(r))

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal new readiness entry: %s", err)
		http.Error(w, "add readiness entry failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

// HandleLatestReadiness lists the newest surveys, for the app's survey
// history screen.
func (h *Handler) HandleLatestReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.readiness.latest")
	defer span.End()

	entries, err := h.readiness.GetLatest(ctx, 7)
	if err != nil {
		log.Errorf("latest readiness entries: %s", err)
		http.Error(w, "list readiness entries failed", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(struct {
		Entries []model.ReadinessEntry `json:"entries"`
	}{Entries: entries})
	if err != nil {
		log.Errorf("failed to marshal readiness entries: %s", err)
		http.Error(w, "list readiness entries failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

// HandleWeeklyReport serves the weekly adaptation report.
func (h *Handler) HandleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.report")
	defer span.End()

	weeklyReport := h.reports.GenerateWeeklyReport(ctx, userID(r))

	reportJson, err := json.Marshal(weeklyReport)
	if err != nil {
		log.Errorf("failed to marshal weekly report: %s", err)
		http.Error(w, "weekly report failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusOK)
}

// HandleQuickStatus serves the widget's can-I-train-today payload.
func (h *Handler) HandleQuickStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.status")
	defer span.End()

	status := h.reports.QuickStatus(ctx, userID(r))

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("failed to marshal quick status: %s", err)
		http.Error(w, "quick status failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}

// HandleRecords lists the standing records across exercises.
func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.records")
	defer span.End()

	bests := h.ledger.CurrentBests()

	bestsJson, err := json.Marshal(struct {
		Records []model.PersonalRecord `json:"records"`
		Total   int                    `json:"total"`
	}{
		Records: bests,
		Total:   len(bests),
	})
	if err != nil {
		log.Errorf("failed to marshal current bests: %s", err)
		http.Error(w, "list records failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, bestsJson, http.StatusOK)
}

// HandleExerciseRecords lists one exercise's record history, newest
// first.
func (h *Handler) HandleExerciseRecords(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.records.exercise")
	defer span.End()

	exerciseName := mux.Vars(r)["exercise"]
	if exerciseName == "" {
		http.Error(w, "exercise name required", http.StatusBadRequest)
		return
	}

	exerciseRecords := h.ledger.ExerciseRecords(exerciseName)
	if len(exerciseRecords) == 0 {
		http.Error(w, "no records for exercise", http.StatusNotFound)
		return
	}

	recordsJson, err := json.Marshal(struct {
		ExerciseName string                 `json:"exerciseName"`
		Records      []model.PersonalRecord `json:"records"`
	}{
		ExerciseName: exerciseName,
		Records:      exerciseRecords,
	})
	if err != nil {
		log.Errorf("failed to marshal exercise records: %s", err)
		http.Error(w, "list exercise records failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordsJson, http.StatusOK)
}

// HandleRebuildRecords replaces the ledger with a deterministic rebuild
// from full workout history. Admin only, wired behind the auth
// middleware.
func (h *Handler) HandleRebuildRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.records.rebuild")
	defer span.End()

	workouts, err := h.workouts.GetAll(ctx)
	if err != nil {
		log.Errorf("rebuild records, get workouts: %s", err)
		http.Error(w, "rebuild records failed", http.StatusInternalServerError)
		return
	}

	h.ledger.RebuildFromHistory(workouts)
	h.metrics.CounterLedgerRebuilds.Inc()
	h.reports.InvalidateCaches(ctx, userID(r))

	snapshot := h.ledger.Snapshot()
	if err := h.snapshots.ReplaceAll(ctx, snapshot); err != nil {
		log.Errorf("rebuild records, persist snapshot: %s", err)
		http.Error(w, "rebuild records failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(fmt.Sprintf(
		`{"rebuilt":true,"workouts":%d,"records":%d}`, len(workouts), len(snapshot),
	)), http.StatusOK)
}

// HandleExerciseHistory serves day-bucketed weight/reps averages for one
// exercise.
func (h *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.exercise.history")
	defer span.End()

	exerciseName := mux.Vars(r)["exercise"]
	if exerciseName == "" {
		http.Error(w, "exercise name required", http.StatusBadRequest)
		return
	}

	workouts, err := h.workouts.GetAll(ctx)
	if err != nil {
		log.Errorf("exercise history, get workouts: %s", err)
		http.Error(w, "exercise history failed", http.StatusInternalServerError)
		return
	}

	historyStats := feedback.ExerciseHistory(exerciseName, workouts)

	statsJson, err := json.Marshal(historyStats)
	if err != nil {
		log.Errorf("failed to marshal exercise history: %s", err)
		http.Error(w, "exercise history failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}
