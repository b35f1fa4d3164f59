package report

import (
	"context"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/autonomy"
	"github.com/mdjurovic/liftcoach/internal/coach/feedback"
	"github.com/mdjurovic/liftcoach/internal/coach/library"
	"github.com/mdjurovic/liftcoach/internal/coach/model"
	"github.com/mdjurovic/liftcoach/internal/coach/plateau"
	"github.com/mdjurovic/liftcoach/internal/coach/records"
	"github.com/mdjurovic/liftcoach/internal/coach/recovery"
	"github.com/mdjurovic/liftcoach/internal/coach/sfr"
	"github.com/mdjurovic/liftcoach/internal/coach/volume"
	"github.com/mdjurovic/liftcoach/internal/telemetry/metrics"
	"github.com/mdjurovic/liftcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=orchestrator.go -destination=orchestrator_mocks_test.go -package=report

type WorkoutsProvider interface {
	GetAll(ctx context.Context) ([]model.WorkoutSummary, error)
}

type ReadinessProvider interface {
	GetAll(ctx context.Context) ([]model.ReadinessEntry, error)
}

// Orchestrator runs every analyzer over one history snapshot and merges
// the results. Generation never fails: collaborator errors degrade to
// empty data and mark the report partial.
type Orchestrator struct {
	workouts       WorkoutsProvider
	readiness      ReadinessProvider
	library        *library.Library
	ledger         *records.Ledger
	aggregator     *feedback.Aggregator
	volumeAnalyzer *volume.Analyzer
	metrics        *metrics.Manager

	cache         *Cache // nil disables report caching
	quickStatuses *quickStatusCache

	now func() time.Time
}

type NewOrchestratorParams struct {
	Workouts       WorkoutsProvider
	Readiness      ReadinessProvider
	Library        *library.Library
	Ledger         *records.Ledger
	Aggregator     *feedback.Aggregator
	VolumeAnalyzer *volume.Analyzer
	Metrics        *metrics.Manager
	Cache          *Cache
}

func NewOrchestrator(params NewOrchestratorParams) *Orchestrator {
	return &Orchestrator{
		workouts:       params.Workouts,
		readiness:      params.Readiness,
		library:        params.Library,
		ledger:         params.Ledger,
		aggregator:     params.Aggregator,
		volumeAnalyzer: params.VolumeAnalyzer,
		metrics:        params.Metrics,
		cache:          params.Cache,
		quickStatuses:  newQuickStatusCache(),
		now:            time.Now,
	}
}

// GenerateWeeklyReport builds (or serves from cache) the weekly
// adaptation report for the user.
func (o *Orchestrator) GenerateWeeklyReport(ctx context.Context, userID string) *WeeklyAdaptationReport {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.report.generate")
	defer span.End()

	if o.cache != nil {
		cached, err := o.cache.Get(ctx, userID)
		if err != nil {
			log.Warnf("weekly report cache get [user %s]: %s", userID, err)
		} else if cached != nil {
			return cached
		}
	}

	startedAt := time.Now()
	defer func() {
		o.metrics.HistWeeklyReportDuration.Observe(time.Since(startedAt).Seconds())
	}()
	o.metrics.CounterWeeklyReports.Inc()

	now := o.now()
	weeklyReport := &WeeklyAdaptationReport{GeneratedAt: now}

	var loadErrs error
	workouts, err := o.workouts.GetAll(ctx)
	if err != nil {
		loadErrs = multierr.Append(loadErrs, err)
		workouts = nil
	}
	readinessEntries, err := o.readiness.GetAll(ctx)
	if err != nil {
		loadErrs = multierr.Append(loadErrs, err)
		readinessEntries = nil
	}
	if loadErrs != nil {
		log.Errorf("weekly report [user %s], degraded to partial: %s", userID, loadErrs)
		weeklyReport.Partial = true
	}

	weeklyReport.WeekSummary = o.weekSummary(workouts, now)
	weeklyReport.Volume = o.volumeAnalyzer.Analyze(workouts, now)
	weeklyReport.Recovery = recovery.Analyze(workouts, readinessEntries, now)
	weeklyReport.Autonomy = autonomy.EstimateAutonomy(workouts, readinessEntries, now)
	weeklyReport.Exercises = o.assessExercises(workouts)
	weeklyReport.Plateaus = o.detectPlateaus(now)

	weeklyReport.TrainToday = composeTrainTodayVerdict(weeklyReport.Recovery)
	weeklyReport.Insights = composeInsights(weeklyReport, now)
	weeklyReport.PriorityActions = composePriorityActions(weeklyReport)
	weeklyReport.Summary = composeSummary(weeklyReport)

	for _, insight := range weeklyReport.Insights {
		o.metrics.CounterInsightsEmitted.WithLabelValues(insight.Priority.String()).Inc()
	}

	// partial reports are not cached so the next call retries the stores
	if o.cache != nil && !weeklyReport.Partial {
		if err := o.cache.Set(ctx, userID, weeklyReport); err != nil {
			log.Warnf("weekly report cache set [user %s]: %s", userID, err)
		}
	}

	return weeklyReport
}

// QuickStatus answers "can I train today" cheaply. It never fails: on
// any store error it falls back to a permissive default.
func (o *Orchestrator) QuickStatus(ctx context.Context, userID string) QuickStatus {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.report.quickStatus")
	defer span.End()

	if cached, ok := o.quickStatuses.Get(userID); ok {
		return *cached
	}

	now := o.now()
	fallback := QuickStatus{
		CanTrain:  true,
		Status:    recovery.StatusRecovered.String(),
		Message:   "Good to train today",
		CheckedAt: now,
	}

	workouts, err := o.workouts.GetAll(ctx)
	if err != nil {
		log.Warnf("quick status [user %s], serving fallback: %s", userID, err)
		return fallback
	}
	readinessEntries, err := o.readiness.GetAll(ctx)
	if err != nil {
		log.Warnf("quick status [user %s], readiness unavailable: %s", userID, err)
		readinessEntries = nil
	}

	analysis := recovery.Analyze(workouts, readinessEntries, now)
	verdict := composeTrainTodayVerdict(analysis)
	status := QuickStatus{
		CanTrain:          verdict.CanTrain,
		Status:            analysis.Status.String(),
		Message:           verdict.Message,
		SuggestedRestDays: analysis.SuggestedRestDays,
		CheckedAt:         now,
	}

	o.quickStatuses.Set(userID, status)
	return status
}

// InvalidateCaches drops cached reports after new data arrives.
func (o *Orchestrator) InvalidateCaches(ctx context.Context, userID string) {
	if o.cache == nil {
		return
	}
	if err := o.cache.Invalidate(ctx, userID); err != nil {
		log.Warnf("invalidate report cache [user %s]: %s", userID, err)
	}
}

func (o *Orchestrator) weekSummary(workouts []model.WorkoutSummary, now time.Time) WeekSummary {
	windowStart := now.Add(-7 * 24 * time.Hour)
	var summary WeekSummary
	for _, workout := range workouts {
		if workout.CompletedAt.Before(windowStart) || workout.CompletedAt.After(now) {
			continue
		}
		summary.Sessions++
		summary.TotalVolume += workout.TotalVolume
		for _, exercise := range workout.Exercises {
			summary.CompletedSets += exercise.CompletedSets
		}
	}
	for _, record := range o.ledger.Snapshot() {
		if record.AchievedAt.Before(windowStart) || record.AchievedAt.After(now) {
			continue
		}
		summary.NewRecords = append(summary.NewRecords, record)
	}
	return summary
}

func (o *Orchestrator) assessExercises(workouts []model.WorkoutSummary) []ExerciseAssessment {
	aggregated := o.aggregator.Aggregate(workouts)

	assessments := make([]ExerciseAssessment, 0, len(aggregated))
	for _, exerciseName := range feedback.SortedNames(aggregated) {
		exerciseFeedback := aggregated[exerciseName]
		score := sfr.ComputeScore(exerciseName, o.library.PopulationRating(exerciseName), &exerciseFeedback)
		assessments = append(assessments, ExerciseAssessment{
			ExerciseName: exerciseName,
			Feedback:     exerciseFeedback,
			SFR:          score,
			Status:       sfr.DetermineStatus(score, &exerciseFeedback),
		})
	}
	return assessments
}

func (o *Orchestrator) detectPlateaus(now time.Time) []plateau.Result {
	var results []plateau.Result
	for _, exerciseName := range o.ledger.ExerciseNames() {
		timeline := o.ledger.WeightTimeline(exerciseName)
		result := plateau.Detect(exerciseName, timeline, now, plateau.DefaultMinWeeks)
		if !result.HasEnoughData {
			continue
		}
		results = append(results, result)
	}
	return results
}
