// Package history persists workout summaries and readiness surveys.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
	"github.com/mdjurovic/liftcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkoutsRepo struct {
	db *pgxpool.Pool
}

func NewWorkoutsRepo(db *pgxpool.Pool) *WorkoutsRepo {
	return &WorkoutsRepo{
		db: db,
	}
}

func (r *WorkoutsRepo) Add(ctx context.Context, workout model.WorkoutSummary) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return 0, fmt.Errorf("marshal exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_summary
				(workout_name, duration_seconds, total_volume, sets_completed, sets_planned, avg_rpe, exercises, completed_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		workout.WorkoutName, workout.DurationSeconds, workout.TotalVolume,
		workout.TotalSetsCompleted, workout.TotalSetsPlanned, workout.AverageRPE,
		exercisesJson, workout.CompletedAt,
	)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return 0, err
	}
	if !rows.Next() {
		return 0, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("rows scan: %w", err)
	}
	return id, nil
}

func (r *WorkoutsRepo) GetAll(ctx context.Context) (_ []model.WorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.workouts.getAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_name, duration_seconds, total_volume, sets_completed, sets_planned, avg_rpe, exercises, completed_at
			FROM workout_summary
			ORDER BY completed_at ASC, id ASC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []model.WorkoutSummary
	for rows.Next() {
		var workout model.WorkoutSummary
		var exercisesJson []byte
		if err := rows.Scan(
			&workout.ID, &workout.WorkoutName, &workout.DurationSeconds,
			&workout.TotalVolume, &workout.TotalSetsCompleted, &workout.TotalSetsPlanned,
			&workout.AverageRPE, &exercisesJson, &workout.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(exercisesJson) > 0 {
			if err := json.Unmarshal(exercisesJson, &workout.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises: %w", err)
			}
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
