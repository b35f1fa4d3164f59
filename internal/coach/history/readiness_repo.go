package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
	"github.com/mdjurovic/liftcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReadinessRepo struct {
	db *pgxpool.Pool
}

func NewReadinessRepo(db *pgxpool.Pool) *ReadinessRepo {
	return &ReadinessRepo{
		db: db,
	}
}

func (r *ReadinessRepo) Add(ctx context.Context, entry model.ReadinessEntry) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.readiness.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO readiness_entry
				(soreness, sleep_quality, stress_level, energy_level, notes, surveyed_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		entry.Soreness, entry.SleepQuality, entry.StressLevel,
		entry.EnergyLevel, entry.Notes, entry.SurveyedAt,
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

func (r *ReadinessRepo) GetAll(ctx context.Context) ([]model.ReadinessEntry, error) {
	return r.get(ctx, "repo.history.readiness.getAll", 0)
}

// GetLatest returns the newest limit entries, newest first.
func (r *ReadinessRepo) GetLatest(ctx context.Context, limit int) ([]model.ReadinessEntry, error) {
	return r.get(ctx, "repo.history.readiness.getLatest", limit)
}

func (r *ReadinessRepo) get(ctx context.Context, spanName string, limit int) (_ []model.ReadinessEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, soreness, sleep_quality, stress_level, energy_level, notes, surveyed_at
			FROM readiness_entry
			ORDER BY surveyed_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	query += `;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.ReadinessEntry
	for rows.Next() {
		var entry model.ReadinessEntry
		if err := rows.Scan(
			&entry.ID, &entry.Soreness, &entry.SleepQuality,
			&entry.StressLevel, &entry.EnergyLevel, &entry.Notes, &entry.SurveyedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
