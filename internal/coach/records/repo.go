package records

import (
	"context"
	"fmt"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
	"github.com/mdjurovic/liftcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists ledger snapshots so the in-memory ledger survives
// restarts without a full history rebuild.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) LoadAll(ctx context.Context) (_ []model.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.loadAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_name, record_type, value, weight, reps, achieved_at
			FROM personal_record
			ORDER BY achieved_at ASC, id ASC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loaded []model.PersonalRecord
	for rows.Next() {
		var record model.PersonalRecord
		var recordType string
		if err := rows.Scan(
			&record.ID, &record.ExerciseName, &recordType,
			&record.Value, &record.Weight, &record.Reps, &record.AchievedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		record.Type = model.RecordType(recordType)
		loaded = append(loaded, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return loaded, nil
}

// ReplaceAll swaps the persisted snapshot for the given records in a
// single transaction.
func (r *Repo) ReplaceAll(ctx context.Context, snapshot []model.PersonalRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.replaceAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM personal_record;`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	for _, record := range snapshot {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO personal_record
					(exercise_name, record_type, value, weight, reps, achieved_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
			record.ExerciseName, record.Type.String(),
			record.Value, record.Weight, record.Reps, record.AchievedAt,
		); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return tx.Commit(ctx)
}
