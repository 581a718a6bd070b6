package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
)

var _ output.AuditRepository = (*AuditRepository)(nil)

const (
	insertAuditRun = `
INSERT INTO audit_runs (preview_locale, locales, missing_count, created_at)
VALUES ($1, $2, $3, COALESCE($4, now()))
RETURNING id, created_at`

	selectLatestAuditRuns = `
SELECT id, preview_locale, locales, missing_count, created_at
FROM audit_runs
ORDER BY created_at DESC, id DESC
LIMIT $1`
)

var auditRowColumns = []string{"run_id", "position", "file_path", "key", "preview"}

// DB is the part of *pgxpool.Pool the repository needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// AuditRepository implements output.AuditRepository on PostgreSQL.
type AuditRepository struct {
	db DB
}

// NewAuditRepository creates an AuditRepository.
func NewAuditRepository(db DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Save inserts run and its rows in one transaction, then sets run.ID and
// run.CreatedAt from the database.
func (r *AuditRepository) Save(ctx context.Context, run *entities.AuditRun) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin audit run: %w", err)
	}
	defer tx.Rollback(ctx)

	var rec auditRunRecord
	err = tx.QueryRow(ctx, insertAuditRun,
		run.PreviewLocale,
		run.Locales,
		int32(run.MissingCount),
		timeToPgtypeTimestamptz(run.CreatedAt),
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("create audit run: %w", err)
	}

	if len(run.Rows) > 0 {
		_, err = tx.CopyFrom(ctx, pgx.Identifier{"audit_rows"}, auditRowColumns, pgx.CopyFromRows(auditRowsToCopy(rec.ID, run.Rows)))
		if err != nil {
			return fmt.Errorf("copy audit rows: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit audit run: %w", err)
	}
	run.ID = rec.ID
	run.CreatedAt = pgtypeTimestamptzToTime(rec.CreatedAt)
	return nil
}

// Latest returns the most recent runs, without their rows.
func (r *AuditRepository) Latest(ctx context.Context, limit int) ([]entities.AuditRun, error) {
	rows, err := r.db.Query(ctx, selectLatestAuditRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit runs: %w", err)
	}
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.AuditRun, error) {
		var rec auditRunRecord
		err := row.Scan(&rec.ID, &rec.PreviewLocale, &rec.Locales, &rec.MissingCount, &rec.CreatedAt)
		return auditRunToDomain(rec), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan audit runs: %w", err)
	}
	return runs, nil
}
