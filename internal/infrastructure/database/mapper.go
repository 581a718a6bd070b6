package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"localeaudit/internal/domain/entities"
)

// auditRunRecord mirrors a row of audit_runs.
type auditRunRecord struct {
	ID            int64
	PreviewLocale string
	Locales       []string
	MissingCount  int32
	CreatedAt     pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz maps the zero time to NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func auditRunToDomain(r auditRunRecord) entities.AuditRun {
	return entities.AuditRun{
		ID:            r.ID,
		PreviewLocale: r.PreviewLocale,
		Locales:       r.Locales,
		MissingCount:  int(r.MissingCount),
		CreatedAt:     pgtypeTimestamptzToTime(r.CreatedAt),
	}
}

// auditRowsToCopy lays out rows in auditRowColumns order for COPY.
func auditRowsToCopy(runID int64, rows []entities.Row) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{runID, int32(i), r.FilePath, r.Key, r.Preview}
	}
	return out
}
