package input

import (
	"context"

	"localeaudit/internal/domain/entities"
)

// AuditRequest carries the options of one missing-values audit.
type AuditRequest struct {
	// Translate is the locale used for the preview column.
	Translate string
	// Check is a comma-separated list of locales to audit; empty audits every
	// configured locale.
	Check string
	// Length caps the preview column, in characters.
	Length int
	// Ignore holds glob patterns of dotted keys left out of the report.
	Ignore []string
}

type AuditUseCase interface {
	ConfiguredLocales() ([]string, error)
	Audit(req AuditRequest) (*entities.Report, error)
}

type HistoryUseCase interface {
	Record(ctx context.Context, report *entities.Report) (*entities.AuditRun, error)
	History(ctx context.Context, limit int) ([]entities.AuditRun, error)
}

type NotifyUseCase interface {
	Notify(ctx context.Context, report *entities.Report) error
}
