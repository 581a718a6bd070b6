package output

import (
	"context"

	"localeaudit/internal/domain/entities"
)

type AuditRepository interface {
	Save(ctx context.Context, run *entities.AuditRun) error
	Latest(ctx context.Context, limit int) ([]entities.AuditRun, error)
}
