package output

import (
	"context"

	"localeaudit/internal/domain/entities"
)

// Notifier publishes a finished report outside the terminal.
type Notifier interface {
	Notify(ctx context.Context, report *entities.Report) error
}
