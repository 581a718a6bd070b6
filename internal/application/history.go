package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/input"
	"localeaudit/internal/ports/output"
)

var (
	_ input.HistoryUseCase = (*HistoryService)(nil)
	_ input.NotifyUseCase  = (*NotifyService)(nil)
)

// HistoryService stores finished reports in the audit history.
type HistoryService struct {
	repo output.AuditRepository
	now  func() time.Time
	log  *logrus.Entry
}

func NewHistoryService(repo output.AuditRepository, log *logrus.Entry) *HistoryService {
	return &HistoryService{repo: repo, now: time.Now, log: log}
}

func (s *HistoryService) Record(ctx context.Context, report *entities.Report) (*entities.AuditRun, error) {
	run := entities.NewAuditRun(report, s.now().UTC())
	if err := s.repo.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("record audit run: %w", err)
	}
	s.log.WithFields(logrus.Fields{"run": run.ID, "missing": run.MissingCount}).Info("audit run recorded")
	return run, nil
}

func (s *HistoryService) History(ctx context.Context, limit int) ([]entities.AuditRun, error) {
	if limit <= 0 {
		limit = 10
	}
	runs, err := s.repo.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit runs: %w", err)
	}
	return runs, nil
}

// NotifyService forwards a report to a notifier.
type NotifyService struct {
	notifier output.Notifier
	log      *logrus.Entry
}

func NewNotifyService(notifier output.Notifier, log *logrus.Entry) *NotifyService {
	return &NotifyService{notifier: notifier, log: log}
}

func (s *NotifyService) Notify(ctx context.Context, report *entities.Report) error {
	if err := s.notifier.Notify(ctx, report); err != nil {
		return fmt.Errorf("notify report: %w", err)
	}
	s.log.WithField("missing", len(report.Rows)).Info("report notified")
	return nil
}
