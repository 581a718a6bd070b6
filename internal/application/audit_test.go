package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localeaudit/internal/domain"
	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/input"
)

func newTestService(configured []string) (*AuditService, *fakeFactory) {
	locator := &fakeLocator{
		available: []string{"en_US", "fr_FR"},
		files: map[string][]string{
			"en_US": {"/app/locale/en_US/messages.toml"},
			"fr_FR": {"/app/locale/fr_FR/messages.toml", "/app/locale/fr_FR/legacy.toml"},
		},
	}
	loader := &fakeLoader{trees: map[string]*entities.Tree{
		"/app/locale/en_US/messages.toml": tree("form.submit", "", "form.cancel", "Cancel", "title", "Welcome to the application"),
		"/app/locale/fr_FR/messages.toml": tree("form.submit", "Envoyer", "form.cancel", "", "title", ""),
		"/app/locale/fr_FR/legacy.toml":   tree("legacy.title", ""),
	}}
	factory := &fakeFactory{}
	return NewAuditService(locator, loader, factory, configured, "locale", discardLog()), factory
}

func TestAuditEndToEnd(t *testing.T) {
	s, factory := newTestService(nil)

	report, err := s.Audit(input.AuditRequest{Translate: "en_US", Check: "en_US", Length: 255})
	require.NoError(t, err)

	assert.Equal(t, []string{"en_US"}, report.Locales)
	assert.Equal(t, "en_US", report.PreviewLocale)
	assert.Equal(t, []entities.Row{
		{FilePath: "locale/en_US/messages.toml", Key: "form.submit", Preview: "form.submit"},
	}, report.Rows)
	assert.Equal(t, []string{"en_US"}, factory.built)
}

func TestAuditAllConfiguredLocales(t *testing.T) {
	s, _ := newTestService([]string{"fr_FR", "en_US"})

	report, err := s.Audit(input.AuditRequest{Translate: "en_US", Length: 7})
	require.NoError(t, err)

	assert.Equal(t, []string{"fr_FR", "en_US"}, report.Locales)
	assert.Equal(t, []entities.Row{
		{FilePath: "locale/fr_FR/messages.toml", Key: "form.cancel", Preview: "Cancel"},
		{FilePath: "locale/fr_FR/messages.toml", Key: "title", Preview: "Welcome"},
		{FilePath: "locale/fr_FR/legacy.toml", Key: "legacy.title", Preview: "legacy."},
		{FilePath: "locale/en_US/messages.toml", Key: "form.submit", Preview: "form.su"},
	}, report.Rows)
}

func TestAuditFallsBackToAvailableLocales(t *testing.T) {
	s, _ := newTestService(nil)

	locales, err := s.ConfiguredLocales()
	require.NoError(t, err)
	assert.Equal(t, []string{"en_US", "fr_FR"}, locales)
}

func TestAuditIgnore(t *testing.T) {
	s, _ := newTestService(nil)

	report, err := s.Audit(input.AuditRequest{Translate: "en_US", Check: "fr_FR", Length: 255, Ignore: []string{"legacy.**", "title"}})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "form.cancel", report.Rows[0].Key)
}

func TestAuditErrors(t *testing.T) {
	type scenario struct {
		name   string
		req    input.AuditRequest
		err    error
		config bool
	}

	scenarios := []scenario{
		{"zero length", input.AuditRequest{Translate: "en_US", Length: 0}, domain.ErrInvalidPreviewLength, true},
		{"unknown preview locale", input.AuditRequest{Translate: "xx_XX", Length: 10}, domain.ErrLocaleNotFound, false},
		{"unknown checked locale", input.AuditRequest{Translate: "en_US", Check: "en_US,de_DE", Length: 10}, domain.ErrLocaleNotFound, false},
		{"malformed check list", input.AuditRequest{Translate: "en_US", Check: "en_US,", Length: 10}, domain.ErrInvalidLocaleList, true},
		{"bad ignore pattern", input.AuditRequest{Translate: "en_US", Length: 10, Ignore: []string{"[a"}}, domain.ErrInvalidConfig, true},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			svc, _ := newTestService(nil)
			report, err := svc.Audit(s.req)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, s.err)
			assert.Equal(t, s.config, domain.IsConfigurationError(err))
		})
	}
}

func TestAuditNoLocales(t *testing.T) {
	s := NewAuditService(
		&fakeLocator{files: map[string][]string{"en_US": nil}},
		&fakeLoader{},
		&fakeFactory{},
		nil,
		"",
		discardLog(),
	)

	_, err := s.Audit(input.AuditRequest{Translate: "en_US", Length: 10})
	assert.ErrorIs(t, err, domain.ErrNoLocales)
}

func TestCollectFilesRejectsUnexpectedShape(t *testing.T) {
	for _, groups := range []int{2, 3} {
		s := NewAuditService(
			&fakeLocator{files: map[string][]string{"en_US": {"a.toml"}}},
			&fakeLoader{groups: groups},
			&fakeFactory{},
			nil,
			"",
			discardLog(),
		)
		_, err := s.CollectFiles([]string{"en_US"})
		assert.ErrorIs(t, err, domain.ErrUnexpectedLoaderShape)
	}
}

type emptyLoader struct{}

func (emptyLoader) Load([]string) ([]entities.SourceSet, error) { return nil, nil }

func TestCollectFilesRejectsNoGrouping(t *testing.T) {
	s := NewAuditService(&fakeLocator{files: map[string][]string{"en_US": nil}}, emptyLoader{}, &fakeFactory{}, nil, "", discardLog())

	_, err := s.CollectFiles([]string{"en_US"})
	assert.ErrorIs(t, err, domain.ErrUnexpectedLoaderShape)
}

func TestHistoryService(t *testing.T) {
	repo := &fakeRepo{}
	s := NewHistoryService(repo, discardLog())
	s.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.FixedZone("CEST", 2*3600)) }

	report := &entities.Report{Locales: []string{"fr_FR"}, PreviewLocale: "en_US", Rows: []entities.Row{{Key: "a"}, {Key: "b"}}}
	run, err := s.Record(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, int64(1), run.ID)
	assert.Equal(t, 2, run.MissingCount)
	assert.Equal(t, time.UTC, run.CreatedAt.Location())

	runs, err := s.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	repo.err = errors.New("connection refused")
	_, err = s.Record(context.Background(), report)
	assert.ErrorContains(t, err, "record audit run")
}

func TestNotifyService(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewNotifyService(notifier, discardLog())
	report := &entities.Report{}

	require.NoError(t, s.Notify(context.Background(), report))
	assert.Len(t, notifier.reports, 1)

	notifier.err = errors.New("401 unauthorized")
	assert.ErrorContains(t, s.Notify(context.Background(), report), "notify report")
}
