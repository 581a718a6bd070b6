package application

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"localeaudit/internal/domain"
	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/input"
	"localeaudit/internal/ports/output"
	"localeaudit/pkg/keyglob"
)

var _ input.AuditUseCase = (*AuditService)(nil)

// AuditService finds keys with missing values across locale resources.
type AuditService struct {
	locator     output.Locator
	loader      output.Loader
	translators output.TranslatorFactory
	configured  []string
	anchor      string
	log         *logrus.Entry
}

// NewAuditService wires the audit on its ports. configured is the ordered list
// of available locales from configuration; when empty the locator is asked.
func NewAuditService(
	locator output.Locator,
	loader output.Loader,
	translators output.TranslatorFactory,
	configured []string,
	anchor string,
	log *logrus.Entry,
) *AuditService {
	return &AuditService{
		locator:     locator,
		loader:      loader,
		translators: translators,
		configured:  configured,
		anchor:      anchor,
		log:         log,
	}
}

// ConfiguredLocales returns the locales audited when no explicit list is given.
func (s *AuditService) ConfiguredLocales() ([]string, error) {
	if len(s.configured) > 0 {
		return s.configured, nil
	}
	locales, err := s.locator.Available()
	if err != nil {
		return nil, fmt.Errorf("list available locales: %w", err)
	}
	return locales, nil
}

// CollectFiles locates and loads the resource files of locales.
func (s *AuditService) CollectFiles(locales []string) ([]entities.Source, error) {
	paths, err := s.locator.Paths(locales)
	if err != nil {
		return nil, fmt.Errorf("locate resources: %w", err)
	}
	groups, err := s.loader.Load(paths)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	if len(groups) != 1 {
		return nil, fmt.Errorf("%w: expected 1 source grouping, got %d", domain.ErrUnexpectedLoaderShape, len(groups))
	}
	s.log.WithFields(logrus.Fields{"locales": locales, "count": len(groups[0])}).Debug("resources loaded")
	return groups[0], nil
}

// NewPreviewer builds the preview column renderer from the resources of locale.
func (s *AuditService) NewPreviewer(locale string, maxLength int) (*Previewer, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPreviewLength, maxLength)
	}
	sources, err := s.CollectFiles([]string{locale})
	if err != nil {
		return nil, fmt.Errorf("preview locale %s: %w", locale, err)
	}
	messages := entities.NewFlatMap()
	for _, src := range sources {
		messages.Union(entities.Flatten(src.Tree, ""))
	}
	translator, err := s.translators.NewTranslator(locale, messages)
	if err != nil {
		return nil, fmt.Errorf("preview locale %s: %w", locale, err)
	}
	return NewPreviewer(translator, locale, maxLength), nil
}

// Audit runs a full missing-values audit and returns the report.
func (s *AuditService) Audit(req input.AuditRequest) (*entities.Report, error) {
	ignore, err := keyglob.Compile(req.Ignore)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	previewer, err := s.NewPreviewer(req.Translate, req.Length)
	if err != nil {
		return nil, err
	}

	var configured []string
	if req.Check == "" {
		if configured, err = s.ConfiguredLocales(); err != nil {
			return nil, err
		}
	}
	locales, err := ResolveLocales(req.Check, configured)
	if err != nil {
		return nil, err
	}

	sources, err := s.CollectFiles(locales)
	if err != nil {
		return nil, err
	}

	idx := IgnoreKeys(SearchSources(sources), ignore)
	s.log.WithFields(logrus.Fields{
		"files":   len(idx.Files),
		"missing": idx.Count(),
		"ignored": ignore.Patterns(),
	}).Info("resources searched")

	return &entities.Report{
		Locales:       locales,
		PreviewLocale: req.Translate,
		Rows:          BuildRows(idx, s.anchor, previewer.Preview),
	}, nil
}
