package application

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"localeaudit/internal/domain"
	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
)

func discardLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return logrus.NewEntry(log)
}

// tree builds a Tree from alternating dotted paths and values.
func tree(kv ...string) *entities.Tree {
	t := entities.NewTree()
	for i := 0; i+1 < len(kv); i += 2 {
		path := splitDots(kv[i])
		t.Branch(path[:len(path)-1]...).Set(path[len(path)-1], kv[i+1])
	}
	return t
}

func splitDots(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

type fakeLocator struct {
	available []string
	files     map[string][]string
}

func (f *fakeLocator) Available() ([]string, error) {
	return f.available, nil
}

func (f *fakeLocator) Paths(locales []string) ([]string, error) {
	var paths []string
	for _, l := range locales {
		files, ok := f.files[l]
		if !ok {
			return nil, fmt.Errorf("locate %s: %w", l, domain.ErrLocaleNotFound)
		}
		paths = append(paths, files...)
	}
	return paths, nil
}

type fakeLoader struct {
	trees  map[string]*entities.Tree
	groups int
}

func (f *fakeLoader) Load(paths []string) ([]entities.SourceSet, error) {
	set := entities.SourceSet{}
	for _, p := range paths {
		set = append(set, entities.Source{Path: p, Tree: f.trees[p]})
	}
	switch f.groups {
	case 0, 1:
		return []entities.SourceSet{set}, nil
	default:
		out := make([]entities.SourceSet, f.groups)
		out[0] = set
		return out, nil
	}
}

type fakeTranslator struct {
	messages *entities.FlatMap
}

func (f fakeTranslator) T(_ string, key string, _ map[string]any) string {
	if v, ok := f.messages.Get(key); ok && v != "" {
		return v
	}
	return key
}

type fakeFactory struct {
	built []string
}

func (f *fakeFactory) NewTranslator(locale string, messages *entities.FlatMap) (output.T, error) {
	f.built = append(f.built, locale)
	return fakeTranslator{messages: messages}, nil
}

type fakeRepo struct {
	saved []*entities.AuditRun
	err   error
}

func (f *fakeRepo) Save(_ context.Context, run *entities.AuditRun) error {
	if f.err != nil {
		return f.err
	}
	run.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, run)
	return nil
}

func (f *fakeRepo) Latest(_ context.Context, limit int) ([]entities.AuditRun, error) {
	var out []entities.AuditRun
	for i := len(f.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *f.saved[i])
	}
	return out, f.err
}

type fakeNotifier struct {
	reports []*entities.Report
	err     error
}

func (f *fakeNotifier) Notify(_ context.Context, report *entities.Report) error {
	f.reports = append(f.reports, report)
	return f.err
}
