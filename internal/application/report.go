package application

import (
	"strings"

	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
	"localeaudit/pkg/keyglob"
	"localeaudit/pkg/strutil"
)

// Previewer renders a key in the reference locale, capped at MaxLength characters.
type Previewer struct {
	translator output.T
	locale     string
	maxLength  int
}

func NewPreviewer(translator output.T, locale string, maxLength int) *Previewer {
	return &Previewer{translator: translator, locale: locale, maxLength: maxLength}
}

// Preview returns the translation of key, or the translator's fallback, truncated.
func (p *Previewer) Preview(key string) string {
	return strutil.Truncate(p.translator.T(p.locale, key, nil), p.maxLength)
}

// SearchSources flattens every source and keeps its blank keys, in source order.
func SearchSources(sources []entities.Source) *entities.MissingIndex {
	idx := &entities.MissingIndex{}
	for _, src := range sources {
		idx.Add(src.Path, entities.FilterEmpty(entities.Flatten(src.Tree, "")))
	}
	return idx
}

// IgnoreKeys drops the keys matched by m from every file of idx.
func IgnoreKeys(idx *entities.MissingIndex, m *keyglob.Matcher) *entities.MissingIndex {
	if m.Empty() {
		return idx
	}
	out := &entities.MissingIndex{}
	for _, f := range idx.Files {
		out.Add(f.Path, f.Keys.Filter(func(k string, _ entities.Leaf) bool { return !m.Match(k) }))
	}
	return out
}

// BuildRows emits one row per missing key: files in index order, keys in file order.
func BuildRows(idx *entities.MissingIndex, anchor string, preview func(key string) string) []entities.Row {
	rows := []entities.Row{}
	for _, file := range idx.Files {
		path := DisplayPath(file.Path, anchor)
		file.Keys.Each(func(key, _ string) {
			rows = append(rows, entities.Row{
				FilePath: path,
				Key:      key,
				Preview:  preview(key),
			})
		})
	}
	return rows
}

// DisplayPath drops everything before the first occurrence of anchor in path.
// The path is returned unchanged when anchor is empty or absent.
func DisplayPath(path, anchor string) string {
	if anchor == "" {
		return path
	}
	if i := strings.Index(path, anchor); i >= 0 {
		return path[i:]
	}
	return path
}
