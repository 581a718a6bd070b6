// Package keyglob matches dotted translation keys against glob patterns.
//
// `*` matches within one key segment, `**` across segments:
//
//	legacy.*      matches legacy.title but not legacy.form.title
//	legacy.**     matches both
package keyglob

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Matcher reports whether a key matches any of its patterns.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
}

// Compile builds a Matcher from patterns. Empty patterns are skipped.
func Compile(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("compile key pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, p)
		m.globs = append(m.globs, g)
	}
	return m, nil
}

func (m *Matcher) Match(key string) bool {
	if m == nil {
		return false
	}
	for _, g := range m.globs {
		if g.Match(key) {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no pattern.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.globs) == 0
}

func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return m.patterns
}
