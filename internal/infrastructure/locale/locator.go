package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"localeaudit/internal/domain"
	"localeaudit/internal/ports/output"
)

var _ output.Locator = (*Locator)(nil)

// Locator finds locale resources under root: locale x lives in root/x/.
type Locator struct {
	root       string
	extensions func(ext string) bool
}

// NewLocator creates a Locator over root. supported tells which file extensions
// (without the dot) are resources, usually (*Loader).Supports.
func NewLocator(root string, supported func(ext string) bool) *Locator {
	return &Locator{root: root, extensions: supported}
}

// Available lists the locale directories of the root, sorted.
func (l *Locator) Available() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("read locale root %s: %w", l.root, err)
	}
	var locales []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			locales = append(locales, e.Name())
		}
	}
	sort.Strings(locales)
	return locales, nil
}

// Paths returns the resource files of every locale, locale by locale, each
// locale's files in lexical order.
func (l *Locator) Paths(locales []string) ([]string, error) {
	var paths []string
	for _, loc := range locales {
		found, err := l.localePaths(loc)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

func (l *Locator) localePaths(loc string) ([]string, error) {
	dir := filepath.Join(l.root, loc)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, fmt.Errorf("locate %q in %s: %w", loc, l.root, domain.ErrLocaleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("locate %q: %w", loc, err)
	}

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if l.extensions(extension(path)) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return paths, nil
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
