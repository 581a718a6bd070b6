package output

import "localeaudit/internal/domain/entities"

// Locator finds the resource files of locales.
type Locator interface {
	// Available lists the locales that have resources.
	Available() ([]string, error)
	// Paths returns the resource paths of locales, locale by locale in the given order.
	Paths(locales []string) ([]string, error)
}

// Loader materializes resource files into trees.
//
// The result is a list of top-level groupings; callers expect exactly one grouping
// wrapping every requested source.
type Loader interface {
	Load(paths []string) ([]entities.SourceSet, error)
}
