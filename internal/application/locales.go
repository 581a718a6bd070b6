package application

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"localeaudit/internal/domain"
)

// ResolveLocales returns the locales to audit: the comma-separated check list when
// given, every configured locale otherwise.
func ResolveLocales(check string, configured []string) ([]string, error) {
	if check == "" {
		if len(configured) == 0 {
			return nil, domain.ErrNoLocales
		}
		return configured, nil
	}

	locales := lo.Map(strings.Split(check, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	if lo.Contains(locales, "") {
		return nil, fmt.Errorf("%w: %q has an empty entry", domain.ErrInvalidLocaleList, check)
	}
	return locales, nil
}
