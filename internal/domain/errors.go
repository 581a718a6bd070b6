package domain

import "errors"

// Domain errors.
var (
	ErrNoLocales             = errors.New("no locales to audit")
	ErrInvalidLocaleList     = errors.New("invalid locale list")
	ErrInvalidPreviewLength  = errors.New("preview length must be a positive integer")
	ErrUnexpectedLoaderShape = errors.New("loader returned an unexpected shape")
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrLocaleNotFound        = errors.New("locale not found")
	ErrUnsupportedFormat     = errors.New("unsupported resource format")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrNoLocales, "no_locales"},
	{ErrInvalidLocaleList, "invalid_locale_list"},
	{ErrInvalidPreviewLength, "invalid_preview_length"},
	{ErrUnexpectedLoaderShape, "unexpected_loader_shape"},
	{ErrInvalidConfig, "invalid_config"},
	{ErrLocaleNotFound, "locale_not_found"},
	{ErrUnsupportedFormat, "unsupported_format"},
}

// Code returns the stable code of the domain error wrapped in err, or "" when err
// does not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// IsConfigurationError reports whether err comes from bad user input or
// configuration rather than from a resource that failed to load.
func IsConfigurationError(err error) bool {
	switch Code(err) {
	case "no_locales", "invalid_locale_list", "invalid_preview_length", "unexpected_loader_shape", "invalid_config":
		return true
	}
	return false
}
