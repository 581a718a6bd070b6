package cli

import (
	"errors"
	"fmt"
	"io"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"localeaudit/internal/domain"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitConfig  = 2
	ExitMissing = 3
)

// ErrMissingValues is returned by --strict runs that found missing values.
var ErrMissingValues = errors.New("missing values found")

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMissingValues):
		return ExitMissing
	case domain.IsConfigurationError(err):
		return ExitConfig
	default:
		return ExitFailure
	}
}

// Hint maps a domain error code to a short piece of advice for the user.
func Hint(code string) string {
	switch code {
	case "no_locales":
		return "set LOCALES_AVAILABLE, create locale directories, or pass --check"
	case "invalid_locale_list":
		return "--check takes a comma-separated list such as en_US,fr_FR"
	case "invalid_preview_length":
		return "--length and PREVIEW_LENGTH must be positive integers"
	case "unexpected_loader_shape":
		return "the resource loader must return exactly one source set"
	case "invalid_config":
		return "check the environment variables and the .env file"
	case "locale_not_found":
		return "run `localeaudit locales` to list the available locales"
	case "unsupported_format":
		return "resource files must be .toml, .json, .yaml or .yml"
	default:
		return ""
	}
}

// report prints err for the user and logs its stack trace at debug level.
func report(err error, w io.Writer, log *logrus.Entry) {
	if errors.Is(err, ErrMissingValues) {
		return
	}
	fmt.Fprintf(w, "localeaudit: %v\n", err)
	if hint := Hint(domain.Code(err)); hint != "" {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
	if !domain.IsConfigurationError(err) {
		log.Debug(goerrors.Wrap(err, 0).ErrorStack())
	}
}
