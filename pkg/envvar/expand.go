package envvar

import (
	"os"
	"regexp"

	"github.com/devantler-tech/templ-gen/pkg/ui/logger"
)

// placeholder matches ${NAME} and ${NAME:-default}.
// Groups: 1 = name, 2 = ":-" marker, 3 = default value.
//
//nolint:gochecknoglobals // compiled once
var placeholder = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(:-([^}]*))?\}`)

// Expand replaces the placeholders in value with environment variable values.
//
// A variable that is not set resolves to its default when one is given (${NAME:-default},
// ${NAME:-} for empty). Otherwise it resolves to an empty string and a warning is logged.
// A variable that is set to an empty value stays empty.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return placeholder.ReplaceAllStringFunc(value, func(match string) string {
		groups := placeholder.FindStringSubmatch(match)
		name := groups[1]

		if envValue, ok := os.LookupEnv(name); ok {
			return envValue
		}

		if groups[2] != "" {
			return groups[3]
		}

		logger.WithComponent("envvar").WithField("variable", name).Warn("environment variable not set")

		return ""
	})
}
