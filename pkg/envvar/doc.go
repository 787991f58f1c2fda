// Package envvar expands ${NAME} and ${NAME:-default} placeholders in configuration values.
package envvar
