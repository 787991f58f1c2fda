// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: The templ-gen root command and the generate, delete and list subcommands
//   - cli/flags: Flag names and lookups for timing and verbosity
//   - cli/ui/errorhandler: Command execution with normalized error output
package cli
