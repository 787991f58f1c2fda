// Package flags holds the templ-gen flag names and helpers for reading the shared flags.
package flags
