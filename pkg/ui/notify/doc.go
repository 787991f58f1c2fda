// Package notify writes formatted, symbol-prefixed messages for CLI users.
//
// Message types include success (✔), error (✗), warning (⚠), info (ℹ), activity (►),
// generate (✚), remove (✖), list items (-) and title messages with customizable emojis.
// Colors come from fatih/color and are disabled automatically when the writer is not a terminal.
package notify
