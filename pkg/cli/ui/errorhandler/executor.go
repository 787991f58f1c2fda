package errorhandler

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Normalizer turns captured cobra stderr output into a user-facing message.
type Normalizer interface {
	Normalize(raw string) string
}

// Executor runs a cobra command, captures what cobra writes to stderr and returns it as a
// CommandError.
type Executor struct {
	normalizer Normalizer
}

// NewExecutor constructs an Executor using DefaultNormalizer.
func NewExecutor() *Executor {
	return NewExecutorWithNormalizer(DefaultNormalizer{})
}

// NewExecutorWithNormalizer constructs an Executor using normalizer.
func NewExecutorWithNormalizer(normalizer Normalizer) *Executor {
	return &Executor{normalizer: normalizer}
}

// Execute runs cmd. It returns nil on success, or a *CommandError holding the normalized
// stderr output and the original error.
//
// Usage errors get a hint pointing at the help of the command that failed.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	failed, err := cmd.ExecuteC()
	if err == nil {
		return nil
	}

	message := e.normalizer.Normalize(errBuf.String())

	if IsUsageError(err) && failed != nil {
		message = withUsageHint(message, failed.CommandPath())
	}

	return &CommandError{
		message: message,
		cause:   err,
	}
}

// CommandError is a cobra execution failure with its normalized stderr output.
type CommandError struct {
	message string
	cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// UsageError marks an error caused by how the command was invoked.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// FlagErrorFunc wraps flag parsing errors in a UsageError. Install it with
// cobra.Command.SetFlagErrorFunc.
func FlagErrorFunc(_ *cobra.Command, err error) error {
	return &UsageError{Err: err}
}

// IsUsageError reports whether err was caused by invalid flags or arguments.
// Cobra reports missing required flags as plain errors, so those are matched by message.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return true
	}

	return strings.HasPrefix(err.Error(), "required flag(s)")
}

func withUsageHint(message, commandPath string) string {
	hint := fmt.Sprintf("Run '%s --help' for usage.", commandPath)
	if strings.Contains(message, hint) {
		return message
	}

	if message == "" {
		return hint
	}

	return message + "\n" + hint
}

// DefaultNormalizer trims cobra's output and drops its "Error: " prefix.
type DefaultNormalizer struct{}

// Normalize trims whitespace, removes redundant "Error:" prefixes, and preserves multi-line usage hints.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
