// Package errorhandler coordinates cobra execution and turns captured
// stderr output into a single user-facing error.
package errorhandler

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"
)

// Executor runs a cobra command while intercepting its error stream.
type Executor struct{}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the command and returns nil on success, or a
// *CommandError holding the normalized stderr text together with the
// original error so errors.Is/As keep working.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	return &CommandError{
		message: normalize(errBuf.String()),
		cause:   err,
	}
}

// CommandError is a cobra execution failure augmented with the
// normalized stderr output that accompanied it.
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
	case e.message == "":
		return e.cause.Error()
	case strings.Contains(e.message, e.cause.Error()):
		return e.message
	default:
		return e.message + ": " + e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// normalize trims whitespace and strips cobra's redundant "Error: "
// prefix while preserving multi-line usage hints.
func normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
