// ABOUTME: Structured CLI errors and exit codes for poolctl, adapted from the teacher's pkg/errors taxonomy.
// ABOUTME: Trimmed to the categories a pool admin tool actually raises: usage, config, pool, timeout, IO, interrupted.
package cliexit

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for poolctl operations.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
	ExitPoolError    = 4
	ExitTimeoutError = 5
	ExitIOError      = 6
	ExitInterrupted  = 130
)

// Category classifies a CLIError for exit-code mapping and suggestion text.
type Category string

const (
	CategoryUnknown     Category = "unknown"
	CategoryUsage       Category = "usage"
	CategoryConfig      Category = "config"
	CategoryPool        Category = "pool"
	CategoryTimeout     Category = "timeout"
	CategoryIO          Category = "io"
	CategoryInterrupted Category = "interrupted"
)

// CLIError is the base error type poolctl commands return from Run().
type CLIError struct {
	Category    Category
	Message     string
	Cause       error
	Suggestions []string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func (e *CLIError) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	var t *CLIError
	if errors.As(target, &t) {
		return e.Category == t.Category
	}
	return errors.Is(e.Cause, target)
}

// ExitCode maps the error's category to a process exit code.
func (e *CLIError) ExitCode() int {
	if e == nil {
		return ExitSuccess
	}
	switch e.Category {
	case CategoryUsage:
		return ExitUsageError
	case CategoryConfig:
		return ExitConfigError
	case CategoryPool:
		return ExitPoolError
	case CategoryTimeout:
		return ExitTimeoutError
	case CategoryIO:
		return ExitIOError
	case CategoryInterrupted:
		return ExitInterrupted
	default:
		return ExitGeneralError
	}
}

// WithSuggestion appends operator-facing remediation text.
func (e *CLIError) WithSuggestion(s string) *CLIError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

func New(category Category, message string) *CLIError {
	return &CLIError{Category: category, Message: message}
}

func Wrap(err error, category Category, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: message, Cause: err}
}

// UsageErrorf creates a usage error with the standard help suggestion.
func UsageErrorf(format string, args ...any) *CLIError {
	return New(CategoryUsage, fmt.Sprintf(format, args...)).
		WithSuggestion("Use 'poolctl --help' for usage information")
}

// ConfigErrorf wraps a configuration load/validation failure.
func ConfigErrorf(err error, format string, args ...any) *CLIError {
	return Wrap(err, CategoryConfig, fmt.Sprintf(format, args...)).
		WithSuggestion("Use 'poolctl validate <file>' to check the configuration file")
}

// PoolErrorf wraps a pool-level failure (admission, create, recycle).
func PoolErrorf(err error, format string, args ...any) *CLIError {
	return Wrap(err, CategoryPool, fmt.Sprintf(format, args...))
}

// TimeoutErrorf wraps a wait/create/recycle timeout.
func TimeoutErrorf(err error, format string, args ...any) *CLIError {
	return Wrap(err, CategoryTimeout, fmt.Sprintf(format, args...)).
		WithSuggestion("Consider raising the relevant timeout or pool max-size")
}

// ExitCodeFor returns the exit code poolctl's main() should use for err.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cerr *CLIError
	if errors.As(err, &cerr) {
		return cerr.ExitCode()
	}
	return ExitGeneralError
}

// Suggestions returns operator-facing remediation lines for err, if any.
func Suggestions(err error) []string {
	var cerr *CLIError
	if errors.As(err, &cerr) {
		return cerr.Suggestions
	}
	return nil
}

// FormatForCLI renders err plus any suggestions as lines suitable for stderr.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "error: %v", err)
	for _, s := range Suggestions(err) {
		fmt.Fprintf(&b, "\n  - %s", s)
	}
	return b.String()
}
