// File: errors.go
// Role: the five error kinds of spec.md §7.
//
// Error policy: every kind is a struct, not a bare sentinel, so it can
// carry call-specific context and supports errors.As(err, &kindErr) to
// recover the kind and its fields. ParseError also wraps a Cause, so
// errors.Is(err, cause) reaches the lower-level error through it; the
// other kinds wrap nothing.
package gbaderr

import "fmt"

// ParseError reports a malformed input graph file (spec.md §6 grammar).
type ParseError struct {
	Line    int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("gbad: parse error at line %d: %s", e.Line, e.Message)
	}

	return fmt.Sprintf("gbad: parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// NewParseError builds a ParseError for the given input line.
func NewParseError(line int, message string) *ParseError {
	return &ParseError{Line: line, Message: message}
}

// OptionError reports an invalid CLI option combination or value (spec.md
// §6-7, e.g. "min_vertices > max_vertices").
type OptionError struct {
	Option  string
	Message string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("gbad: option error: %s: %s", e.Option, e.Message)
}

// NewOptionError builds an OptionError naming the offending flag.
func NewOptionError(option, message string) *OptionError {
	return &OptionError{Option: option, Message: message}
}

// OutOfMemory reports that a requested allocation or resource ceiling was
// exceeded (spec.md §7 exit-code-1 cause).
type OutOfMemory struct {
	Message string
}

func (e *OutOfMemory) Error() string { return fmt.Sprintf("gbad: out of memory: %s", e.Message) }

// NewOutOfMemory builds an OutOfMemory error.
func NewOutOfMemory(message string) *OutOfMemory {
	return &OutOfMemory{Message: message}
}

// NotFoundWarning reports a non-fatal condition where the system
// substitutes a reasonable default (spec.md §7: "user-requested normative
// index beyond top-K -> warn and substitute the best"). Unlike the other
// kinds this is never returned to abort the process; callers log it and
// continue.
type NotFoundWarning struct {
	Message string
}

func (e *NotFoundWarning) Error() string { return fmt.Sprintf("gbad: warning: %s", e.Message) }

// NewNotFoundWarning builds a NotFoundWarning.
func NewNotFoundWarning(message string) *NotFoundWarning {
	return &NotFoundWarning{Message: message}
}
