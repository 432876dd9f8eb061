// Package gbaderr defines the typed error kinds of spec.md §7: ParseError,
// OptionError, OutOfMemory, InvariantViolation (debug-build only), and
// NotFoundWarning. Callers can errors.As to each kind; only ParseError
// carries a Cause and unwraps to it, so errors.Is reaches an original
// error through ParseError alone.
package gbaderr
