//go:build !gbaddebug

// File: invariant_release.go
// Role: the no-op counterpart of invariant_debug.go's CheckInvariant for
// ordinary (non-gbaddebug) builds, so call sites don't need a build tag of
// their own.
package gbaderr

// CheckInvariant is a no-op outside gbaddebug builds.
func CheckInvariant(ok bool, invariant, detail string) {}
