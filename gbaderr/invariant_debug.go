//go:build gbaddebug

// File: invariant_debug.go
// Role: InvariantViolation, compiled in only under the gbaddebug build tag
// (spec.md §7: "InvariantViolation (debug-only assertion)").
package gbaderr

import "fmt"

// InvariantViolation reports a broken internal invariant (spec.md §8's
// adjacency-index invariant, scratch-flag reset, etc.) detected by a
// debug-build assertion. Production builds never construct this type.
type InvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("gbad: invariant violated: %s: %s", e.Invariant, e.Detail)
}

// NewInvariantViolation builds an InvariantViolation.
func NewInvariantViolation(invariant, detail string) *InvariantViolation {
	return &InvariantViolation{Invariant: invariant, Detail: detail}
}

// CheckInvariant panics with an InvariantViolation if ok is false. This
// version is compiled only into gbaddebug builds; other builds get the
// no-op CheckInvariant in invariant_release.go.
func CheckInvariant(ok bool, invariant, detail string) {
	if !ok {
		panic(NewInvariantViolation(invariant, detail))
	}
}
