// File: state.go
// Role: the failure state machine of spec.md §4.9, shared by every search
// in this package.
package anomaly

import "github.com/anomgraph/gbad/instance"

// State is one stage of the anomaly search state machine. Transitions only
// move forward; an empty seed or empty extension jumps straight to
// StateScored with no candidates (spec.md §4.9).
type State int

const (
	StateInit State = iota
	StateSeeded
	StateExtending
	StateAtTargetSize
	StateScored
	StateEmitted
)

// String renders State as its upper-case stage name ("INIT", "SEEDED",
// ...). The anomaly report does not print State values.
func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateSeeded:
		return "SEEDED"
	case StateExtending:
		return "EXTENDING"
	case StateAtTargetSize:
		return "AT_TARGET_SIZE"
	case StateScored:
		return "SCORED"
	case StateEmitted:
		return "EMITTED"
	default:
		return "UNKNOWN"
	}
}

// Candidate is one scored result of an anomaly search.
type Candidate struct {
	Instance  *instance.Instance
	Cost      float64
	Frequency int
	Score     float64
}

// Result is the outcome of one anomaly search call.
type Result struct {
	State      State
	Candidates []Candidate
}
