package matcher

import (
	"errors"
	"math"
)

// ErrNilGraph indicates that a nil *graph.Graph was passed to Match.
var ErrNilGraph = errors.New("matcher: graph is nil")

// SearchThresholdExponent is the design constant of spec.md §4.1: the
// matcher never expands more than |V(G1)|^SearchThresholdExponent search
// nodes before degrading to a greedy upper bound.
const SearchThresholdExponent = 3

// Cost names every edit operation spec.md §4.1's cost model charges for,
// using the deviation vocabulary of subgen.c's change_vertex_label,
// delete_vertex, delete_edge, change_edge_label (see SPEC_FULL.md). All
// fields default to 1 via DefaultCost.
type Cost struct {
	InsertVertex          float64
	DeleteVertex          float64
	SubstituteVertexLabel float64
	InsertEdge            float64
	DeleteEdge            float64
	InsertEdgeWithVertex  float64
	SubstituteEdgeLabel   float64
	ChangeDirectedness    float64
	ReverseDirectedEdge   float64
}

// DefaultCost returns the unit cost model spec.md §4.1 describes as the
// default: every operation costs 1.
func DefaultCost() Cost {
	return Cost{
		InsertVertex:          1,
		DeleteVertex:          1,
		SubstituteVertexLabel: 1,
		InsertEdge:            1,
		DeleteEdge:            1,
		InsertEdgeWithVertex:  1,
		SubstituteEdgeLabel:   1,
		ChangeDirectedness:    1,
		ReverseDirectedEdge:   1,
	}
}

// Options configures a Match call.
type Options struct {
	CostModel    Cost
	Threshold    float64 // τ: report "no match" above this cost. +Inf = unbounded.
	WantMapping  bool
}

// Option is a functional option over Options, in the style of
// dijkstra.Option.
type Option func(*Options)

// WithCostModel overrides the default unit cost model.
func WithCostModel(c Cost) Option {
	return func(o *Options) { o.CostModel = c }
}

// WithThreshold sets τ, the cost ceiling above which Match reports "no
// match within threshold" (cost > τ) rather than continuing to search for
// an exact minimum.
func WithThreshold(tau float64) Option {
	return func(o *Options) { o.Threshold = tau }
}

// WithMapping requests that Match populate Result.Mapping. Without it,
// Match may skip bookkeeping that is only needed to reconstruct the
// mapping, though the current implementation always builds it internally.
func WithMapping() Option {
	return func(o *Options) { o.WantMapping = true }
}

func defaultOptions() Options {
	return Options{
		CostModel: DefaultCost(),
		Threshold: math.Inf(1),
	}
}

// Result is the outcome of a Match call.
type Result struct {
	// Cost is the minimum edit cost found, or +Inf if no mapping was found
	// within Options.Threshold (spec.md §4.1 "Failure").
	Cost float64

	// Mapping maps each G1 vertex index to either a G2 vertex index or
	// graph.DeletedVertex. Populated only when WithMapping was given.
	Mapping map[int]int

	// NodesExpanded records how many search nodes were popped from the
	// frontier, for diagnostics and the §4.1 ceiling tests.
	NodesExpanded int

	// CeilingHit reports whether the |V(G1)|^3 node ceiling was reached
	// before an optimal complete mapping was confirmed (spec.md §4.1).
	CeilingHit bool
}
