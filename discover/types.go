package discover

import (
	"errors"
	"math"

	"github.com/anomgraph/gbad/matcher"
	"github.com/anomgraph/gbad/substructure"
)

// isCompressedSeed reports whether s is a single vertex introduced by a
// prior compress.Compress iteration (spec.md §4.4 step 2's "not a
// previously-compressed SUB_k singleton" exclusion), using
// graph.Vertex.CompressionIteration rather than a "SUB_" label-string
// prefix test (spec.md §9 open question).
func isCompressedSeed(s *substructure.Substructure) bool {
	if s.Definition.NumVertices() != 1 {
		return false
	}
	for i := range s.Definition.Vertices {
		if s.Definition.HasVertex(i) {
			return s.Definition.Vertices[i].CompressionIteration > 0
		}
	}

	return false
}

// Sentinel errors returned by Run's option validation.
var (
	ErrNilHost       = errors.New("discover: host graph is nil")
	ErrNilEvaluator  = errors.New("discover: Evaluate option is required")
	ErrBadBeamWidth  = errors.New("discover: BeamWidth must be > 0")
	ErrBadNumBest    = errors.New("discover: NumBestSubs must be > 0")
	ErrBadSizeBounds = errors.New("discover: MinVertices must be <= MaxVertices")
)

// Options configures Run. Evaluate is mandatory; everything else has a
// usable default from DefaultOptions.
type Options struct {
	// Evaluate scores a candidate substructure (mdl.Value under whichever
	// mode the caller configured); higher is always better.
	Evaluate func(*substructure.Substructure) float64

	// IsCompressedSeed reports whether a substructure is a single
	// previously-compressed SUB_k vertex, which must never itself be
	// inserted into the best set (spec.md §4.4 step 2). DefaultOptions sets
	// it to isCompressedSeed.
	IsCompressedSeed func(*substructure.Substructure) bool

	MaxExpansions int
	BeamWidth     int
	NumBestSubs   int
	MinVertices   int
	MaxVertices   int

	AllowOverlap  bool
	Prune         bool
	MarkAnomalous bool
	Threshold     float64
	CostModel     matcher.Cost

	// SingleRoundOnly stops after one expansion round, the probabilistic
	// algorithm's behavior for iterations after the first (spec.md §4.4
	// "Prob-mode termination").
	SingleRoundOnly bool
}

// Option is a functional option over Options.
type Option func(*Options)

// WithEvaluate sets the scoring function. Required.
func WithEvaluate(f func(*substructure.Substructure) float64) Option {
	return func(o *Options) { o.Evaluate = f }
}

// WithIsCompressedSeed overrides the predicate for step 2's "not a
// previously-compressed SUB_k singleton" exclusion.
func WithIsCompressedSeed(f func(*substructure.Substructure) bool) Option {
	return func(o *Options) { o.IsCompressedSeed = f }
}

// WithMaxExpansions bounds how many parent substructures get extended
// across the whole run (spec.md's "expansion limit").
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithBeamWidth bounds the child set.
func WithBeamWidth(n int) Option {
	return func(o *Options) { o.BeamWidth = n }
}

// WithNumBestSubs bounds the best set.
func WithNumBestSubs(n int) Option {
	return func(o *Options) { o.NumBestSubs = n }
}

// WithSizeBounds sets the min/max vertex-count window a substructure must
// fall in to be expanded (max) or kept (min).
func WithSizeBounds(min, max int) Option {
	return func(o *Options) { o.MinVertices, o.MaxVertices = min, max }
}

// WithAllowOverlap is threaded through to every Extend call.
func WithAllowOverlap() Option {
	return func(o *Options) { o.AllowOverlap = true }
}

// WithPrune enables dropping a child whose value is worse than its parent's.
func WithPrune(v bool) Option {
	return func(o *Options) { o.Prune = v }
}

// WithMarkAnomalous is threaded through to every Extend call.
func WithMarkAnomalous() Option {
	return func(o *Options) { o.MarkAnomalous = true }
}

// WithThreshold sets the extension admission threshold.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithCostModel overrides the matcher cost model used during extension.
func WithCostModel(c matcher.Cost) Option {
	return func(o *Options) { o.CostModel = c }
}

// WithSingleRoundOnly stops the search after one expansion round.
func WithSingleRoundOnly() Option {
	return func(o *Options) { o.SingleRoundOnly = true }
}

// DefaultOptions returns sensible defaults; callers still need WithEvaluate.
func DefaultOptions() Options {
	return Options{
		IsCompressedSeed: isCompressedSeed,
		MaxExpansions:    math.MaxInt32,
		BeamWidth:        4,
		NumBestSubs:      3,
		MinVertices:      1,
		MaxVertices:      math.MaxInt32,
		Prune:            true,
		CostModel:        matcher.DefaultCost(),
	}
}
