package extend

import "github.com/anomgraph/gbad/matcher"

// Options configures Extend.
type Options struct {
	// AllowOverlap controls spec.md §4.3's overlap policy: when false,
	// a child instance sharing any vertex with an already-admitted
	// instance of the same child is rejected.
	AllowOverlap bool

	// Threshold scales the admission cost ceiling: an instance is admitted
	// into a child only if its match cost against the child's definition is
	// <= Threshold*(|V(definition)|+|E(definition)|).
	Threshold float64

	// MarkAnomalous asks Extend to flag the newly added edge (and any
	// newly added vertex) as anomalous in each resulting child instance —
	// the mechanism the probabilistic algorithm uses (spec.md §4.3).
	MarkAnomalous bool

	// CostModel is passed through to every matcher.Match call Extend makes.
	CostModel matcher.Cost
}

// Option is a functional option over Options.
type Option func(*Options)

// WithAllowOverlap enables admitting instances that share vertices with
// already-admitted instances of the same child.
func WithAllowOverlap() Option {
	return func(o *Options) { o.AllowOverlap = true }
}

// WithThreshold sets the admission cost ceiling scale factor.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithMarkAnomalous asks Extend to flag newly added elements as anomalous.
func WithMarkAnomalous() Option {
	return func(o *Options) { o.MarkAnomalous = true }
}

// WithCostModel overrides the matcher cost model Extend uses internally.
func WithCostModel(c matcher.Cost) Option {
	return func(o *Options) { o.CostModel = c }
}

func defaultOptions() Options {
	return Options{
		Threshold: 0,
		CostModel: matcher.DefaultCost(),
	}
}
