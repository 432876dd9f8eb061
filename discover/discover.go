// File: discover.go
// Role: the beam search of spec.md §4.4.
package discover

import (
	"sort"

	"github.com/anomgraph/gbad/extend"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/substructure"
)

// Run performs the beam search of spec.md §4.4 starting from seeds (one
// per distinct vertex label, or whatever seeding policy the caller already
// applied), returning the best substructures found, highest value first.
func Run(host *graph.Graph, seeds []*substructure.Substructure, opts ...Option) ([]*substructure.Substructure, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if host == nil {
		return nil, ErrNilHost
	}
	if o.Evaluate == nil {
		return nil, ErrNilEvaluator
	}
	if o.BeamWidth <= 0 {
		return nil, ErrBadBeamWidth
	}
	if o.NumBestSubs <= 0 {
		return nil, ErrBadNumBest
	}
	if o.MinVertices > o.MaxVertices {
		return nil, ErrBadSizeBounds
	}

	var (
		counter       int
		bestSet       []*substructure.Substructure
		parentSet     = seeds
		expansionsLeft = o.MaxExpansions
	)

	extendOpts := []extend.Option{
		extend.WithThreshold(o.Threshold),
		extend.WithCostModel(o.CostModel),
	}
	if o.AllowOverlap {
		extendOpts = append(extendOpts, extend.WithAllowOverlap())
	}
	if o.MarkAnomalous {
		extendOpts = append(extendOpts, extend.WithMarkAnomalous())
	}

	for len(parentSet) > 0 && expansionsLeft > 0 {
		var childSet []*substructure.Substructure

		for _, p := range parentSet {
			if len(p.Instances) >= 2 && p.Definition.NumVertices() <= o.MaxVertices {
				if expansionsLeft <= 0 {
					break
				}
				expansionsLeft--

				for _, child := range extend.Extend(host, p, extendOpts...) {
					child.Value = o.Evaluate(child)
					if o.Prune && child.Value < p.Value {
						continue
					}
					insertBounded(&childSet, &counter, child, o.BeamWidth)
				}
			}

			if p.Definition.NumVertices() >= o.MinVertices && !o.IsCompressedSeed(p) {
				insertBounded(&bestSet, &counter, p, o.NumBestSubs)
			}
		}

		parentSet = childSet
		if o.SingleRoundOnly {
			break
		}
	}

	return bestSet, nil
}

// insertBounded appends item to *set, stamps its deterministic insertion
// order, re-sorts by value descending (earliest insertion breaks ties),
// and truncates to bound.
func insertBounded(set *[]*substructure.Substructure, counter *int, item *substructure.Substructure, bound int) {
	item.SetInsertOrder(*counter)
	*counter++
	*set = append(*set, item)
	sort.SliceStable(*set, func(i, j int) bool {
		a, b := (*set)[i], (*set)[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.InsertOrder() < b.InsertOrder()
	})
	if len(*set) > bound {
		*set = (*set)[:bound]
	}
}
