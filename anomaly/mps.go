// File: mps.go
// Role: the MPS (partial substructure) anomaly search of spec.md §4.7.
package anomaly

import (
	"github.com/anomgraph/gbad/extend"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/matcher"
	"github.com/anomgraph/gbad/substructure"
)

// MPSOptions configures MPS.
type MPSOptions struct {
	Threshold    float64
	CostModel    matcher.Cost
	MinAnomScore float64
	MaxAnomScore float64

	// Optimize trades completeness for search time (spec.md §4.7).
	Optimize bool
}

// MPS searches host for subgraphs strictly smaller than normative's
// definition whose inexact-match cost against it is anomalously low, per
// spec.md §4.7.
func MPS(host *graph.Graph, normative *substructure.Substructure, opts MPSOptions) Result {
	targetSize := normative.Size()
	ceiling := opts.Threshold * float64(targetSize)

	seeds := seedInstances(host, normative, seedCapFor(opts.Threshold, targetSize))
	if len(seeds) == 0 {
		return Result{State: StateScored}
	}

	extender := extend.OneEdgeExtensions
	if opts.Optimize {
		extender = extend.OneEdgeExtensionsOptimized
	}

	var partials []*instance.Instance
	frontier := seeds

	for len(frontier) > 0 {
		var next []*instance.Instance
		for _, inst := range frontier {
			size := inst.NumVertices() + inst.NumEdges()
			if size >= targetSize || overlapsNormative(inst, normative) {
				continue
			}
			partials = append(partials, inst)

			for _, ext := range extender(host, inst) {
				if overlapsNormative(ext, normative) {
					continue
				}
				next = append(next, ext)
			}
		}
		frontier = next
	}

	if len(partials) == 0 {
		return Result{State: StateScored}
	}

	var admitted []*instance.Instance
	costs := make(map[*instance.Instance]float64, len(partials))
	for _, inst := range partials {
		c, err := matchCost(host, inst, normative, opts.CostModel)
		if err != nil || c > ceiling {
			continue
		}
		costs[inst] = c
		admitted = append(admitted, inst)
	}
	admitted = mergeOverlappingEquivalents(host, admitted)
	if len(admitted) == 0 {
		return Result{State: StateScored}
	}

	freq := groupFrequencies(host, admitted)
	var emitted []Candidate
	for i, inst := range admitted {
		c := costs[inst]
		score := c * float64(freq[i])
		if score >= opts.MinAnomScore && score <= opts.MaxAnomScore {
			emitted = append(emitted, Candidate{Instance: inst, Cost: c, Frequency: freq[i], Score: score})
		}
	}
	if len(emitted) == 0 {
		return Result{State: StateScored}
	}

	return Result{State: StateEmitted, Candidates: emitted}
}

// mergeOverlappingEquivalents keeps one witness per class of candidates
// that overlap each other and induce the same canonical graph (spec.md
// §4.7 "pairwise overlap-merging of equivalent ancestors").
func mergeOverlappingEquivalents(host *graph.Graph, instances []*instance.Instance) []*instance.Instance {
	kept := make([]bool, len(instances))
	for i := range instances {
		kept[i] = true
	}
	induced := make([]*graph.Graph, len(instances))
	for i, inst := range instances {
		induced[i] = instance.ToGraph(inst, host)
	}
	for i := 0; i < len(instances); i++ {
		if !kept[i] {
			continue
		}
		for j := i + 1; j < len(instances); j++ {
			if !kept[j] {
				continue
			}
			if instances[i].Overlaps(instances[j]) && matcher.ExactMatch(induced[i], induced[j]) {
				kept[j] = false
			}
		}
	}

	var out []*instance.Instance
	for i, k := range kept {
		if k {
			out = append(out, instances[i])
		}
	}

	return out
}
