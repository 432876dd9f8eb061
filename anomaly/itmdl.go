// File: itmdl.go
// Role: the IT/MDL anomaly search of spec.md §4.6.
package anomaly

import (
	"github.com/anomgraph/gbad/extend"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/matcher"
	"github.com/anomgraph/gbad/substructure"
)

// ITMDLOptions configures ITMDL.
type ITMDLOptions struct {
	Threshold    float64
	CostModel    matcher.Cost
	MinAnomScore float64
	MaxAnomScore float64
}

// ITMDL searches host for connected subgraphs of the same shape as
// normative's definition whose inexact-match cost against it is
// anomalously low, per spec.md §4.6.
func ITMDL(host *graph.Graph, normative *substructure.Substructure, opts ITMDLOptions) Result {
	targetV := normative.Definition.NumVertices()
	targetE := normative.Definition.NumEdges()
	ceiling := opts.Threshold * float64(targetV+targetE)

	seeds := seedInstances(host, normative, seedCapFor(opts.Threshold, targetV+targetE))
	state := StateSeeded
	if len(seeds) == 0 {
		return Result{State: StateScored}
	}

	frontier := seeds

	for round := 0; round < targetE; round++ {
		state = StateExtending
		var next []*instance.Instance
		for _, inst := range frontier {
			for _, ext := range extend.OneEdgeExtensions(host, inst) {
				if ext.NumVertices() > targetV || overlapsNormative(ext, normative) {
					continue
				}
				next = append(next, ext)
			}
		}
		if len(next) == 0 {
			return Result{State: StateScored}
		}
		frontier = next
	}

	state = StateAtTargetSize
	var atTarget []*instance.Instance
	for _, inst := range frontier {
		if inst.NumVertices() == targetV && inst.NumEdges() == targetE {
			atTarget = append(atTarget, inst)
		}
	}
	if len(atTarget) == 0 {
		return Result{State: StateScored}
	}

	var admitted []*instance.Instance
	costs := make(map[*instance.Instance]float64, len(atTarget))
	for _, inst := range atTarget {
		c, err := matchCost(host, inst, normative, opts.CostModel)
		if err != nil || !(c > 0 && c <= ceiling && c <= opts.MaxAnomScore) {
			continue
		}
		costs[inst] = c
		admitted = append(admitted, inst)
	}
	if len(admitted) == 0 {
		return Result{State: StateScored}
	}

	freq := groupFrequencies(host, admitted)
	candidates := make([]Candidate, len(admitted))
	for i, inst := range admitted {
		c := costs[inst]
		candidates[i] = Candidate{Instance: inst, Cost: c, Frequency: freq[i], Score: c * float64(freq[i])}
	}

	state = StateScored
	min, withinBounds := minInBounds(candidates, opts.MinAnomScore, opts.MaxAnomScore)
	if !withinBounds {
		return Result{State: state}
	}

	var emitted []Candidate
	for _, c := range candidates {
		if c.Score == min {
			emitted = append(emitted, c)
		}
	}

	return Result{State: StateEmitted, Candidates: emitted}
}
