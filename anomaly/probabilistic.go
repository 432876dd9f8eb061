// File: probabilistic.go
// Role: the iterations-2+ step of the probabilistic anomaly search, spec.md
// §4.8. Iteration 1 is a plain discover.Run + compress.Compress call (this
// package adds nothing an ordinary discovery doesn't already do); cmd/gbad
// orchestrates that and then calls ProbabilisticIteration for every
// iteration after the first.
package anomaly

import (
	"github.com/anomgraph/gbad/extend"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
)

// ProbOptions configures ProbabilisticIteration.
type ProbOptions struct {
	MinAnomScore float64
	MaxAnomScore float64
}

// ProbabilisticIteration rediscovers one-edge extensions of every SUB
// vertex left by compressing the prior iteration's normative substructure
// (one per compressed-normative instance), pools their extensions into a
// single frequency grouping, scores each by rarity
// r = numInstances(C)/numPreviousInstances, and emits every instance whose
// rarity equals the minimum observed and lies within the caller's score
// bounds (spec.md §4.8).
func ProbabilisticIteration(host *graph.Graph, subVertices []int, numPreviousInstances int, opts ProbOptions) Result {
	if numPreviousInstances <= 0 {
		return Result{State: StateScored}
	}

	var children []*instance.Instance
	for _, subVertex := range subVertices {
		if !host.HasVertex(subVertex) {
			continue
		}
		seed := instance.New()
		seed.AddVertex(subVertex)
		children = append(children, extend.OneEdgeExtensions(host, seed)...)
	}
	if len(children) == 0 {
		return Result{State: StateScored}
	}

	freq := groupFrequencies(host, children)
	candidates := make([]Candidate, len(children))
	for i, c := range children {
		r := float64(freq[i]) / float64(numPreviousInstances)
		candidates[i] = Candidate{Instance: c, Frequency: freq[i], Score: r}
	}

	min, withinBounds := minInBounds(candidates, opts.MinAnomScore, opts.MaxAnomScore)
	if !withinBounds {
		return Result{State: StateScored}
	}

	var emitted []Candidate
	for _, c := range candidates {
		if c.Score == min {
			emitted = append(emitted, c)
		}
	}

	return Result{State: StateEmitted, Candidates: emitted}
}
