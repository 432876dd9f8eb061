// File: shared.go
// Role: seeding, overlap-vs-normative filtering, and scoring helpers shared
// by ITMDL, MPS, and Probabilistic.
package anomaly

import (
	"math"

	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/matcher"
	"github.com/anomgraph/gbad/substructure"
)

// seedInstances builds the initial single-vertex instances for a search
// against normative: up to seedCap host vertices per distinct label
// appearing in normative's definition, excluding any vertex already
// covered by a normative instance (spec.md §4.6 "Seed with up to
// ceil(threshold·(|V|+|E|))+1 initial vertex-label matches chosen to cover
// the definition").
func seedInstances(host *graph.Graph, normative *substructure.Substructure, seedCap int) []*instance.Instance {
	var labels []int
	seenLabel := make(map[int]bool)
	for i := range normative.Definition.Vertices {
		if !normative.Definition.HasVertex(i) {
			continue
		}
		l := normative.Definition.Vertices[i].LabelIdx
		if !seenLabel[l] {
			seenLabel[l] = true
			labels = append(labels, l)
		}
	}

	var seeds []*instance.Instance
	for _, l := range labels {
		count := 0
		for v := range host.Vertices {
			if count >= seedCap {
				break
			}
			if !host.HasVertex(v) || host.Vertices[v].LabelIdx != l {
				continue
			}
			if overlapsNormativeVertex(v, normative) {
				continue
			}
			inst := instance.New()
			inst.AddVertex(v)
			seeds = append(seeds, inst)
			count++
		}
	}

	return seeds
}

// seedCapFor implements spec.md §4.6's "ceil(threshold·(|V|+|E|))+1".
func seedCapFor(threshold float64, size int) int {
	return int(math.Ceil(threshold*float64(size))) + 1
}

func overlapsNormativeVertex(v int, normative *substructure.Substructure) bool {
	for _, ni := range normative.Instances {
		if ni.HasVertex(v) {
			return true
		}
	}

	return false
}

func overlapsNormative(inst *instance.Instance, normative *substructure.Substructure) bool {
	for _, ni := range normative.Instances {
		if inst.Overlaps(ni) {
			return true
		}
	}

	return false
}

func overlapsAny(inst *instance.Instance, others []*instance.Instance) bool {
	for _, o := range others {
		if inst.Overlaps(o) {
			return true
		}
	}

	return false
}

// matchCost returns inst's inexact-match cost, as the graph it induces,
// against normative's definition.
func matchCost(host *graph.Graph, inst *instance.Instance, normative *substructure.Substructure, cost matcher.Cost) (float64, error) {
	induced := instance.ToGraph(inst, host)
	res, err := matcher.Match(induced, normative.Definition, matcher.WithCostModel(cost))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// groupFrequencies assigns each instance's frequency as the size of its
// canonical-graph group among all instances passed in (spec.md §4.6
// "frequency f = number of exact-matching candidates").
func groupFrequencies(host *graph.Graph, instances []*instance.Instance) []int {
	induced := make([]*graph.Graph, len(instances))
	for i, inst := range instances {
		induced[i] = instance.ToGraph(inst, host)
	}

	freq := make([]int, len(instances))
	groupOf := make([]int, len(instances))
	for i := range groupOf {
		groupOf[i] = -1
	}
	var groups [][]int
	for i := range instances {
		if groupOf[i] != -1 {
			continue
		}
		group := []int{i}
		groupOf[i] = len(groups)
		for j := i + 1; j < len(instances); j++ {
			if groupOf[j] != -1 {
				continue
			}
			if matcher.ExactMatch(induced[i], induced[j]) {
				groupOf[j] = len(groups)
				group = append(group, j)
			}
		}
		groups = append(groups, group)
	}
	for i, g := range groupOf {
		freq[i] = len(groups[g])
	}

	return freq
}

// minInBounds returns the minimum score among candidates and whether it
// falls within [minBound, maxBound].
func minInBounds(candidates []Candidate, minBound, maxBound float64) (float64, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	min := candidates[0].Score
	for _, c := range candidates[1:] {
		if c.Score < min {
			min = c.Score
		}
	}

	return min, min >= minBound && min <= maxBound
}
