// File: extend.go
// Role: the one-edge extension procedure of spec.md §4.3.
package extend

import (
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/matcher"
	"github.com/anomgraph/gbad/substructure"
)

// Extend produces every child substructure reachable by adding one
// host-graph edge to an instance of parent, per spec.md §4.3.
func Extend(host *graph.Graph, parent *substructure.Substructure, opts ...Option) []*substructure.Substructure {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var children []*substructure.Substructure

	for _, inst := range parent.Instances {
		for _, candidate := range OneEdgeExtensions(host, inst) {
			induced := instance.ToGraph(candidate, host)
			placeInChild(&children, host, candidate, induced, o)
		}
	}

	return children
}

// OneEdgeExtensions returns, for each host edge incident to some vertex of
// inst but not already a member of inst, the extended instance inst+e
// (including the new vertex, if e introduces one). Exported for the
// anomaly package's own search procedures, which extend instances directly
// without grouping them into child substructures.
func OneEdgeExtensions(host *graph.Graph, inst *instance.Instance) []*instance.Instance {
	return extendOneEdge(host, inst, false)
}

// OneEdgeExtensionsOptimized is OneEdgeExtensions with spec.md §4.7's
// "optimize" trade-off applied: once an edge incident to a vertex has
// produced an extension, no further edges incident to that same vertex are
// tried in this call.
func OneEdgeExtensionsOptimized(host *graph.Graph, inst *instance.Instance) []*instance.Instance {
	return extendOneEdge(host, inst, true)
}

func extendOneEdge(host *graph.Graph, inst *instance.Instance, optimize bool) []*instance.Instance {
	var out []*instance.Instance
	seenEdge := make(map[int]bool)

	for _, v := range inst.Vertices {
		for _, eidx := range host.Vertices[v].Adjacency {
			if !host.HasEdge(eidx) || inst.HasEdge(eidx) || seenEdge[eidx] {
				continue
			}
			seenEdge[eidx] = true

			extended := inst.Clone()
			extended.ResetMatchCost()
			extended.NewVertex = instance.NoVertex
			other := host.Other(eidx, v)
			if !inst.HasVertex(other) {
				extended.AddVertex(other)
			}
			extended.AddEdge(eidx)
			extended.Parent = inst
			out = append(out, extended)

			if optimize {
				break
			}
		}
	}

	return out
}

// placeInChild finds the first existing child whose definition accepts
// candidate within the configured threshold and admits candidate there,
// unless AllowOverlap is off and candidate overlaps an instance that child
// already holds, in which case candidate is rejected. If no child accepts
// candidate, a new child is created for it.
func placeInChild(children *[]*substructure.Substructure, host *graph.Graph, candidate *instance.Instance, induced *graph.Graph, o Options) {
	for _, child := range *children {
		ceiling := o.Threshold * float64(child.Definition.NumVertices()+child.Definition.NumEdges())
		res, err := matcher.Match(induced, child.Definition, matcher.WithCostModel(o.CostModel), matcher.WithThreshold(ceiling))
		if err != nil || res.Cost > ceiling {
			continue
		}
		if !o.AllowOverlap && overlapsAny(candidate, child.Instances) {
			return
		}

		candidate.MinMatchCost = res.Cost
		applyAnomalyMarks(candidate, o)
		child.Instances = append(child.Instances, candidate)

		return
	}

	child := substructure.New(induced)
	candidate.MinMatchCost = 0
	applyAnomalyMarks(candidate, o)
	child.Instances = append(child.Instances, candidate)
	*children = append(*children, child)
}

func applyAnomalyMarks(inst *instance.Instance, o Options) {
	if !o.MarkAnomalous {
		return
	}
	if inst.NewEdge != instance.NoEdge {
		inst.AnomalousEdges = append(inst.AnomalousEdges, inst.NewEdge)
	}
	if inst.NewVertex != instance.NoVertex {
		inst.AnomalousVertices = append(inst.AnomalousVertices, inst.NewVertex)
	}
}

func overlapsAny(candidate *instance.Instance, admitted []*instance.Instance) bool {
	for _, a := range admitted {
		if candidate.Overlaps(a) {
			return true
		}
	}

	return false
}
