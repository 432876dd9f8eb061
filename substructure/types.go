package substructure

import (
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
)

// Substructure is a definition graph plus its host-graph instances
// (spec.md §3). Value holds the most recently computed evaluator score
// (mdl.Value or mdl.SizeValue or mdl.SetCoverValue); higher is always
// better regardless of evaluator mode.
type Substructure struct {
	Definition  *graph.Graph
	Instances   []*instance.Instance
	NumExamples int
	Value       float64

	// insertOrder records the order in which this Substructure was
	// admitted into a beam/best set, used for the deterministic
	// earliest-insertion tie-break of spec.md §4.4.
	insertOrder int
}

// New returns a Substructure over def with no instances yet.
func New(def *graph.Graph) *Substructure {
	return &Substructure{Definition: def}
}

// SetInsertOrder and InsertOrder implement the deterministic tie-break
// bookkeeping the discover package relies on.
func (s *Substructure) SetInsertOrder(n int) { s.insertOrder = n }
func (s *Substructure) InsertOrder() int     { return s.insertOrder }

// Size returns |V(Definition)| + |E(Definition)|, the quantity spec.md's
// threshold·(|V|+|E|) formulas scale by.
func (s *Substructure) Size() int {
	return s.Definition.NumVertices() + s.Definition.NumEdges()
}

// IsConnected reports whether Definition is a connected graph, per the
// spec.md §3 Substructure invariant. Grounded on subgen.c's
// connected()/propagate() flood fill (see SPEC_FULL.md).
func IsConnected(def *graph.Graph) bool {
	n := len(def.Vertices)
	if n == 0 {
		return true
	}
	start := -1
	for i := range def.Vertices {
		if def.HasVertex(i) {
			start = i
			break
		}
	}
	if start == -1 {
		return true
	}

	visited := make([]bool, n)
	stack := []int{start}
	visited[start] = true
	count := 1
	liveTotal := 0
	for i := range def.Vertices {
		if def.HasVertex(i) {
			liveTotal++
		}
	}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eidx := range def.Vertices[v].Adjacency {
			if !def.HasEdge(eidx) {
				continue
			}
			other := def.Other(eidx, v)
			if other < 0 || visited[other] {
				continue
			}
			visited[other] = true
			count++
			stack = append(stack, other)
		}
	}

	return count == liveTotal
}
