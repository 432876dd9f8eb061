package instance

import "math"

// NoVertex and NoEdge are the sentinel values for Instance.NewVertex and
// Instance.NewEdge when no vertex/edge was most recently added (spec.md §3:
// "sentinels if none").
const (
	NoVertex = -1
	NoEdge   = -1
)

// Instance is a subgraph of a host graph.Graph: an ascending list of vertex
// indices, an ascending list of edge indices, and a map from a
// substructure's definition-vertex index to the host vertex index it was
// matched onto.
type Instance struct {
	Vertices []int
	Edges    []int
	VertexMap map[int]int

	// MinMatchCost is the lowest edit cost observed for this instance
	// against any candidate definition so far (spec.md §3).
	MinMatchCost float64

	// NewVertex/NewEdge mark the last element added to this instance by an
	// extension step (spec.md §3); NoVertex/NoEdge if extension added only
	// the other kind, or for an instance that has never been extended.
	NewVertex int
	NewEdge   int

	// Anomaly fields. Package extend sets AnomalousVertices/AnomalousEdges
	// under its MarkAnomalous option; the other four are not set by any
	// package in this module.
	AnomalousVertices []int
	AnomalousEdges    []int
	InfoAnomValue     float64
	ProbAnomValue     float64
	MPSAnomValue      float64
	Frequency         int

	// Parent is the instance this one was extended from, or nil for a
	// single-vertex seed instance. Used only for anomaly-report provenance.
	Parent *Instance

	// RefCount is a reference-count slot for substructures sharing this
	// Instance. No package in this module increments or reads it, so it
	// stays 0.
	RefCount int
}

// New returns an empty Instance with no vertices or edges.
func New() *Instance {
	return &Instance{
		VertexMap: make(map[int]int),
		NewVertex: NoVertex,
		NewEdge:   NoEdge,
	}
}

// NumVertices reports len(Vertices).
func (inst *Instance) NumVertices() int { return len(inst.Vertices) }

// NumEdges reports len(Edges).
func (inst *Instance) NumEdges() int { return len(inst.Edges) }

// HasVertex reports whether v is a member of this instance's vertex list.
// Complexity: O(log n) via binary search since Vertices stays sorted.
func (inst *Instance) HasVertex(v int) bool {
	return binarySearch(inst.Vertices, v)
}

// HasEdge reports whether e is a member of this instance's edge list.
func (inst *Instance) HasEdge(e int) bool {
	return binarySearch(inst.Edges, e)
}

// Overlaps reports whether inst and other share at least one host vertex
// (spec.md glossary "Overlap").
func (inst *Instance) Overlaps(other *Instance) bool {
	i, j := 0, 0
	for i < len(inst.Vertices) && j < len(other.Vertices) {
		switch {
		case inst.Vertices[i] == other.Vertices[j]:
			return true
		case inst.Vertices[i] < other.Vertices[j]:
			i++
		default:
			j++
		}
	}

	return false
}

// SharedVertices returns the sorted list of host vertex indices that inst
// and other have in common.
func (inst *Instance) SharedVertices(other *Instance) []int {
	var shared []int
	i, j := 0, 0
	for i < len(inst.Vertices) && j < len(other.Vertices) {
		switch {
		case inst.Vertices[i] == other.Vertices[j]:
			shared = append(shared, inst.Vertices[i])
			i++
			j++
		case inst.Vertices[i] < other.Vertices[j]:
			i++
		default:
			j++
		}
	}

	return shared
}

// Clone returns a deep copy of inst's membership and extension state
// (Vertices, Edges, VertexMap, MinMatchCost, NewVertex, NewEdge, Parent),
// safe to extend independently. The anomaly fields and RefCount are not
// copied; they start at their zero values.
func (inst *Instance) Clone() *Instance {
	out := &Instance{
		Vertices:     append([]int(nil), inst.Vertices...),
		Edges:        append([]int(nil), inst.Edges...),
		VertexMap:    make(map[int]int, len(inst.VertexMap)),
		MinMatchCost: inst.MinMatchCost,
		NewVertex:    inst.NewVertex,
		NewEdge:      inst.NewEdge,
		Parent:       inst.Parent,
	}
	for k, v := range inst.VertexMap {
		out.VertexMap[k] = v
	}

	return out
}

// AddVertex inserts v into Vertices, keeping the list sorted and
// duplicate-free, and sets NewVertex = v.
func (inst *Instance) AddVertex(v int) {
	if !binarySearch(inst.Vertices, v) {
		inst.Vertices = insertSorted(inst.Vertices, v)
	}
	inst.NewVertex = v
}

// AddEdge inserts e into Edges, keeping the list sorted and duplicate-free,
// and sets NewEdge = e.
func (inst *Instance) AddEdge(e int) {
	if !binarySearch(inst.Edges, e) {
		inst.Edges = insertSorted(inst.Edges, e)
	}
	inst.NewEdge = e
}

// defaultMinMatchCost is the sentinel "never evaluated" cost: +Inf sorts
// worse than any real cost, so an un-evaluated instance never wins a
// min-cost comparison by accident.
var defaultMinMatchCost = math.Inf(1)

// ResetMatchCost sets MinMatchCost back to its "never evaluated" default.
func (inst *Instance) ResetMatchCost() { inst.MinMatchCost = defaultMinMatchCost }

func binarySearch(s []int, v int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s[mid] == v:
			return true
		case s[mid] < v:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

func insertSorted(s []int, v int) []int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	s = append(s, 0)
	copy(s[lo+1:], s[lo:])
	s[lo] = v

	return s
}
