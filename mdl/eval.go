// File: eval.go
// Role: substructure Value scoring across the three evaluator modes of
// spec.md §4.2.
package mdl

import (
	"math"

	"github.com/anomgraph/gbad/graph"
)

// Mode selects which evaluator spec.md §4.2 / §6 `-eval` describes.
type Mode int

const (
	// ModeMDL scores by minimum description length (CLI `-eval 1`).
	ModeMDL Mode = iota
	// ModeSize scores by raw vertex+edge counts (CLI `-eval 2`).
	ModeSize
	// ModeSetCover scores by positive-example coverage (CLI `-eval 3`).
	ModeSetCover
)

// SizeValue returns |V(g)| + |E(g)|, the SIZE-mode building block (spec.md
// §4.2 and subgen.c's graph_size(), see SPEC_FULL.md).
func SizeValue(g *graph.Graph) float64 {
	return float64(g.NumVertices() + g.NumEdges())
}

// ExternalEdgeBits implements spec.md §4.2's externalEdgeBits term: lg|V(S)|
// per external edge endpoint into a SUB vertex, doubled for a self-edge
// that lands entirely on one SUB vertex (compress.go's "add a self-edge on
// the SUB vertex" case, spec.md §4.5).
func ExternalEdgeBits(defVertexCount, externalEdges, selfEdgesOnSub int) float64 {
	if defVertexCount <= 0 {
		return 0
	}
	lgV := log2(float64(defVertexCount))

	return lgV * float64(externalEdges+2*selfEdgesOnSub)
}

// Input bundles everything Value needs to score one candidate substructure.
type Input struct {
	Mode Mode

	// HostGraph is the (possibly already partially compressed) graph the
	// candidate was mined from.
	HostGraph *graph.Graph

	// Definition is the candidate substructure's own graph.
	Definition *graph.Graph

	// Compressed is HostGraph with every instance of Definition replaced by
	// a SUB vertex (compress.Compress's output), used by ModeMDL as
	// "Graph|S".
	Compressed *graph.Graph

	NumLabels int

	NumInstances   int
	ExternalEdges  int
	SelfEdgesOnSub int

	CoveredPosExamples int
	TotalPosExamples   int

	Table *LgFactTable
}

// Value scores in's candidate substructure under in.Mode. Higher is always
// better, regardless of mode (spec.md §4.2).
func Value(in Input) float64 {
	switch in.Mode {
	case ModeSetCover:
		return SetCoverValue(in.CoveredPosExamples, in.TotalPosExamples)
	case ModeSize:
		return sizeRatio(in)
	default:
		return mdlRatio(in)
	}
}

func sizeRatio(in Input) float64 {
	denom := SizeValue(in.Definition) + SizeValue(in.Compressed)
	if denom == 0 {
		return 0
	}

	return nonNegative(SizeValue(in.HostGraph) / denom)
}

func mdlRatio(in Input) float64 {
	table := in.Table
	if table == nil {
		table = NewLgFactTable()
	}
	hostMDL := MDL(in.HostGraph, in.NumLabels, table)
	subMDL := MDL(in.Definition, in.NumLabels, table)
	compressedMDL := MDL(in.Compressed, in.NumLabels, table)
	external := ExternalEdgeBits(in.Definition.NumVertices(), in.ExternalEdges, in.SelfEdgesOnSub)

	denom := subMDL + compressedMDL + external
	if denom == 0 {
		return 0
	}

	return nonNegative(hostMDL / denom)
}

// SetCoverValue implements spec.md §4.2's SETCOVER mode.
func SetCoverValue(coveredPosExamples, totalPosExamples int) float64 {
	if totalPosExamples <= 0 {
		return 0
	}

	return float64(coveredPosExamples) / float64(totalPosExamples)
}

// nonNegative guards against floating point noise producing a tiny
// negative zero for formulas that are mathematically bounded below by 0.
func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}

	return v
}
