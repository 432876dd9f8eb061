// Package compress implements the substructure compression of spec.md
// §4.5: every instance of a substructure collapses into one SUB_k vertex,
// sharing vertices between instances become OVERLAP_k edges between their
// SUB vertices, and edges that survive compression but touch a collapsed
// vertex are duplicated onto every SUB vertex the original endpoint maps
// to. The label registry is rebuilt afterward so unused labels are
// dropped (spec.md §4.5 "Label list compaction").
package compress
