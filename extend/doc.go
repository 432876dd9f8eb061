// Package extend implements the one-edge instance extension of spec.md
// §4.3: given a substructure and its instances, produce every child
// substructure reachable by adding one host-graph edge (and possibly the
// new vertex it introduces) to an instance.
//
// Candidate extended instances are grouped into children by the canonical
// graph they induce, using matcher.ExactMatch; admission of further
// instances into an existing child is gated by matcher.Match against the
// child's definition at a cost no greater than threshold*(|V|+|E|)
// (spec.md §4.3). Overlap policy and anomaly-flag propagation follow
// spec.md §4.3 exactly.
package extend
