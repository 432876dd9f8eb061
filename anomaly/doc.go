// Package anomaly implements the three anomaly search procedures of
// spec.md §4.6-§4.8 (IT/MDL, MPS, Probabilistic) against a discovered
// normative substructure, and the shared failure state machine of §4.9
// that every search reports through.
//
// All three share the same building blocks: a seeding step that picks
// host vertices matching the normative definition's labels, an iterative
// one-edge extension loop (package extend's OneEdgeExtensions), and a
// scoring step built on matcher.Match and mdl-independent cost*frequency
// arithmetic. They differ in target size, overlap policy, and when they
// stop extending.
package anomaly
