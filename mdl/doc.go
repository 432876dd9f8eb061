// Package mdl implements the MDL, SIZE, and SETCOVER evaluators of
// spec.md §4.2: scoring a candidate substructure against the host graph it
// was mined from.
//
// MDL computes the minimum-description-length encoding of a graph; higher
// Value scores are always better regardless of evaluator mode, matching
// spec.md §4.2's closing statement. lgFact(n), lg(n!) in base 2, is served
// from a LgFactTable that grows monotonically as larger n are requested —
// callers must never assume a prior call sized the table large enough for a
// later one.
package mdl
