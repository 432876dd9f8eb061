// Package discover implements the beam search of spec.md §4.4: repeatedly
// extend a parent set of substructures, keep the best children in a
// bounded child set, and accumulate the overall best substructures seen
// into a bounded best set, until the expansion limit is exhausted or the
// parent set runs dry.
//
// The Options/Option shape follows dijkstra.Options/Option: a plain struct
// built by functional options, validated by the caller (Run) rather than by
// the option constructors themselves.
package discover
