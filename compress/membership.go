// File: membership.go
// Role: the host-vertex -> owning-instances map shared by Compress and
// SizeOfCompressedGraph, so both compute the same classification of which
// edges are absorbed, duplicated, or turned into self-edges/overlap edges
// without two diverging implementations.
package compress

import "github.com/anomgraph/gbad/instance"

// membership maps a host vertex index to the positions (within
// sub.Instances) of every instance that contains it. A vertex touched by
// more than one instance is a "shared" vertex in spec.md §4.5's sense.
func membership(instances []*instance.Instance) map[int][]int {
	m := make(map[int][]int)
	for i, inst := range instances {
		for _, v := range inst.Vertices {
			m[v] = append(m[v], i)
		}
	}

	return m
}

// sharingPairs returns every pair (i, j), i<j, of instance positions that
// share at least one host vertex, in ascending (i, j) order.
func sharingPairs(instances []*instance.Instance) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(instances); i++ {
		for j := i + 1; j < len(instances); j++ {
			if instances[i].Overlaps(instances[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}

// owners returns the instance positions touching v, or the sentinel
// single-element list {-1} to mean "v is not covered by any instance" so
// callers can treat covered and uncovered vertices uniformly.
func owners(m map[int][]int, v int) []int {
	if is, ok := m[v]; ok {
		return is
	}

	return []int{-1}
}
