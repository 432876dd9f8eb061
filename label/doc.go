// Package label implements the interned label registry shared by every
// graph produced or consumed by the gbad pipeline.
//
// A Label is a tagged sum of a numeric (float64) or string value. Equality
// is by kind plus value: a numeric 3 and the string "3" are distinct labels.
// The Registry owns every Label ever interned during a run and hands out
// stable, nonnegative indices that are never reused or deleted — only a
// full rebuild (Rebuild) produces a smaller index space, and it does so by
// constructing a brand-new Registry rather than mutating indices in place.
//
// Example:
//
//	reg := label.NewRegistry()
//	a := reg.Intern(label.StringLabel("a"))
//	b := reg.Intern(label.NumericLabel(3))
//	a2 := reg.Intern(label.StringLabel("a"))
//	// a == a2: interning the same label twice returns the same index.
package label
