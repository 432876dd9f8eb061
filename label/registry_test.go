package label_test

import (
	"testing"

	"github.com/anomgraph/gbad/label"
)

func TestRegistry_InternDeduplicates(t *testing.T) {
	reg := label.NewRegistry()
	a := reg.Intern(label.StringLabel("a"))
	b := reg.Intern(label.NumericLabel(3))
	a2 := reg.Intern(label.StringLabel("a"))

	if a != a2 {
		t.Fatalf("expected interning \"a\" twice to return the same index, got %d and %d", a, a2)
	}
	if a == b {
		t.Fatalf("expected distinct indices for distinct labels, got %d for both", a)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 distinct labels, got %d", reg.Len())
	}
}

func TestRegistry_NumericAndStringNeverCollide(t *testing.T) {
	reg := label.NewRegistry()
	n := reg.Intern(label.NumericLabel(3))
	s := reg.Intern(label.StringLabel("3"))

	if n == s {
		t.Fatalf("numeric 3 and string \"3\" must intern to distinct indices")
	}
}

func TestRegistry_LabelOutOfRange(t *testing.T) {
	reg := label.NewRegistry()
	if _, err := reg.Label(0); err != label.ErrIndexOutOfRange {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	reg := label.NewRegistry()
	reg.Intern(label.StringLabel("a"))
	clone := reg.Clone()
	clone.Intern(label.StringLabel("b"))

	if reg.Len() != 1 {
		t.Fatalf("mutating the clone must not affect the original, got len=%d", reg.Len())
	}
	if clone.Len() != 2 {
		t.Fatalf("expected clone len=2, got %d", clone.Len())
	}
}

func TestRegistry_RebuildDropsUnusedLabels(t *testing.T) {
	reg := label.NewRegistry()
	a := reg.Intern(label.StringLabel("a"))
	_ = reg.Intern(label.StringLabel("unused"))
	c := reg.Intern(label.StringLabel("c"))

	rebuilt, remap := reg.Rebuild([]int{a, c})
	if rebuilt.Len() != 2 {
		t.Fatalf("expected rebuilt registry to keep only used labels, got len=%d", rebuilt.Len())
	}
	if _, ok := remap[a]; !ok {
		t.Fatalf("expected remap entry for used index %d", a)
	}

	newA, err := rebuilt.Label(remap[a])
	if err != nil || !newA.Equal(label.StringLabel("a")) {
		t.Fatalf("expected remapped label \"a\", got %v err=%v", newA, err)
	}
}
