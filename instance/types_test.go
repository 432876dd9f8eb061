package instance_test

import (
	"testing"

	"github.com/anomgraph/gbad/instance"
)

func TestAddVertex_KeepsSortedAndDedup(t *testing.T) {
	inst := instance.New()
	inst.AddVertex(5)
	inst.AddVertex(1)
	inst.AddVertex(3)
	inst.AddVertex(3)

	want := []int{1, 3, 5}
	if len(inst.Vertices) != len(want) {
		t.Fatalf("expected %v, got %v", want, inst.Vertices)
	}
	for i, v := range want {
		if inst.Vertices[i] != v {
			t.Fatalf("expected %v, got %v", want, inst.Vertices)
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := instance.New()
	a.AddVertex(1)
	a.AddVertex(2)
	b := instance.New()
	b.AddVertex(2)
	b.AddVertex(3)
	c := instance.New()
	c.AddVertex(4)

	if !a.Overlaps(b) {
		t.Fatalf("expected a and b to overlap on vertex 2")
	}
	if a.Overlaps(c) {
		t.Fatalf("expected a and c to not overlap")
	}
}

func TestSharedVertices(t *testing.T) {
	a := instance.New()
	a.AddVertex(1)
	a.AddVertex(2)
	a.AddVertex(3)
	b := instance.New()
	b.AddVertex(2)
	b.AddVertex(3)
	b.AddVertex(4)

	shared := a.SharedVertices(b)
	if len(shared) != 2 || shared[0] != 2 || shared[1] != 3 {
		t.Fatalf("expected [2 3], got %v", shared)
	}
}

func TestClone_Independent(t *testing.T) {
	a := instance.New()
	a.AddVertex(1)
	clone := a.Clone()
	clone.AddVertex(2)

	if len(a.Vertices) != 1 {
		t.Fatalf("mutating the clone must not affect the original")
	}
}
