package topology

import (
	"reflect"
	"testing"
)

func TestBuildGraphLastWriteWins(t *testing.T) {
	// A rebonded child keeps only its most recent parent.
	g := BuildGraph([]BondEvent{
		{ChildID: 5, ParentID: 0},
		{ChildID: 6, ParentID: 5},
		{ChildID: 5, ParentID: 3},
	})

	parent, ok := g.Parent(5)
	if !ok || parent != 3 {
		t.Errorf("Parent(5) = %d, %v, want 3, true", parent, ok)
	}
	parent, ok = g.Parent(6)
	if !ok || parent != 5 {
		t.Errorf("Parent(6) = %d, %v, want 5, true", parent, ok)
	}
	if _, ok := g.Parent(0); ok {
		t.Errorf("Parent(0) reported a parent for a particle never bonded as child")
	}
}

func TestBuildGraphChildrenOrderAndDuplicates(t *testing.T) {
	// Children keep log order; duplicate events are retained, not collapsed.
	g := BuildGraph([]BondEvent{
		{ChildID: 2, ParentID: 0},
		{ChildID: 7, ParentID: 0},
		{ChildID: 2, ParentID: 0},
	})

	want := []int{2, 7, 2}
	if got := g.Children(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Children(0) = %v, want %v", got, want)
	}
	if got := g.Children(99); len(got) != 0 {
		t.Errorf("Children(99) = %v, want empty", got)
	}
	if got := g.Events(); got != 3 {
		t.Errorf("Events() = %d, want 3", got)
	}
}

func TestGraphParentsFirstAppearanceOrder(t *testing.T) {
	g := BuildGraph([]BondEvent{
		{ChildID: 1, ParentID: 4},
		{ChildID: 2, ParentID: 0},
		{ChildID: 3, ParentID: 4},
	})

	want := []int{4, 0}
	if got := g.Parents(); !reflect.DeepEqual(got, want) {
		t.Errorf("Parents() = %v, want %v", got, want)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := NewGraph()
	if got := g.Events(); got != 0 {
		t.Errorf("Events() = %d, want 0", got)
	}
	if got := g.Parents(); len(got) != 0 {
		t.Errorf("Parents() = %v, want empty", got)
	}
}
