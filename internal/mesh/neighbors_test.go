package mesh

import "testing"

func quadPatch() *Mesh {
	// Two triangles sharing edge 2-3, plus one triangle touching only node 4.
	nodes := map[NodeID]Vec3{
		1: {0, 0, 0},
		2: {1, 0, 0},
		3: {0, 1, 0},
		4: {1, 1, 0},
		5: {2, 1, 0},
		6: {2, 2, 0},
	}
	elements := []Element{
		{ID: 10, Nodes: []NodeID{1, 2, 3}},
		{ID: 11, Nodes: []NodeID{2, 4, 3}},
		{ID: 12, Nodes: []NodeID{4, 5, 6}},
	}
	return New(nodes, elements)
}

func TestBuildNeighborsSharedEdge(t *testing.T) {
	m := quadPatch()
	n := BuildNeighbors(m)

	if got := n[10]; len(got) != 1 || got[0] != 11 {
		t.Fatalf("neighbors of 10 = %v, want [11]", got)
	}
	if got := n[11]; len(got) != 1 || got[0] != 10 {
		t.Fatalf("neighbors of 11 = %v, want [10]", got)
	}
}

func TestBuildNeighborsSingleSharedNodeIsNotNeighbor(t *testing.T) {
	m := quadPatch()
	n := BuildNeighbors(m)

	// Element 12 shares only node 4 with element 11.
	if got := n[12]; len(got) != 0 {
		t.Fatalf("neighbors of 12 = %v, want none", got)
	}
}

func TestBuildNeighborsSorted(t *testing.T) {
	// A strip of four triangles; the middle ones have two neighbors each.
	nodes := map[NodeID]Vec3{
		1: {0, 0, 0}, 2: {1, 0, 0}, 3: {0, 1, 0},
		4: {1, 1, 0}, 5: {2, 0, 0}, 6: {2, 1, 0},
	}
	elements := []Element{
		{ID: 3, Nodes: []NodeID{2, 4, 3}},
		{ID: 1, Nodes: []NodeID{1, 2, 3}},
		{ID: 2, Nodes: []NodeID{2, 5, 4}},
		{ID: 4, Nodes: []NodeID{5, 6, 4}},
	}
	n := BuildNeighbors(New(nodes, elements))

	got := n[3]
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("neighbors of 3 = %v, want sorted [1 2]", got)
	}
}

func TestAttachNeighborsOnce(t *testing.T) {
	m := quadPatch()
	m.AttachNeighbors()
	m.Neighbors[99] = []ElementID{1}
	m.AttachNeighbors()
	if _, ok := m.Neighbors[99]; !ok {
		t.Fatal("AttachNeighbors recomputed an already attached annotation")
	}
}
