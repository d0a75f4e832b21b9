// Package mesh holds the finite-element mesh entity shared by every analysis
// stage: node coordinates, element connectivity, and the element-adjacency
// annotation computed once per loaded instance.
package mesh

// NodeID identifies one node within a mesh.
type NodeID int64

// ElementID identifies one element within a mesh. IDs are stable within a
// mesh but not unique across meshes.
type ElementID int64

// Vec3 is a point in model space.
type Vec3 [3]float64

// Element is one mesh cell: its ID and the nodes it connects, in file order.
type Element struct {
	ID    ElementID
	Nodes []NodeID
}

// NeighborMap records, per element, the elements sharing an edge with it.
// Neighbor lists are sorted by ID.
type NeighborMap map[ElementID][]ElementID

// Mesh is an ordered collection of nodes and elements. Elements preserves
// the source table's row order, which is the iteration order for dataset
// construction and must stay stable across runs. A Mesh is immutable after
// loading except for the Neighbors annotation, attached exactly once before
// any metric or rule computation.
type Mesh struct {
	Nodes    map[NodeID]Vec3
	Elements []Element

	// Neighbors is nil until AttachNeighbors has run.
	Neighbors NeighborMap

	byID map[ElementID]int
}

// New builds a Mesh over the given tables and indexes its elements.
func New(nodes map[NodeID]Vec3, elements []Element) *Mesh {
	m := &Mesh{Nodes: nodes, Elements: elements}
	m.reindex()
	return m
}

func (m *Mesh) reindex() {
	m.byID = make(map[ElementID]int, len(m.Elements))
	for i, e := range m.Elements {
		m.byID[e.ID] = i
	}
}

// AttachNeighbors computes and attaches the element-adjacency annotation.
// Repeated calls are no-ops; the first computation wins.
func (m *Mesh) AttachNeighbors() {
	if m.Neighbors == nil {
		m.Neighbors = BuildNeighbors(m)
	}
}

// Element returns the element with the given ID, or false when absent.
func (m *Mesh) Element(id ElementID) (Element, bool) {
	if m.byID == nil {
		m.reindex()
	}
	i, ok := m.byID[id]
	if !ok {
		return Element{}, false
	}
	return m.Elements[i], true
}

// Centroid returns the arithmetic mean of an element's node coordinates.
// Nodes missing from the table contribute nothing; a fully dangling element
// yields the origin.
func (m *Mesh) Centroid(e Element) Vec3 {
	var c Vec3
	n := 0
	for _, nid := range e.Nodes {
		p, ok := m.Nodes[nid]
		if !ok {
			continue
		}
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
		n++
	}
	if n == 0 {
		return Vec3{}
	}
	inv := 1 / float64(n)
	return Vec3{c[0] * inv, c[1] * inv, c[2] * inv}
}
