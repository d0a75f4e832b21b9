// Package testmesh builds small synthetic meshes and writes them as CSV
// fixtures for orchestrator and loader tests.
package testmesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tessellate-io/meshsev/internal/mesh"
)

// Grid builds a planar triangulated nx-by-ny quad grid (so 2*(nx-1)*(ny-1)
// triangles) with the given node spacing, lying in the z=0 plane. All
// triangles are right isoceles: aspect ratio sqrt(2), well under every rule
// threshold.
func Grid(nx, ny int, spacing float64) *mesh.Mesh {
	nodes := make(map[mesh.NodeID]mesh.Vec3, nx*ny)
	nid := func(i, j int) mesh.NodeID { return mesh.NodeID(j*nx + i + 1) }
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			nodes[nid(i, j)] = mesh.Vec3{float64(i) * spacing, float64(j) * spacing, 0}
		}
	}

	var elements []mesh.Element
	eid := mesh.ElementID(1)
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			elements = append(elements,
				mesh.Element{ID: eid, Nodes: []mesh.NodeID{nid(i, j), nid(i+1, j), nid(i, j+1)}},
				mesh.Element{ID: eid + 1, Nodes: []mesh.NodeID{nid(i+1, j), nid(i+1, j+1), nid(i, j+1)}},
			)
			eid += 2
		}
	}
	return mesh.New(nodes, elements)
}

// AddSliver returns a copy of m with one badly stretched triangle appended:
// aspect ratio well beyond the intrinsic rule threshold. Also returns the
// new element's ID.
func AddSliver(m *mesh.Mesh) (*mesh.Mesh, mesh.ElementID) {
	nodes := make(map[mesh.NodeID]mesh.Vec3, len(m.Nodes)+3)
	for id, p := range m.Nodes {
		nodes[id] = p
	}
	base := maxNodeID(m)
	a, b, c := base+1, base+2, base+3
	nodes[a] = mesh.Vec3{100, 100, 0}
	nodes[b] = mesh.Vec3{110, 100, 0}
	nodes[c] = mesh.Vec3{100, 100.5, 0}

	eid := maxElementID(m) + 1
	elements := make([]mesh.Element, len(m.Elements), len(m.Elements)+1)
	copy(elements, m.Elements)
	elements = append(elements, mesh.Element{ID: eid, Nodes: []mesh.NodeID{a, b, c}})
	return mesh.New(nodes, elements), eid
}

// Offset returns a copy of m translated by dz along z. Against a z=0 CAD
// reference this pushes every element's deviation to about dz.
func Offset(m *mesh.Mesh, dz float64) *mesh.Mesh {
	nodes := make(map[mesh.NodeID]mesh.Vec3, len(m.Nodes))
	for id, p := range m.Nodes {
		nodes[id] = mesh.Vec3{p[0], p[1], p[2] + dz}
	}
	elements := make([]mesh.Element, len(m.Elements))
	copy(elements, m.Elements)
	return mesh.New(nodes, elements)
}

// WriteCSV writes m as <prefix>_NODE.csv and <prefix>_ELEMENT.csv in dir.
func WriteCSV(dir, prefix string, m *mesh.Mesh) error {
	var nodeRows strings.Builder
	// Rows in ascending node ID order, for stable fixtures.
	for id := mesh.NodeID(1); id <= maxNodeID(m); id++ {
		p, ok := m.Nodes[id]
		if !ok {
			continue
		}
		fmt.Fprintf(&nodeRows, "%d,%g,%g,%g\n", id, p[0], p[1], p[2])
	}

	var elemRows strings.Builder
	for _, e := range m.Elements {
		fmt.Fprintf(&elemRows, "%d", e.ID)
		for _, n := range e.Nodes {
			fmt.Fprintf(&elemRows, ",%d", n)
		}
		elemRows.WriteByte('\n')
	}

	nodeFile := filepath.Join(dir, prefix+"_NODE.csv")
	if err := os.WriteFile(nodeFile, []byte(nodeRows.String()), 0o644); err != nil {
		return err
	}
	elemFile := filepath.Join(dir, prefix+"_ELEMENT.csv")
	return os.WriteFile(elemFile, []byte(elemRows.String()), 0o644)
}

func maxNodeID(m *mesh.Mesh) mesh.NodeID {
	var max mesh.NodeID
	for id := range m.Nodes {
		if id > max {
			max = id
		}
	}
	return max
}

func maxElementID(m *mesh.Mesh) mesh.ElementID {
	var max mesh.ElementID
	for _, e := range m.Elements {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}
