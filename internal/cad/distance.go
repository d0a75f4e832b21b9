// Package cad measures how far a candidate mesh strays from its vehicle's
// reference CAD surface and applies the deviation rule that tags offending
// elements.
package cad

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/tessellate-io/meshsev/internal/mesh"
)

// DistanceTable maps each element to the distance from its centroid to the
// nearest CAD node.
type DistanceTable map[mesh.ElementID]float64

// ComputeDistances measures every element of m against the CAD node cloud.
// The CAD mesh is read-only here and may be shared across many candidate
// meshes within one run.
func ComputeDistances(m, cadMesh *mesh.Mesh) DistanceTable {
	table := make(DistanceTable, len(m.Elements))
	if len(cadMesh.Nodes) == 0 {
		for _, e := range m.Elements {
			table[e.ID] = math.Inf(1)
		}
		return table
	}

	pts := make(kdtree.Points, 0, len(cadMesh.Nodes))
	for _, p := range cadMesh.Nodes {
		pts = append(pts, kdtree.Point{p[0], p[1], p[2]})
	}
	tree := kdtree.New(pts, false)

	for _, e := range m.Elements {
		c := m.Centroid(e)
		_, d := tree.Nearest(kdtree.Point{c[0], c[1], c[2]})
		// Nearest reports the squared Euclidean distance.
		table[e.ID] = math.Sqrt(d)
	}
	return table
}
