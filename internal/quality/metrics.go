// Package quality computes intrinsic geometric quality metrics for mesh
// elements and applies the rule thresholds that turn them into defect tags.
// Intrinsic means derived from an element's own shape, independent of any
// reference CAD surface.
package quality

import (
	"math"

	"github.com/tessellate-io/meshsev/internal/mesh"
)

// Metrics holds the per-element quality measurements.
type Metrics struct {
	AspectRatio float64 // longest edge / shortest edge, >= 1 for valid shapes
	Skewness    float64 // worst corner-angle deviation from ideal, in [0,1]
	MinAngleDeg float64 // smallest corner angle, degrees
	Area        float64 // polygon area
}

// Table maps every element of one mesh to its metrics.
type Table map[mesh.ElementID]Metrics

// ComputeMetrics measures every element of m. Degenerate elements (collapsed
// edges, missing nodes) get pessimal values rather than NaN so the rule layer
// and feature builder stay total.
func ComputeMetrics(m *mesh.Mesh) Table {
	table := make(Table, len(m.Elements))
	for _, e := range m.Elements {
		table[e.ID] = measure(m, e)
	}
	return table
}

const degenerateAspect = 1e6

func measure(m *mesh.Mesh, e mesh.Element) Metrics {
	pts := corners(m, e)
	n := len(pts)
	if n < 3 {
		return Metrics{AspectRatio: degenerateAspect, Skewness: 1, MinAngleDeg: 0, Area: 0}
	}

	minEdge, maxEdge := math.Inf(1), 0.0
	for i := 0; i < n; i++ {
		d := dist(pts[i], pts[(i+1)%n])
		minEdge = math.Min(minEdge, d)
		maxEdge = math.Max(maxEdge, d)
	}
	if minEdge == 0 {
		return Metrics{AspectRatio: degenerateAspect, Skewness: 1, MinAngleDeg: 0, Area: 0}
	}

	minAngle, maxAngle := math.Inf(1), 0.0
	for i := 0; i < n; i++ {
		a := angleAt(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		minAngle = math.Min(minAngle, a)
		maxAngle = math.Max(maxAngle, a)
	}

	// Equiangular skew: worst deviation from the ideal corner angle,
	// normalized so 0 is a perfect element and 1 a fully collapsed one.
	ideal := math.Pi * float64(n-2) / float64(n)
	skew := math.Max(
		(maxAngle-ideal)/(math.Pi-ideal),
		(ideal-minAngle)/ideal,
	)
	skew = math.Max(0, math.Min(1, skew))

	return Metrics{
		AspectRatio: maxEdge / minEdge,
		Skewness:    skew,
		MinAngleDeg: minAngle * 180 / math.Pi,
		Area:        polygonArea(pts),
	}
}

func corners(m *mesh.Mesh, e mesh.Element) []mesh.Vec3 {
	pts := make([]mesh.Vec3, 0, len(e.Nodes))
	for _, nid := range e.Nodes {
		if p, ok := m.Nodes[nid]; ok {
			pts = append(pts, p)
		}
	}
	return pts
}

func dist(a, b mesh.Vec3) float64 {
	dx, dy, dz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// angleAt returns the angle at vertex b of the corner a-b-c, in radians.
func angleAt(a, b, c mesh.Vec3) float64 {
	u := mesh.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
	v := mesh.Vec3{c[0] - b[0], c[1] - b[1], c[2] - b[2]}
	nu := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
	nv := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if nu == 0 || nv == 0 {
		return 0
	}
	cos := (u[0]*v[0] + u[1]*v[1] + u[2]*v[2]) / (nu * nv)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// polygonArea sums triangle-fan cross products from the first corner.
// Exact for triangles and planar quads.
func polygonArea(pts []mesh.Vec3) float64 {
	var sum float64
	for i := 1; i < len(pts)-1; i++ {
		u := mesh.Vec3{pts[i][0] - pts[0][0], pts[i][1] - pts[0][1], pts[i][2] - pts[0][2]}
		v := mesh.Vec3{pts[i+1][0] - pts[0][0], pts[i+1][1] - pts[0][1], pts[i+1][2] - pts[0][2]}
		cx := u[1]*v[2] - u[2]*v[1]
		cy := u[2]*v[0] - u[0]*v[2]
		cz := u[0]*v[1] - u[1]*v[0]
		sum += 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
	}
	return sum
}
