package cad

import (
	"github.com/tessellate-io/meshsev/internal/mesh"
	"github.com/tessellate-io/meshsev/internal/severity"
)

// MaxDeviation is the centroid-to-CAD distance, in model units, beyond
// which an element is tagged CAD_DEVIATION_HIGH.
const MaxDeviation = 2.0

// DetectDefects tags every element whose CAD deviation exceeds MaxDeviation.
// Elements within tolerance get no entry.
func DetectDefects(m *mesh.Mesh, distances DistanceTable) severity.TagTable {
	tags := make(severity.TagTable)
	for _, e := range m.Elements {
		if distances[e.ID] > MaxDeviation {
			tags.Tag(e.ID, severity.CadDeviationHigh)
		}
	}
	return tags
}
