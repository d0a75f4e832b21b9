package quality

import (
	"github.com/tessellate-io/meshsev/internal/mesh"
	"github.com/tessellate-io/meshsev/internal/severity"
)

// Rule thresholds. Elements at or below a threshold are acceptable.
const (
	MaxAspectRatio     = 5.0
	MaxSkewness        = 0.7
	MaxTransitionRatio = 4.0
)

// DetectDefects applies the intrinsic rule thresholds to every element and
// returns the resulting tag table. Elements without findings get no entry.
// BAD_TRANSITION compares an element's area against each neighbor's: a size
// jump beyond MaxTransitionRatio in either direction flags both a poor mesh
// gradation.
func DetectDefects(m *mesh.Mesh, table Table, neighbors mesh.NeighborMap) severity.TagTable {
	tags := make(severity.TagTable)
	for _, e := range m.Elements {
		met := table[e.ID]
		if met.AspectRatio > MaxAspectRatio {
			tags.Tag(e.ID, severity.BadAspectRatio)
		}
		if met.Skewness > MaxSkewness {
			tags.Tag(e.ID, severity.HighSkewness)
		}
		if badTransition(e.ID, met, table, neighbors) {
			tags.Tag(e.ID, severity.BadTransition)
		}
	}
	return tags
}

func badTransition(eid mesh.ElementID, met Metrics, table Table, neighbors mesh.NeighborMap) bool {
	if met.Area == 0 {
		return false // degenerate, already caught by the shape rules
	}
	for _, nid := range neighbors[eid] {
		other := table[nid].Area
		if other == 0 {
			continue
		}
		ratio := met.Area / other
		if ratio < 1 {
			ratio = 1 / ratio
		}
		if ratio > MaxTransitionRatio {
			return true
		}
	}
	return false
}
