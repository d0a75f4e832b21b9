// Package features assembles the fixed-length numeric vector that summarizes
// one element's quality signals for the classifier. Vector length and field
// order are a contract shared between training and evaluation; changing
// either invalidates every persisted model.
package features

import (
	"fmt"

	"github.com/tessellate-io/meshsev/internal/mesh"
	"github.com/tessellate-io/meshsev/internal/quality"
	"github.com/tessellate-io/meshsev/internal/severity"
)

// Vector is one element's feature row.
type Vector = []float32

// Length is the fixed vector length. Field order:
// aspect ratio, skewness, min corner angle (deg), area,
// neighbor count, intrinsic tag count, CAD tag count, any-tag flag.
const Length = 8

// Build assembles the feature vector for one element. Deterministic given
// identical inputs. Fails only when eid is not an element of m.
func Build(eid mesh.ElementID, m *mesh.Mesh, table quality.Table, intrinsic, cadTags severity.TagTable) (Vector, error) {
	if _, ok := m.Element(eid); !ok {
		return nil, fmt.Errorf("build features: element %d not in mesh", eid)
	}

	met := table[eid]
	iTags := intrinsic.Get(eid)
	cTags := cadTags.Get(eid)

	anyTag := float32(0)
	if len(iTags)+len(cTags) > 0 {
		anyTag = 1
	}

	return Vector{
		float32(met.AspectRatio),
		float32(met.Skewness),
		float32(met.MinAngleDeg),
		float32(met.Area),
		float32(len(m.Neighbors[eid])),
		float32(len(iTags)),
		float32(len(cTags)),
		anyTag,
	}, nil
}
