// Package pipeline chains the per-mesh analysis stages: neighbor graph,
// intrinsic metrics and rules, CAD distances and rules, then dataset
// construction. Training and evaluation share this path, which is what
// makes rule-derived labels valid ground truth for scoring the model.
package pipeline

import (
	"fmt"

	"github.com/tessellate-io/meshsev/internal/cad"
	"github.com/tessellate-io/meshsev/internal/dataset"
	"github.com/tessellate-io/meshsev/internal/mesh"
	"github.com/tessellate-io/meshsev/internal/quality"
)

// Analyze runs the full analysis chain for one mesh against a shared,
// read-only CAD reference and returns its dataset. The mesh gains its
// neighbor annotation as a side effect; nothing else is mutated.
func Analyze(m, cadMesh *mesh.Mesh) (dataset.Dataset, error) {
	m.AttachNeighbors()

	metrics := quality.ComputeMetrics(m)
	intrinsic := quality.DetectDefects(m, metrics, m.Neighbors)

	distances := cad.ComputeDistances(m, cadMesh)
	cadTags := cad.DetectDefects(m, distances)

	ds, err := dataset.Build(m, metrics, intrinsic, cadTags)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("analyze mesh: %w", err)
	}
	return ds, nil
}
