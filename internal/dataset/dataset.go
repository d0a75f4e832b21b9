// Package dataset turns an analyzed mesh into aligned feature and label
// sequences, and aggregates those sequences across meshes for training.
package dataset

import (
	"fmt"

	"github.com/tessellate-io/meshsev/internal/features"
	"github.com/tessellate-io/meshsev/internal/mesh"
	"github.com/tessellate-io/meshsev/internal/quality"
	"github.com/tessellate-io/meshsev/internal/severity"
)

// Dataset is a pair of index-aligned sequences: Features[i] and Labels[i]
// describe the same element. Element identity is not retained past this
// point; alignment is the only linkage.
type Dataset struct {
	Features []features.Vector
	Labels   []severity.Label
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Labels) }

// Append concatenates other's rows onto d, preserving order.
func (d *Dataset) Append(other Dataset) {
	d.Features = append(d.Features, other.Features...)
	d.Labels = append(d.Labels, other.Labels...)
}

// Build produces one Dataset for a fully analyzed mesh: for every element,
// in the mesh's own element order, one feature vector and one rule-derived
// severity label. Missing tag-table keys are empty sets, never errors. A
// feature-assembly failure aborts the whole build; no partial dataset is
// returned.
func Build(m *mesh.Mesh, table quality.Table, intrinsic, cadTags severity.TagTable) (Dataset, error) {
	d := Dataset{
		Features: make([]features.Vector, 0, len(m.Elements)),
		Labels:   make([]severity.Label, 0, len(m.Elements)),
	}
	for _, e := range m.Elements {
		vec, err := features.Build(e.ID, m, table, intrinsic, cadTags)
		if err != nil {
			return Dataset{}, fmt.Errorf("dataset: element %d: %w", e.ID, err)
		}
		d.Features = append(d.Features, vec)
		d.Labels = append(d.Labels, severity.Classify(intrinsic.Get(e.ID), cadTags.Get(e.ID)))
	}
	return d, nil
}
