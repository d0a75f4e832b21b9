package features

import (
	"testing"

	"github.com/tessellate-io/meshsev/internal/mesh/testmesh"
	"github.com/tessellate-io/meshsev/internal/quality"
	"github.com/tessellate-io/meshsev/internal/severity"
)

func TestBuildLengthAndDeterminism(t *testing.T) {
	m := testmesh.Grid(3, 3, 1)
	m.AttachNeighbors()
	table := quality.ComputeMetrics(m)
	intrinsic := make(severity.TagTable)
	cadTags := make(severity.TagTable)

	eid := m.Elements[0].ID
	v1, err := Build(eid, m, table, intrinsic, cadTags)
	if err != nil {
		t.Fatal(err)
	}
	if len(v1) != Length {
		t.Fatalf("vector length = %d, want %d", len(v1), Length)
	}

	v2, err := Build(eid, m, table, intrinsic, cadTags)
	if err != nil {
		t.Fatal(err)
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("field %d differs across identical builds: %v vs %v", i, v1[i], v2[i])
		}
	}
}

func TestBuildTagFields(t *testing.T) {
	m := testmesh.Grid(3, 3, 1)
	m.AttachNeighbors()
	table := quality.ComputeMetrics(m)

	eid := m.Elements[0].ID
	intrinsic := make(severity.TagTable)
	intrinsic.Tag(eid, severity.BadAspectRatio)
	intrinsic.Tag(eid, severity.BadTransition)
	cadTags := make(severity.TagTable)
	cadTags.Tag(eid, severity.CadDeviationHigh)

	v, err := Build(eid, m, table, intrinsic, cadTags)
	if err != nil {
		t.Fatal(err)
	}
	if v[5] != 2 {
		t.Errorf("intrinsic tag count = %v, want 2", v[5])
	}
	if v[6] != 1 {
		t.Errorf("cad tag count = %v, want 1", v[6])
	}
	if v[7] != 1 {
		t.Errorf("any-tag flag = %v, want 1", v[7])
	}

	// An untagged element zeroes the tag fields.
	other := m.Elements[1].ID
	v, err = Build(other, m, table, intrinsic, cadTags)
	if err != nil {
		t.Fatal(err)
	}
	if v[5] != 0 || v[6] != 0 || v[7] != 0 {
		t.Errorf("untagged element tag fields = %v %v %v, want zeros", v[5], v[6], v[7])
	}
}

func TestBuildUnknownElement(t *testing.T) {
	m := testmesh.Grid(2, 2, 1)
	m.AttachNeighbors()
	table := quality.ComputeMetrics(m)

	if _, err := Build(9999, m, table, nil, nil); err == nil {
		t.Fatal("want error for unknown element")
	}
}
