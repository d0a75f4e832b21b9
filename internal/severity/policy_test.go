package severity

import "testing"

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		intrinsic TagSet
		cad       TagSet
		want      Label
	}{
		{"no tags", nil, nil, Low},
		{"empty sets", NewTagSet(), NewTagSet(), Low},
		{"bad aspect ratio", NewTagSet(BadAspectRatio), nil, High},
		{"high skewness", NewTagSet(HighSkewness), nil, High},
		{"cad deviation", nil, NewTagSet(CadDeviationHigh), High},
		{"bad transition", NewTagSet(BadTransition), nil, Medium},
		{"high wins over medium", NewTagSet(HighSkewness, BadTransition), nil, High},
		{"cad high wins over transition", NewTagSet(BadTransition), NewTagSet(CadDeviationHigh), High},
		{"all tags at once", NewTagSet(BadAspectRatio, HighSkewness, BadTransition), NewTagSet(CadDeviationHigh), High},
		{"unknown tag alone is low", NewTagSet(Tag("FUTURE_TAG")), nil, Low},
		{"unknown tag does not mask transition", NewTagSet(BadTransition, Tag("FUTURE_TAG")), nil, Medium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.intrinsic, tt.cad); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagTableGetMissingKey(t *testing.T) {
	table := make(TagTable)
	s := table.Get(42)
	if s.Has(BadTransition) {
		t.Error("empty set should contain nothing")
	}
	// Classifying with the missing-key result must not panic.
	if got := Classify(s, table.Get(7)); got != Low {
		t.Errorf("Classify(empty, empty) = %v, want LOW", got)
	}
}

func TestTagTableTag(t *testing.T) {
	table := make(TagTable)
	table.Tag(1, BadAspectRatio)
	table.Tag(1, BadTransition)
	if !table.Get(1).Has(BadAspectRatio) || !table.Get(1).Has(BadTransition) {
		t.Errorf("expected both tags on element 1, got %v", table.Get(1))
	}
	if len(table) != 1 {
		t.Errorf("expected one entry, got %d", len(table))
	}
}

func TestLabelString(t *testing.T) {
	for label, want := range map[Label]string{Low: "LOW", Medium: "MEDIUM", High: "HIGH"} {
		if got := label.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(label), got, want)
		}
	}
}
