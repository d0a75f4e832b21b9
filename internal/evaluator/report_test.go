package evaluator

import (
	"math"
	"strings"
	"testing"

	"github.com/tessellate-io/meshsev/internal/severity"
)

func TestScorePerfect(t *testing.T) {
	truth := []int{0, 1, 2, 0, 1, 2}
	r := Score(truth, truth)

	if r.Accuracy != 1 {
		t.Fatalf("accuracy = %v, want 1", r.Accuracy)
	}
	for _, label := range severity.Labels() {
		m := r.Classes[label]
		if m.Precision != 1 || m.Recall != 1 || m.F1 != 1 || m.Support != 2 {
			t.Errorf("%s: %+v, want perfect scores with support 2", label, m)
		}
	}
}

func TestScoreMixed(t *testing.T) {
	truth := []int{0, 0, 0, 2, 2, 1}
	pred := []int{0, 0, 2, 2, 0, 1}
	r := Score(truth, pred)

	if math.Abs(r.Accuracy-4.0/6.0) > 1e-12 {
		t.Fatalf("accuracy = %v, want 4/6", r.Accuracy)
	}

	low := r.Classes[severity.Low]
	if math.Abs(low.Precision-2.0/3.0) > 1e-12 {
		t.Errorf("LOW precision = %v, want 2/3", low.Precision)
	}
	if math.Abs(low.Recall-2.0/3.0) > 1e-12 {
		t.Errorf("LOW recall = %v, want 2/3", low.Recall)
	}

	high := r.Classes[severity.High]
	if math.Abs(high.Precision-0.5) > 1e-12 || math.Abs(high.Recall-0.5) > 1e-12 {
		t.Errorf("HIGH precision/recall = %v/%v, want 0.5/0.5", high.Precision, high.Recall)
	}
}

func TestScoreAbsentClass(t *testing.T) {
	// No MEDIUM anywhere: its metrics are zero, not NaN.
	truth := []int{0, 0, 2}
	pred := []int{0, 2, 2}
	r := Score(truth, pred)

	m := r.Classes[severity.Medium]
	if m.Precision != 0 || m.Recall != 0 || m.F1 != 0 || m.Support != 0 {
		t.Errorf("MEDIUM metrics = %+v, want zeros", m)
	}
	if math.IsNaN(m.F1) {
		t.Error("F1 must not be NaN")
	}
}

func TestScoreEmpty(t *testing.T) {
	r := Score(nil, nil)
	if r.Accuracy != 0 || r.Total != 0 {
		t.Errorf("empty score = %+v, want zeros", r)
	}
}

func TestFormatMentionsAllClasses(t *testing.T) {
	r := Score([]int{0, 1, 2}, []int{0, 1, 2})
	out := r.Format()

	for _, want := range []string{"Accuracy: 1.0000", "LOW", "MEDIUM", "HIGH", "precision", "recall", "f1", "support"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
