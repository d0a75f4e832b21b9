package evaluator

import (
	"fmt"
	"strings"

	"github.com/tessellate-io/meshsev/internal/severity"
)

// ClassMetrics holds one severity class's scores.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarizes prediction quality over one evaluation dataset.
type Report struct {
	Accuracy float64
	Classes  map[severity.Label]ClassMetrics
	Total    int
}

// Score compares predictions against rule-derived ground truth, row for
// row, and computes accuracy plus a per-class breakdown over all three
// severity classes. Classes absent from both truth and prediction score
// zero rather than NaN.
func Score(truth, predicted []int) Report {
	r := Report{Classes: make(map[severity.Label]ClassMetrics), Total: len(truth)}

	correct := 0
	for i := range truth {
		if truth[i] == predicted[i] {
			correct++
		}
	}
	if len(truth) > 0 {
		r.Accuracy = float64(correct) / float64(len(truth))
	}

	for _, label := range severity.Labels() {
		c := int(label)
		var tp, fp, fn int
		for i := range truth {
			switch {
			case truth[i] == c && predicted[i] == c:
				tp++
			case truth[i] != c && predicted[i] == c:
				fp++
			case truth[i] == c && predicted[i] != c:
				fn++
			}
		}
		m := ClassMetrics{Support: tp + fn}
		if tp+fp > 0 {
			m.Precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			m.Recall = float64(tp) / float64(tp+fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		r.Classes[label] = m
	}
	return r
}

// Format renders the report as a plain-text table.
func (r Report) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Accuracy: %.4f (%d samples)\n\n", r.Accuracy, r.Total)
	fmt.Fprintf(&b, "%-8s %10s %10s %10s %10s\n", "class", "precision", "recall", "f1", "support")
	for _, label := range severity.Labels() {
		m := r.Classes[label]
		fmt.Fprintf(&b, "%-8s %10.4f %10.4f %10.4f %10d\n",
			label, m.Precision, m.Recall, m.F1, m.Support)
	}
	return b.String()
}
