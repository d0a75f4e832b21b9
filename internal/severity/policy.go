package severity

// rule pairs a predicate over an element's two tag sets with the label
// assigned when the predicate fires.
type rule struct {
	match func(intrinsic, cad TagSet) bool
	label Label
}

// policy is evaluated top to bottom, first match wins. The ordering encodes
// that geometric distortion and CAD deviation dominate transition-quality
// issues; it is the ground truth the classifier learns to approximate and
// must not be reordered.
var policy = []rule{
	{
		match: func(intrinsic, cad TagSet) bool {
			return intrinsic.Has(BadAspectRatio) ||
				intrinsic.Has(HighSkewness) ||
				cad.Has(CadDeviationHigh)
		},
		label: High,
	},
	{
		match: func(intrinsic, cad TagSet) bool {
			return intrinsic.Has(BadTransition)
		},
		label: Medium,
	},
	{
		match: func(intrinsic, cad TagSet) bool { return true },
		label: Low,
	},
}

// Classify maps an element's intrinsic and CAD defect tags to its severity
// label. Pure and total: any input, including nil sets, yields exactly one
// label. Tags outside the known vocabulary are ignored.
func Classify(intrinsic, cad TagSet) Label {
	for _, r := range policy {
		if r.match(intrinsic, cad) {
			return r.label
		}
	}
	return Low // unreachable, the last rule is a catch-all
}
