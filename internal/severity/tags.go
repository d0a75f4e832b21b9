package severity

import "github.com/tessellate-io/meshsev/internal/mesh"

// Tag names one detected quality problem on an element.
type Tag string

// Known defect tags. Intrinsic rules produce the first three; CAD deviation
// rules produce the last. Tags outside this set pass through tag tables
// untouched and are ignored by the labeling policy.
const (
	BadAspectRatio   Tag = "BAD_ASPECT_RATIO"
	HighSkewness     Tag = "HIGH_SKEWNESS"
	BadTransition    Tag = "BAD_TRANSITION"
	CadDeviationHigh Tag = "CAD_DEVIATION_HIGH"
)

// TagSet is the set of defect tags attached to a single element.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether the set contains tag. Works on a nil set.
func (s TagSet) Has(tag Tag) bool {
	_, ok := s[tag]
	return ok
}

// Add inserts tag into the set.
func (s TagSet) Add(tag Tag) {
	s[tag] = struct{}{}
}

// TagTable maps each flagged element to its defect tags. Elements with no
// findings have no entry.
type TagTable map[mesh.ElementID]TagSet

// Get returns the tag set for eid. A missing key yields an empty set, never
// an error: absence of findings is a valid state.
func (t TagTable) Get(eid mesh.ElementID) TagSet {
	if s, ok := t[eid]; ok {
		return s
	}
	return nil
}

// Tag attaches tag to eid, allocating the element's set on first use.
func (t TagTable) Tag(eid mesh.ElementID, tag Tag) {
	s, ok := t[eid]
	if !ok {
		s = make(TagSet)
		t[eid] = s
	}
	s.Add(tag)
}
