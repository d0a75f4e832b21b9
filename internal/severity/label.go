package severity

import "fmt"

// Label is the three-level ordinal severity assigned to an element.
type Label int

const (
	Low    Label = 0
	Medium Label = 1
	High   Label = 2
)

// Labels returns all labels in ascending severity order.
func Labels() []Label {
	return []Label{Low, Medium, High}
}

func (l Label) String() string {
	switch l {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}
