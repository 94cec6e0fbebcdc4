package interval

// OverlappingState is the relative position of two intervals: one of the
// 13 Allen relations between nonempty intervals, or one of three states
// involving ∅.
type OverlappingState uint8

const (
	BothEmpty OverlappingState = iota
	FirstEmpty
	SecondEmpty
	// Before is b < c:
	//  a    b
	//  ●----●
	//         ●----●
	//         c    d
	Before
	// Meets is a < b = c < d.
	Meets
	// Overlaps is a < c < b < d.
	Overlaps
	// Starts is a = c < b < d.
	Starts
	// ContainedBy is c < a ≤ b < d.
	ContainedBy
	// Finishes is c < a ≤ b = d.
	Finishes
	// Equal is a = c ∧ b = d.
	Equal
	// FinishedBy is a < c ≤ d = b.
	FinishedBy
	// Contains is a < c ≤ d < b.
	Contains
	// StartedBy is a = c ≤ d < b.
	StartedBy
	// OverlappedBy is c < a < d < b.
	OverlappedBy
	// MetBy is c < d = a < b.
	MetBy
	// After is d < a.
	After
)

var stateNames = [...]string{
	BothEmpty:    "BothEmpty",
	FirstEmpty:   "FirstEmpty",
	SecondEmpty:  "SecondEmpty",
	Before:       "Before",
	Meets:        "Meets",
	Overlaps:     "Overlaps",
	Starts:       "Starts",
	ContainedBy:  "ContainedBy",
	Finishes:     "Finishes",
	Equal:        "Equal",
	FinishedBy:   "FinishedBy",
	Contains:     "Contains",
	StartedBy:    "StartedBy",
	OverlappedBy: "OverlappedBy",
	MetBy:        "MetBy",
	After:        "After",
}

// OverlappingStates lists every state in declaration order.
func OverlappingStates() []OverlappingState {
	states := make([]OverlappingState, len(stateNames))
	for i := range stateNames {
		states[i] = OverlappingState(i)
	}
	return states
}

// Name is the uncolored name of s.
func (s OverlappingState) Name() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "?"
}

func (s OverlappingState) String() string {
	return colorize.State(s.Name())
}

// Inverse returns the state obtained by swapping the operands, so that
// x.Overlap(y).Inverse() = y.Overlap(x).
func (s OverlappingState) Inverse() OverlappingState {
	switch s {
	case BothEmpty:
		return BothEmpty
	case FirstEmpty:
		return SecondEmpty
	case SecondEmpty:
		return FirstEmpty
	case Before:
		return After
	case Meets:
		return MetBy
	case Overlaps:
		return OverlappedBy
	case Starts:
		return StartedBy
	case ContainedBy:
		return Contains
	case Finishes:
		return FinishedBy
	case Equal:
		return Equal
	case FinishedBy:
		return Finishes
	case Contains:
		return ContainedBy
	case StartedBy:
		return Starts
	case OverlappedBy:
		return Overlaps
	case MetBy:
		return Meets
	case After:
		return Before
	}
	panic(errInternal)
}

// Overlap classifies the position of x relative to y.
func (x Interval) Overlap(y Interval) OverlappingState {
	switch {
	case x.bothEmpty(y):
		return BothEmpty
	case x.IsEmpty():
		return FirstEmpty
	case y.IsEmpty():
		return SecondEmpty
	}

	a, b := x.inf, x.sup
	c, d := y.inf, y.sup

	switch {
	case b < d:
		switch {
		case a < c && b < c:
			return Before
		case a < c && b == c:
			return Meets
		case a < c:
			return Overlaps
		case a == c:
			return Starts
		default:
			return ContainedBy
		}
	case b == d:
		switch {
		case a > c:
			return Finishes
		case a == c:
			return Equal
		default:
			return FinishedBy
		}
	}

	// b > d
	switch {
	case a < c:
		return Contains
	case a == c:
		return StartedBy
	case a < d:
		return OverlappedBy
	case a == d:
		return MetBy
	}
	return After
}
