package interval

import "math"

// Contains checks whether the real number v is a member of x.
// It is false for ±∞ and NaN, which are never members of an interval.
func (x Interval) Contains(v float64) bool {
	if x.IsEmpty() || math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}
	return x.inf <= v && v <= x.sup
}

// Disjoint checks whether x ∩ y = ∅.
//
//	|    | ∅ | Y   |
//	|:--:|:-:|:---:|
//	| ∅  | T | T   |
//	| X  | T | ... |
func (x Interval) Disjoint(y Interval) bool {
	if x.eitherEmpty(y) {
		return true
	}
	return x.sup < y.inf || y.sup < x.inf
}

// Interior checks whether x is contained in the interior of y, where an
// infinite bound of x is considered interior to the same infinite bound of y.
//
//	|    | ∅ | Y   |
//	|:--:|:-:|:---:|
//	| ∅  | T | T   |
//	| X  | F | ... |
func (x Interval) Interior(y Interval) bool {
	switch {
	case x.IsEmpty():
		return true
	case y.IsEmpty():
		return false
	}

	l := x.sup < y.sup || x.sup == math.Inf(1) && y.sup == math.Inf(1)
	r := y.inf < x.inf || y.inf == math.Inf(-1) && x.inf == math.Inf(-1)
	return l && r
}

// Less checks whether x is weakly less than y: a ≤ c and b ≤ d.
//
//	|    | ∅ | Y   |
//	|:--:|:-:|:---:|
//	| ∅  | T | F   |
//	| X  | F | ... |
func (x Interval) Less(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return x.bothEmpty(y)
	}
	return x.sup <= y.sup && x.inf <= y.inf
}

// Precedes checks whether x lies to the left of y, possibly touching it: b ≤ c.
//
//	|    | ∅ | Y   |
//	|:--:|:-:|:---:|
//	| ∅  | T | T   |
//	| X  | T | ... |
func (x Interval) Precedes(y Interval) bool {
	if x.eitherEmpty(y) {
		return true
	}
	return x.sup <= y.inf
}

// StrictLess checks whether x is strictly less than y, treating matching
// infinite bounds as strictly ordered.
//
//	|    | ∅ | Y   |
//	|:--:|:-:|:---:|
//	| ∅  | T | F   |
//	| X  | F | ... |
func (x Interval) StrictLess(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return x.bothEmpty(y)
	}

	l := x.sup < y.sup || x.sup == math.Inf(1) && y.sup == math.Inf(1)
	r := x.inf < y.inf || x.inf == math.Inf(-1) && y.inf == math.Inf(-1)
	return l && r
}

// StrictPrecedes checks whether x lies strictly to the left of y: b < c.
//
//	|    | ∅ | Y   |
//	|:--:|:-:|:---:|
//	| ∅  | T | T   |
//	| X  | T | ... |
func (x Interval) StrictPrecedes(y Interval) bool {
	if x.eitherEmpty(y) {
		return true
	}
	return x.sup < y.inf
}

// Subset checks whether x ⊆ y.
//
//	|    | ∅ | Y   |
//	|:--:|:-:|:---:|
//	| ∅  | T | T   |
//	| X  | F | ... |
func (x Interval) Subset(y Interval) bool {
	switch {
	case x.IsEmpty():
		return true
	case y.IsEmpty():
		return false
	}
	return y.inf <= x.inf && x.sup <= y.sup
}
