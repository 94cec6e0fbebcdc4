package interval

import "math"

// Mid returns the midpoint of x.
//
//	| x          | Mid                 |
//	|:----------:|:-------------------:|
//	| ∅          | NaN                 |
//	| [-∞, +∞]   | 0                   |
//	| [-∞, b]    | -math.MaxFloat64    |
//	| [a, +∞]    | +math.MaxFloat64    |
//	| [a, b]     | (a + b) / 2         |
func (x Interval) Mid() float64 {
	a, b := x.inf, x.sup
	switch {
	case x.IsEmpty():
		return math.NaN()
	case x.IsEntire():
		return 0
	case a == math.Inf(-1):
		return -math.MaxFloat64
	case b == math.Inf(1):
		return math.MaxFloat64
	}

	m := 0.5 * (a + b)
	if math.IsInf(m, 0) {
		// a + b overflowed.
		m = 0.5*a + 0.5*b
	}
	return m
}

// Rad returns the radius of x, the largest distance between Mid and a bound.
// It is NaN for ∅ and +∞ for unbounded intervals.
func (x Interval) Rad() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	m := x.Mid()
	return math.Max(m-x.inf, x.sup-m)
}

// Wid returns b - a. It is NaN for ∅ and +∞ for unbounded intervals.
func (x Interval) Wid() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	return x.sup - x.inf
}

// Mag returns the magnitude of x, the largest absolute value of its members.
func (x Interval) Mag() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	return math.Max(math.Abs(x.inf), math.Abs(x.sup))
}

// Mig returns the mignitude of x, the least absolute value of its members.
func (x Interval) Mig() float64 {
	switch x.Classify() {
	case ClassE:
		return math.NaN()
	case ClassM, ClassN0, ClassP0, ClassZ:
		return 0
	case ClassN1:
		return -x.sup
	case ClassP1:
		return x.inf
	}
	panic(errInternal)
}
