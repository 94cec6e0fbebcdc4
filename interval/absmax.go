package interval

import "math"

// Abs computes the image of x under the absolute value function.
func (x Interval) Abs() Interval {
	a, b := x.inf, x.sup

	switch x.Classify() {
	case ClassE, ClassP0, ClassP1, ClassZ:
		return x
	case ClassM:
		return withInfSup(0, math.Max(-a, b))
	case ClassN0, ClassN1:
		return withInfSup(-b, -a)
	}
	panic(errInternal)
}

// Max computes [max(a, c), max(b, d)], the image of the pointwise maximum.
func (x Interval) Max(y Interval) Interval {
	if x.eitherEmpty(y) {
		return _EMPTY
	}
	return withInfSup(math.Max(x.inf, y.inf), math.Max(x.sup, y.sup))
}

// Min computes [min(a, c), min(b, d)], the image of the pointwise minimum.
func (x Interval) Min(y Interval) Interval {
	if x.eitherEmpty(y) {
		return _EMPTY
	}
	return withInfSup(math.Min(x.inf, y.inf), math.Min(x.sup, y.sup))
}
