package interval

import "math"

// ConvexHull computes the least interval containing both x and y.
// If either operand is empty, the other is returned unchanged.
func (x Interval) ConvexHull(y Interval) Interval {
	switch {
	case x.IsEmpty():
		return y
	case y.IsEmpty():
		return x
	}
	return withInfSup(math.Min(x.inf, y.inf), math.Max(x.sup, y.sup))
}

// Intersection computes x ∩ y.
func (x Interval) Intersection(y Interval) Interval {
	if x.eitherEmpty(y) {
		return _EMPTY
	}

	a := math.Max(x.inf, y.inf)
	b := math.Min(x.sup, y.sup)
	if a > b {
		return _EMPTY
	}
	return withInfSup(a, b)
}

// Hull computes the convex hull of all of xs. It is ∅ for no arguments.
func Hull(xs ...Interval) Interval {
	h := _EMPTY
	for _, x := range xs {
		h = h.ConvexHull(x)
	}
	return h
}
