package interval

import "math"

func (x Interval) roundWith(f func(float64) float64) Interval {
	if x.IsEmpty() {
		return _EMPTY
	}
	return withInfSup(f(x.inf), f(x.sup))
}

// Ceil rounds each bound of x toward +∞.
//
//	[0.2, 1.2].Ceil() = [1, 2]
func (x Interval) Ceil() Interval {
	return x.roundWith(math.Ceil)
}

// Floor rounds each bound of x toward -∞.
//
//	[-1.8, -0.8].Floor() = [-2, -1]
func (x Interval) Floor() Interval {
	return x.roundWith(math.Floor)
}

// Round rounds each bound of x to the nearest integer, with ties
// rounded away from zero.
//
//	[-1.5, 0.5].Round() = [-2, 1]
func (x Interval) Round() Interval {
	return x.roundWith(math.Round)
}

// RoundTiesToEven rounds each bound of x to the nearest integer, with ties
// rounded to the even integer.
//
//	[-1.5, 0.5].RoundTiesToEven() = [-2, 0]
func (x Interval) RoundTiesToEven() Interval {
	return x.roundWith(math.RoundToEven)
}

// Trunc rounds each bound of x toward zero.
//
//	[-1.8, 1.8].Trunc() = [-1, 1]
func (x Interval) Trunc() Interval {
	return x.roundWith(math.Trunc)
}

// Sign computes the image of x under the sign function, which maps
// negative numbers to -1, zero to 0 and positive numbers to 1.
func (x Interval) Sign() Interval {
	switch x.Classify() {
	case ClassE:
		return _EMPTY
	case ClassM:
		return withInfSup(-1, 1)
	case ClassN0:
		return withInfSup(-1, 0)
	case ClassN1:
		return withInfSup(-1, -1)
	case ClassP0:
		return withInfSup(0, 1)
	case ClassP1:
		return withInfSup(1, 1)
	case ClassZ:
		return zero()
	}
	panic(errInternal)
}
