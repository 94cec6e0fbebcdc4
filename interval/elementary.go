package interval

import "math"

var (
	_DOM_LOG   = MustNew(0, math.Inf(1))
	_DOM_ACOSH = MustNew(1, math.Inf(1))
	_DOM_UNIT  = MustNew(-1, 1)
	_UNIT      = _DOM_UNIT
)

// monoInc maps the bounds of x through f, which must be monotonically
// non-decreasing on the whole real line.
func (x Interval) monoInc(f func(float64) float64) Interval {
	if x.IsEmpty() {
		return _EMPTY
	}
	return withInfSup(f(x.inf), f(x.sup))
}

// log maps x ∩ [0, +∞] through f, a logarithm. The result is ∅ if the
// restricted input has no point greater than zero.
func (x Interval) log(f func(float64) float64) Interval {
	x = x.Intersection(_DOM_LOG)
	if x.IsEmpty() || x.sup <= 0 {
		return _EMPTY
	}
	return withInfSup(f(x.inf), f(x.sup))
}

// remEuclid computes the least nonnegative remainder of x modulo m.
func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		return r + m
	}
	return r
}

// remEuclid2 computes the parity of an integral x. Unlike remEuclid,
// it is 0 for ±∞.
func remEuclid2(x float64) float64 {
	if 2*math.Floor(x/2) == x {
		return 0
	}
	return 1
}

func exp10(x float64) float64 {
	return math.Pow(10, x)
}

// Acos computes the inverse cosine of x.
//
//	Domain: [-1, 1]    Range: [0, π]
func (x Interval) Acos() Interval {
	x = x.Intersection(_DOM_UNIT)
	if x.IsEmpty() {
		return _EMPTY
	}
	return withInfSup(math.Acos(x.sup), math.Acos(x.inf))
}

// Acosh computes the inverse hyperbolic cosine of x.
//
//	Domain: [1, +∞)    Range: [0, +∞)
func (x Interval) Acosh() Interval {
	x = x.Intersection(_DOM_ACOSH)
	if x.IsEmpty() {
		return _EMPTY
	}
	return withInfSup(math.Acosh(x.inf), math.Acosh(x.sup))
}

// Asin computes the inverse sine of x.
//
//	Domain: [-1, 1]    Range: [-π/2, π/2]
func (x Interval) Asin() Interval {
	x = x.Intersection(_DOM_UNIT)
	if x.IsEmpty() {
		return _EMPTY
	}
	return withInfSup(math.Asin(x.inf), math.Asin(x.sup))
}

// Asinh computes the inverse hyperbolic sine of x.
func (x Interval) Asinh() Interval {
	return x.monoInc(math.Asinh)
}

// Atan computes the inverse tangent of x.
//
//	Domain: ℝ    Range: (-π/2, π/2)
func (x Interval) Atan() Interval {
	return x.monoInc(math.Atan)
}

// Atan2 computes the angle of the points (x, y) for x ∈ rhs and y ∈ the
// receiver, measured counterclockwise from the positive x-axis.
//
//	Domain: ℝ² ∖ {(0, 0)}    Range: (-π, π]
//
// Points on the negative x-axis map to +π only, whatever the sign of a
// zero y bound.
func (y Interval) Atan2(rhs Interval) Interval {
	x := rhs
	a, b := x.inf, x.sup
	c, d := y.inf, y.sup

	switch x.Classify2(y) {
	case E_E, E_M, E_N0, E_N1, E_P0, E_P1, E_Z,
		M_E, N0_E, N1_E, P0_E, P1_E, Z_E, Z_Z:
		return _EMPTY
	case M_M, M_N0, N0_M, N0_N0:
		return withInfSup(-_PI.sup, _PI.sup)

	// First quadrant
	case P0_P0:
		return withInfSup(0, _FRAC_PI_2.sup)
	case P0_P1, P1_P0, P1_P1, P1_Z, Z_P1:
		return withInfSup(math.Atan2(c, b), math.Atan2(d, a))

	// First and second quadrants
	case M_P0, M_Z:
		return withInfSup(0, _PI.sup)
	case M_P1:
		return withInfSup(math.Atan2(c, b), math.Atan2(c, a))

	// Second quadrant
	case N0_P0:
		return withInfSup(_FRAC_PI_2.inf, _PI.sup)
	case N0_P1, N1_P1:
		return withInfSup(math.Atan2(d, b), math.Atan2(c, a))
	case N1_P0:
		return withInfSup(math.Atan2(d, b), _PI.sup)

	// Second and third quadrants
	case N1_M, N1_N0:
		return withInfSup(-_PI.sup, _PI.sup)

	// Third quadrant
	case N0_N1, N1_N1:
		return withInfSup(math.Atan2(d, a), math.Atan2(c, b))

	// Third and fourth quadrants
	case M_N1:
		return withInfSup(math.Atan2(d, a), math.Atan2(d, b))

	// Fourth quadrant
	case P0_N0:
		return withInfSup(-_FRAC_PI_2.sup, 0)
	case P0_N1, P1_N0, P1_N1, Z_N1:
		return withInfSup(math.Atan2(c, a), math.Atan2(d, b))

	// Fourth and first quadrants
	case P0_M, Z_M:
		return withInfSup(-_FRAC_PI_2.sup, _FRAC_PI_2.sup)
	case P1_M:
		return withInfSup(math.Atan2(c, a), math.Atan2(d, a))

	// x-axis. math.Atan2 returns ±π for y = ±0 and x < 0; only +π is wanted.
	case N0_Z, N1_Z:
		return _PI
	case P0_Z:
		return zero()

	// y-axis
	case Z_N0:
		return _FRAC_PI_2.Neg()
	case Z_P0:
		return _FRAC_PI_2
	}
	panic(errInternal)
}

// Atanh computes the inverse hyperbolic tangent of x.
//
//	Domain: (-1, 1)    Range: ℝ
func (x Interval) Atanh() Interval {
	// Inputs touching the domain only at ±1 have no image.
	x = x.Intersection(_DOM_UNIT)
	if x.IsEmpty() || x.sup <= -1 || x.inf >= 1 {
		return _EMPTY
	}
	return withInfSup(math.Atanh(x.inf), math.Atanh(x.sup))
}

// Cos computes the cosine of x.
//
//	Domain: ℝ    Range: [-1, 1]
func (x Interval) Cos() Interval {
	if x.IsEmpty() {
		return _EMPTY
	}

	a, b := x.inf, x.sup
	qs := x.Div(_PI).Floor()
	qa, qb := qs.inf, qs.sup
	// A singleton spans no half-period, whatever rounding did to the quotient.
	n := qb - qa
	if a == b {
		n = 0
	}
	q := remEuclid2(qa)

	switch {
	case n == 0 && q == 0:
		// decreasing
		return withInfSup(math.Cos(b), math.Cos(a))
	case n == 0:
		// increasing
		return withInfSup(math.Cos(a), math.Cos(b))
	case n <= 1 && q == 0:
		// decreasing, then increasing
		return withInfSup(-1, math.Max(math.Cos(a), math.Cos(b)))
	case n <= 1:
		// increasing, then decreasing
		return withInfSup(math.Min(math.Cos(a), math.Cos(b)), 1)
	}
	return _UNIT
}

// Cosh computes the hyperbolic cosine of x.
//
//	Domain: ℝ    Range: [1, +∞)
func (x Interval) Cosh() Interval {
	if x.IsEmpty() {
		return _EMPTY
	}

	a, b := x.inf, x.sup
	switch {
	case b < 0:
		return withInfSup(math.Cosh(b), math.Cosh(a))
	case a > 0:
		return withInfSup(math.Cosh(a), math.Cosh(b))
	}
	return withInfSup(1, math.Cosh(math.Max(-a, b)))
}

// Exp computes eˣ.
func (x Interval) Exp() Interval {
	return x.monoInc(math.Exp)
}

// Exp10 computes 10ˣ.
func (x Interval) Exp10() Interval {
	return x.monoInc(exp10)
}

// Exp2 computes 2ˣ.
func (x Interval) Exp2() Interval {
	return x.monoInc(math.Exp2)
}

// Ln computes the natural logarithm of x.
//
//	Domain: (0, +∞)    Range: ℝ
func (x Interval) Ln() Interval {
	return x.log(math.Log)
}

// Log10 computes the base-10 logarithm of x.
func (x Interval) Log10() Interval {
	return x.log(math.Log10)
}

// Log2 computes the base-2 logarithm of x.
func (x Interval) Log2() Interval {
	return x.log(math.Log2)
}

// Pow computes x raised to the power of y, where
//
//	xʸ = 0          if x = 0 ∧ y > 0,
//	xʸ = e^(y ln x) if x > 0.
//
//	Domain: ((0, +∞) × ℝ) ∪ ({0} × (0, +∞))    Range: [0, +∞)
func (x Interval) Pow(y Interval) Interval {
	x = x.Intersection(_DOM_LOG)
	if x.eitherEmpty(y) {
		return _EMPTY
	}

	a, b := x.inf, x.sup
	c, d := y.inf, y.sup

	switch {
	case d <= 0:
		switch {
		case b == 0:
			return _EMPTY
		case b < 1:
			return withInfSup(math.Pow(b, d), math.Pow(a, c))
		case a > 1:
			return withInfSup(math.Pow(b, c), math.Pow(a, d))
		}
		return withInfSup(math.Pow(b, c), math.Pow(a, c))
	case c > 0:
		switch {
		case b < 1:
			return withInfSup(math.Pow(a, d), math.Pow(b, c))
		case a > 1:
			return withInfSup(math.Pow(a, c), math.Pow(b, d))
		}
		return withInfSup(math.Pow(a, d), math.Pow(b, d))
	}

	// c ≤ 0 < d
	if b == 0 {
		return zero()
	}
	acPow, adPow := math.Pow(a, c), math.Pow(a, d)
	bcPow, bdPow := math.Pow(b, c), math.Pow(b, d)
	return withInfSup(math.Min(adPow, bcPow), math.Max(acPow, bdPow))
}

// Powi computes x raised to the integer power n, where
//
//	xⁿ = x × ⋯ × x  if n > 0,
//	xⁿ = 1          if n = 0,
//	xⁿ = 1 / x⁻ⁿ    if n < 0.
//
// For n < 0 the point function is undefined at 0.
func (x Interval) Powi(n int) Interval {
	if x.IsEmpty() {
		return _EMPTY
	}

	a, b := x.inf, x.sup
	e := float64(n)

	if n < 0 {
		if a == 0 && b == 0 {
			return _EMPTY
		}

		if n%2 == 0 {
			abs := x.Abs()
			return withInfSup(math.Pow(abs.sup, e), math.Pow(abs.inf, e))
		}

		if a < 0 && b > 0 {
			return _ENTIRE
		}
		// The sign of a zero bound selects the infinity of the pole:
		// [0, b] has to map to [bⁿ, +∞] and [a, 0] to [-∞, aⁿ].
		if a == 0 {
			a = 0
		}
		if b == 0 {
			b = math.Copysign(0, -1)
		}
		return withInfSup(math.Pow(b, e), math.Pow(a, e))
	}

	if n%2 == 0 {
		abs := x.Abs()
		return withInfSup(math.Pow(abs.inf, e), math.Pow(abs.sup, e))
	}
	return withInfSup(math.Pow(a, e), math.Pow(b, e))
}

// Sqr computes x².
func (x Interval) Sqr() Interval {
	return x.Powi(2)
}

// Sqrt computes the principal square root of x.
//
//	Domain: [0, +∞)    Range: [0, +∞)
func (x Interval) Sqrt() Interval {
	x = x.Intersection(_DOM_LOG)
	if x.IsEmpty() {
		return _EMPTY
	}
	return withInfSup(math.Sqrt(x.inf), math.Sqrt(x.sup))
}

// Sin computes the sine of x.
//
//	Domain: ℝ    Range: [-1, 1]
func (x Interval) Sin() Interval {
	if x.IsEmpty() {
		return _EMPTY
	}

	a, b := x.inf, x.sup
	qs := x.Div(_FRAC_PI_2).Floor()
	qa, qb := qs.inf, qs.sup
	n := qb - qa
	if a == b {
		n = 0
	}
	q := remEuclid(qa, 4)

	switch {
	case q == 0 && n < 1, q == 3 && n < 2:
		// increasing
		return withInfSup(math.Sin(a), math.Sin(b))
	case q == 1 && n < 2, q == 2 && n < 1:
		// decreasing
		return withInfSup(math.Sin(b), math.Sin(a))
	case q == 0 && n < 3, q == 3 && n < 4:
		// increasing, then decreasing
		return withInfSup(math.Min(math.Sin(a), math.Sin(b)), 1)
	case q == 1 && n < 4, q == 2 && n < 3:
		// decreasing, then increasing
		return withInfSup(-1, math.Max(math.Sin(a), math.Sin(b)))
	}
	return _UNIT
}

// Sinh computes the hyperbolic sine of x.
func (x Interval) Sinh() Interval {
	return x.monoInc(math.Sinh)
}

// Tan computes the tangent of x.
//
//	Domain: ℝ ∖ {(n + 1/2)π | n ∈ ℤ}    Range: ℝ
func (x Interval) Tan() Interval {
	if x.IsEmpty() {
		return _EMPTY
	}

	a, b := x.inf, x.sup
	qs := x.Div(_FRAC_PI_2).Floor()
	qa, qb := qs.inf, qs.sup
	n := qb - qa
	if a == b {
		n = 0
	}
	q := remEuclid2(qa)

	// b has not crossed the asymptote that starts the qb-th quadrant.
	cont := qb != math.Inf(1) && b <= withInfSup(qb, qb).Mul(_FRAC_PI_2).inf
	if q == 0 && (n < 1 || n == 1 && cont) || q == 1 && (n < 2 || n == 2 && cont) {
		return withInfSup(math.Tan(a), math.Tan(b))
	}
	return _ENTIRE
}

// Tanh computes the hyperbolic tangent of x.
//
//	Domain: ℝ    Range: (-1, 1)
func (x Interval) Tanh() Interval {
	return x.monoInc(math.Tanh)
}
