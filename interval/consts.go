package interval

import "math"

// Intervals are values, so handing out copies of these is safe.
var (
	_EMPTY  = Interval{inf: math.NaN(), sup: math.NaN()}
	_ENTIRE = MustNew(math.Inf(-1), math.Inf(1))

	_E              = MustNew(2.718281828459045, 2.7182818284590455)
	_FRAC_1_PI      = MustNew(0.31830988618379064, 0.3183098861837907)
	_FRAC_1_SQRT_2  = MustNew(0.7071067811865475, 0.7071067811865476)
	_FRAC_2_PI      = MustNew(0.6366197723675813, 0.6366197723675814)
	_FRAC_2_SQRT_PI = MustNew(1.1283791670955126, 1.1283791670955128)
	_FRAC_PI_2      = MustNew(1.5707963267948966, 1.5707963267948968)
	_FRAC_PI_3      = MustNew(1.0471975511965976, 1.0471975511965979)
	_FRAC_PI_4      = MustNew(0.7853981633974483, 0.7853981633974484)
	_FRAC_PI_6      = MustNew(0.5235987755982988, 0.5235987755982989)
	_FRAC_PI_8      = MustNew(0.39269908169872414, 0.3926990816987242)
	_LN_10          = MustNew(2.3025850929940455, 2.302585092994046)
	_LN_2           = MustNew(0.6931471805599453, 0.6931471805599454)
	_LOG10_2        = MustNew(0.30102999566398114, 0.3010299956639812)
	_LOG10_E        = MustNew(0.4342944819032518, 0.43429448190325187)
	_LOG2_10        = MustNew(3.321928094887362, 3.3219280948873626)
	_LOG2_E         = MustNew(1.4426950408889634, 1.4426950408889636)
	_PI             = MustNew(3.141592653589793, 3.1415926535897936)
	_SQRT_2         = MustNew(1.414213562373095, 1.4142135623730951)
	_TAU            = MustNew(6.283185307179586, 6.283185307179587)
)

type consts struct{}

var _consts = consts{}

// Consts is a factory of the named mathematical constants. Each constant is
// the tightest interval with f64 bounds that encloses the real number.
func Consts() consts {
	return _consts
}

// E encloses e, the base of natural logarithms.
func (consts) E() Interval { return _E }

// Frac1Pi encloses 1/π.
func (consts) Frac1Pi() Interval { return _FRAC_1_PI }

// Frac1Sqrt2 encloses 1/√2.
func (consts) Frac1Sqrt2() Interval { return _FRAC_1_SQRT_2 }

// Frac2Pi encloses 2/π.
func (consts) Frac2Pi() Interval { return _FRAC_2_PI }

// Frac2SqrtPi encloses 2/√π.
func (consts) Frac2SqrtPi() Interval { return _FRAC_2_SQRT_PI }

// FracPi2 encloses π/2.
func (consts) FracPi2() Interval { return _FRAC_PI_2 }

// FracPi3 encloses π/3.
func (consts) FracPi3() Interval { return _FRAC_PI_3 }

// FracPi4 encloses π/4.
func (consts) FracPi4() Interval { return _FRAC_PI_4 }

// FracPi6 encloses π/6.
func (consts) FracPi6() Interval { return _FRAC_PI_6 }

// FracPi8 encloses π/8.
func (consts) FracPi8() Interval { return _FRAC_PI_8 }

// Ln10 encloses ln 10.
func (consts) Ln10() Interval { return _LN_10 }

// Ln2 encloses ln 2.
func (consts) Ln2() Interval { return _LN_2 }

// Log10_2 encloses log₁₀ 2.
func (consts) Log10_2() Interval { return _LOG10_2 }

// Log10E encloses log₁₀ e.
func (consts) Log10E() Interval { return _LOG10_E }

// Log2_10 encloses log₂ 10.
func (consts) Log2_10() Interval { return _LOG2_10 }

// Log2E encloses log₂ e.
func (consts) Log2E() Interval { return _LOG2_E }

// Pi encloses π.
func (consts) Pi() Interval { return _PI }

// Sqrt2 encloses √2.
func (consts) Sqrt2() Interval { return _SQRT_2 }

// Tau encloses 2π.
func (consts) Tau() Interval { return _TAU }
