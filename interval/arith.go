package interval

import "math"

// Neg computes -x = [-b, -a].
func (x Interval) Neg() Interval {
	if x.IsEmpty() {
		return _EMPTY
	}
	return withInfSup(-x.sup, -x.inf)
}

// Add computes x + y = [a + c, b + d].
func (x Interval) Add(y Interval) Interval {
	if x.eitherEmpty(y) {
		return _EMPTY
	}
	return withInfSup(x.inf+y.inf, x.sup+y.sup)
}

// Sub computes x - y = [a - d, b - c].
func (x Interval) Sub(y Interval) Interval {
	if x.eitherEmpty(y) {
		return _EMPTY
	}
	return withInfSup(x.inf-y.sup, x.sup-y.inf)
}

// Mul computes x * y. The bounds are selected from the class of each operand:
//
//	.-----------------------------------------------------------.
//	|   |      M     |      N     |      P     |  Z  |  E  |
//	|===|============|============|============|=====|=====|
//	| M |     *1     | [b*c, a*c] | [a*d, b*d] | {0} |  ∅  |
//	|---|------------|------------|------------|-----|-----|
//	| N | [a*d, a*c] | [b*d, a*c] | [a*d, b*c] | {0} |  ∅  |
//	|---|------------|------------|------------|-----|-----|
//	| P | [b*c, b*d] | [b*c, a*d] | [a*c, b*d] | {0} |  ∅  |
//	|---|------------|------------|------------|-----|-----|
//	| Z |     {0}    |     {0}    |     {0}    | {0} |  ∅  |
//	|---|------------|------------|------------|-----|-----|
//	| E |      ∅     |      ∅     |      ∅     |  ∅  |  ∅  |
//	 -----------------------------------------------------------
//
// where x = [a, b], y = [c, d] and *1 = [min(a*d, b*c), max(a*c, b*d)].
func (x Interval) Mul(y Interval) Interval {
	a, b := x.inf, x.sup
	c, d := y.inf, y.sup

	switch x.Classify2(y) {
	case E_E, E_M, E_N0, E_N1, E_P0, E_P1, E_Z,
		M_E, N0_E, N1_E, P0_E, P1_E, Z_E:
		return _EMPTY
	case M_Z, N0_Z, N1_Z, P0_Z, P1_Z,
		Z_M, Z_N0, Z_N1, Z_P0, Z_P1, Z_Z:
		return zero()
	case M_M:
		return withInfSup(math.Min(a*d, b*c), math.Max(a*c, b*d))
	case M_N0, M_N1:
		return withInfSup(b*c, a*c)
	case M_P0, M_P1:
		return withInfSup(a*d, b*d)
	case N0_M, N1_M:
		return withInfSup(a*d, a*c)
	case N0_N0, N0_N1, N1_N0, N1_N1:
		return withInfSup(b*d, a*c)
	case N0_P0, N0_P1, N1_P0, N1_P1:
		return withInfSup(a*d, b*c)
	case P0_M, P1_M:
		return withInfSup(b*c, b*d)
	case P0_N0, P0_N1, P1_N0, P1_N1:
		return withInfSup(b*c, a*d)
	case P0_P0, P0_P1, P1_P0, P1_P1:
		return withInfSup(a*c, b*d)
	}
	panic(errInternal)
}

// Div computes x / y. The bounds are selected from the class of each operand:
//
//	.----------------------------------------------------------------------.
//	|   |  M  |     N0    |     N1     |     P0    |     P1     | Z | E |
//	|===|=====|===========|============|===========|============|===|===|
//	| M |  ℝ  |     ℝ     | [b/d, a/d] |     ℝ     | [a/c, b/c] | ∅ | ∅ |
//	|---|-----|-----------|------------|-----------|------------|---|---|
//	| N |  ℝ  | [b/c, +∞] | [b/c, a/d] | [-∞, b/d] | [a/c, b/d] | ∅ | ∅ |
//	|---|-----|-----------|------------|-----------|------------|---|---|
//	| P |  ℝ  | [-∞, a/c] | [b/d, a/c] | [a/d, +∞] | [a/d, b/c] | ∅ | ∅ |
//	|---|-----|-----------|------------|-----------|------------|---|---|
//	| Z | {0} |    {0}    |     {0}    |    {0}    |     {0}    | ∅ | ∅ |
//	|---|-----|-----------|------------|-----------|------------|---|---|
//	| E |  ∅  |     ∅     |      ∅     |     ∅     |      ∅     | ∅ | ∅ |
//	 ----------------------------------------------------------------------
//
// where x = [a, b] and y = [c, d].
func (x Interval) Div(y Interval) Interval {
	a, b := x.inf, x.sup
	c, d := y.inf, y.sup

	switch x.Classify2(y) {
	case E_E, E_M, E_N0, E_N1, E_P0, E_P1, E_Z,
		M_E, M_Z, N0_E, N0_Z, N1_E, N1_Z,
		P0_E, P0_Z, P1_E, P1_Z, Z_E, Z_Z:
		return _EMPTY
	case M_M, M_N0, M_P0, N0_M, N1_M, P0_M, P1_M:
		return _ENTIRE
	case Z_M, Z_N0, Z_N1, Z_P0, Z_P1:
		return zero()
	case M_N1:
		return withInfSup(b/d, a/d)
	case M_P1:
		return withInfSup(a/c, b/c)
	case N0_N0, N1_N0:
		return withInfSup(b/c, math.Inf(1))
	case N0_N1, N1_N1:
		return withInfSup(b/c, a/d)
	case N0_P0, N1_P0:
		return withInfSup(math.Inf(-1), b/d)
	case N0_P1, N1_P1:
		return withInfSup(a/c, b/d)
	case P0_N0, P1_N0:
		return withInfSup(math.Inf(-1), a/c)
	case P0_N1, P1_N1:
		return withInfSup(b/d, a/c)
	case P0_P0, P1_P0:
		return withInfSup(a/d, math.Inf(1))
	case P0_P1, P1_P1:
		return withInfSup(a/d, b/c)
	}
	panic(errInternal)
}

// Recip computes 1 / x.
func (x Interval) Recip() Interval {
	return withInfSup(1, 1).Div(x)
}

// MulAdd computes x * y + z.
func (x Interval) MulAdd(y, z Interval) Interval {
	return x.Mul(y).Add(z)
}

// AddAssign replaces x with x + y.
func (x *Interval) AddAssign(y Interval) {
	*x = x.Add(y)
}

// SubAssign replaces x with x - y.
func (x *Interval) SubAssign(y Interval) {
	*x = x.Sub(y)
}

// MulAssign replaces x with x * y.
func (x *Interval) MulAssign(y Interval) {
	*x = x.Mul(y)
}

// DivAssign replaces x with x / y.
func (x *Interval) DivAssign(y Interval) {
	*x = x.Div(y)
}
