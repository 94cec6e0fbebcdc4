package interval

import (
	"math"
	"testing"

	"github.com/cs-au-dk/ivl/testutil"

	"github.com/stretchr/testify/assert"
)

// encloses checks that the point value v is a member of y, up to a small
// relative tolerance. Infinite point values, which stem from poles and
// overflow, only require y to be unbounded on the same side (or empty).
func encloses(y Interval, v float64) bool {
	switch {
	case math.IsNaN(v):
		return true
	case math.IsInf(v, 1):
		return y.IsEmpty() || y.Sup() == inf
	case math.IsInf(v, -1):
		return y.IsEmpty() || y.Inf() == -inf
	case y.IsEmpty():
		return false
	}
	tol := 1e-12 * math.Max(1, math.Abs(v))
	return y.Inf()-tol <= v && v <= y.Sup()+tol
}

var enclosureInputs = []Interval{
	Entire(), I(0, 0), I(-2, 3), I(-2, 0), I(-3, -2), I(0, 2), I(2, 3),
	I(-inf, 0), I(0, inf), I(-inf, -1), I(1, inf), I(-10, 10), I(0.5, 0.7),
	I(1, 1e3), I(-1e3, -1), I(-0.5, 0.5), I(3, 3.5), I(100, 101), I(-1, 1),
	I(1.5, 1.6), I(4.6, 4.8), I(-7, -6),
}

func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestUnaryEnclosure(t *testing.T) {
	fns := []struct {
		name  string
		f     func(Interval) Interval
		point func(float64) float64
	}{
		{"abs", Interval.Abs, math.Abs},
		{"acos", Interval.Acos, math.Acos},
		{"acosh", Interval.Acosh, math.Acosh},
		{"asin", Interval.Asin, math.Asin},
		{"asinh", Interval.Asinh, math.Asinh},
		{"atan", Interval.Atan, math.Atan},
		{"atanh", Interval.Atanh, math.Atanh},
		{"ceil", Interval.Ceil, math.Ceil},
		{"cos", Interval.Cos, math.Cos},
		{"cosh", Interval.Cosh, math.Cosh},
		{"exp", Interval.Exp, math.Exp},
		{"exp10", Interval.Exp10, exp10},
		{"exp2", Interval.Exp2, math.Exp2},
		{"floor", Interval.Floor, math.Floor},
		{"ln", Interval.Ln, math.Log},
		{"log10", Interval.Log10, math.Log10},
		{"log2", Interval.Log2, math.Log2},
		{"neg", Interval.Neg, func(v float64) float64 { return -v }},
		{"recip", Interval.Recip, func(v float64) float64 {
			if v == 0 {
				return math.NaN()
			}
			return 1 / v
		}},
		{"round", Interval.Round, math.Round},
		{"roundTiesToEven", Interval.RoundTiesToEven, math.RoundToEven},
		{"sign", Interval.Sign, sign},
		{"sin", Interval.Sin, math.Sin},
		{"sinh", Interval.Sinh, math.Sinh},
		{"sqr", Interval.Sqr, func(v float64) float64 { return v * v }},
		{"sqrt", Interval.Sqrt, math.Sqrt},
		{"tan", Interval.Tan, math.Tan},
		{"tanh", Interval.Tanh, math.Tanh},
		{"trunc", Interval.Trunc, math.Trunc},
	}

	for _, fn := range fns {
		t.Run(fn.name, func(t *testing.T) {
			for _, x := range enclosureInputs {
				y := fn.f(x)
				for _, p := range testutil.Sample(x.Inf(), x.Sup(), 50) {
					v := fn.point(p)
					assert.True(t, encloses(y, v), "%s(%v) = %v ∉ %s(%s) = %s", fn.name, p, v, fn.name, x, y)
				}
			}
		})
	}
}

func TestBinaryEnclosure(t *testing.T) {
	fns := []struct {
		name  string
		f     func(Interval, Interval) Interval
		point func(float64, float64) float64
	}{
		{"+", Interval.Add, func(p, q float64) float64 { return p + q }},
		{"-", Interval.Sub, func(p, q float64) float64 { return p - q }},
		{"*", Interval.Mul, func(p, q float64) float64 { return p * q }},
		{"/", Interval.Div, func(p, q float64) float64 {
			if q == 0 {
				return math.NaN()
			}
			return p / q
		}},
		{"max", Interval.Max, math.Max},
		{"min", Interval.Min, math.Min},
		{"pow", Interval.Pow, func(p, q float64) float64 {
			if p < 0 || p == 0 && q <= 0 {
				return math.NaN()
			}
			return math.Pow(p, q)
		}},
		// The receiver of Atan2 is y.
		{"atan2", Interval.Atan2, func(q, p float64) float64 {
			if p == 0 && q == 0 {
				return math.NaN()
			}
			return math.Atan2(q, p)
		}},
	}

	for _, fn := range fns {
		t.Run(fn.name, func(t *testing.T) {
			for _, x := range enclosureInputs {
				for _, y := range enclosureInputs {
					z := fn.f(x, y)
					for _, p := range testutil.Sample(x.Inf(), x.Sup(), 8) {
						for _, q := range testutil.Sample(y.Inf(), y.Sup(), 8) {
							v := fn.point(p, q)
							assert.True(t, encloses(z, v), "%v %s %v = %v ∉ %s %s %s = %s", p, fn.name, q, v, x, fn.name, y, z)
						}
					}
				}
			}
		})
	}
}

func TestPowiEnclosure(t *testing.T) {
	for n := -4; n <= 4; n++ {
		for _, x := range enclosureInputs {
			y := x.Powi(n)
			for _, p := range testutil.Sample(x.Inf(), x.Sup(), 50) {
				if p == 0 && n < 0 {
					continue
				}
				v := math.Pow(p, float64(n))
				assert.True(t, encloses(y, v), "%v^%d = %v ∉ %s^%d = %s", p, n, v, x, n, y)
			}
		}
	}
}

func TestElementary(t *testing.T) {
	tests := []struct {
		name          string
		res, expected Interval
	}{
		{"exp", I(0, 0).Exp(), I(1, 1)},
		{"exp", Entire().Exp(), I(0, inf)},
		{"exp", Empty().Exp(), Empty()},
		{"ln", I(-1, 0).Ln(), Empty()},
		{"ln", I(0, 1).Ln(), I(-inf, 0)},
		{"ln", Entire().Ln(), Entire()},
		{"ln", I(-2, -1).Ln(), Empty()},
		{"log2", I(1, 8).Log2(), I(0, 3)},
		{"log2", I(0.5, 4).Log2(), I(-1, 2)},
		{"sqrt", I(-4, 4).Sqrt(), I(0, 2)},
		{"sqrt", I(-2, -1).Sqrt(), Empty()},
		{"sqrt", I(4, inf).Sqrt(), I(2, inf)},
		{"acos", I(2, 3).Acos(), Empty()},
		{"acos", I(1, 2).Acos(), I(0, 0)},
		{"asin", I(-3, -2).Asin(), Empty()},
		{"asin", I(0, 0).Asin(), I(0, 0)},
		{"acosh", I(-1, 0.5).Acosh(), Empty()},
		{"acosh", I(1, 1).Acosh(), I(0, 0)},
		{"atanh", I(1, 2).Atanh(), Empty()},
		{"atanh", I(-2, -1).Atanh(), Empty()},
		{"atanh", I(-1, 1).Atanh(), Entire()},
		{"atanh", I(0, 0).Atanh(), I(0, 0)},
		{"cosh", I(0, 0).Cosh(), I(1, 1)},
		{"cosh", Entire().Cosh(), I(1, inf)},
		{"sin", I(0, 0).Sin(), I(0, 0)},
		{"sin", Entire().Sin(), I(-1, 1)},
		{"sin", I(0, 1.5707963267948966).Sin(), I(0, 1)},
		{"sin", I(1, inf).Sin(), I(-1, 1)},
		{"cos", I(0, 0).Cos(), I(1, 1)},
		{"cos", I(0, math.Pi).Cos(), I(-1, 1)},
		{"cos", Entire().Cos(), I(-1, 1)},
		{"cos", I(-inf, -1).Cos(), I(-1, 1)},
		{"tan", I(0, 0).Tan(), I(0, 0)},
		{"tan", I(0, 2).Tan(), Entire()},
		{"tan", Entire().Tan(), Entire()},
		{"tanh", Entire().Tanh(), I(-1, 1)},
		{"atan", I(0, 0).Atan(), I(0, 0)},
	}

	for _, test := range tests {
		if !test.res.Eq(test.expected) {
			t.Errorf("%s: got %s, expected %s", test.name, test.res, test.expected)
		}
	}
}

func TestPeriodicBranches(t *testing.T) {
	sin, cos := math.Sin, math.Cos

	tests := []struct {
		name          string
		res, expected Interval
	}{
		// x/π ∈ [0, 1): decreasing.
		{"cos", I(1, 2).Cos(), I(cos(2), cos(1))},
		// x/π ∈ [1, 2): increasing.
		{"cos", I(4, 5).Cos(), I(cos(4), cos(5))},
		// Across 0: increasing, then decreasing.
		{"cos", I(-1, 1).Cos(), I(math.Min(cos(-1), cos(1)), 1)},
		// Across π: decreasing, then increasing.
		{"cos", I(3, 4).Cos(), I(-1, math.Max(cos(3), cos(4)))},

		// First quadrant: increasing.
		{"sin", I(0.5, 1).Sin(), I(sin(0.5), sin(1))},
		// Fourth quadrant: increasing.
		{"sin", I(5, 6).Sin(), I(sin(5), sin(6))},
		// Second quadrant: decreasing.
		{"sin", I(2, 3).Sin(), I(sin(3), sin(2))},
		// Third quadrant: decreasing.
		{"sin", I(3.5, 4).Sin(), I(sin(4), sin(3.5))},
		// Across π/2: increasing, then decreasing.
		{"sin", I(1, 2).Sin(), I(math.Min(sin(1), sin(2)), 1)},
		// Across 3π/2 from the second quadrant: decreasing, then increasing.
		{"sin", I(2, 5).Sin(), I(-1, math.Max(sin(2), sin(5)))},
		// Across 3π/2 from the third quadrant: decreasing, then increasing.
		{"sin", I(4, 5).Sin(), I(-1, math.Max(sin(4), sin(5)))},
		// Both extrema.
		{"sin", I(1, 5).Sin(), I(-1, 1)},
		{"cos", I(-1, 4).Cos(), I(-1, 1)},

		{"tan", I(-1, 1).Tan(), I(math.Tan(-1), math.Tan(1))},
		{"tan", I(2, 3).Tan(), I(math.Tan(2), math.Tan(3))},
	}

	for _, test := range tests {
		if !test.res.Eq(test.expected) {
			t.Errorf("%s: got %s, expected %s", test.name, test.res, test.expected)
		}
	}
}

func TestTanSingleBranch(t *testing.T) {
	pi := Consts().Pi()
	piHalf := Consts().FracPi2()

	tests := []Interval{
		pi.Div(I(4, 4)).ConvexHull(I(piHalf.Inf(), piHalf.Inf())),
		pi.Div(I(-4, -4)).ConvexHull(I(piHalf.Inf(), piHalf.Inf())),
		I(-3*math.Pi/4, -piHalf.Sup()),
		I(-5*math.Pi/4, -piHalf.Sup()),
	}

	for _, x := range tests {
		if res := x.Tan(); !res.IsCommonInterval() {
			t.Errorf("tan(%s) = %s, expected a bounded interval", x, res)
		} else {
			t.Logf("tan(%s) = %s", x, res)
		}
	}
}

func TestAtan2(t *testing.T) {
	pi := Consts().Pi()

	tests := []struct {
		y, x, expected Interval
	}{
		{I(0, 0), I(-2, -1), pi},
		{I(nzro, nzro), I(-2, -1), pi},
		{I(nzro, 0), I(-2, 0), pi},
		{I(0, 0), I(1, 2), I(0, 0)},
		{I(0, 0), I(0, 2), I(0, 0)},
		{I(0, 0), I(0, 0), Empty()},
		{I(0, 2), I(0, 0), Consts().FracPi2()},
		{I(-2, 0), I(0, 0), Consts().FracPi2().Neg()},
		{I(-1, 1), I(-1, 1), I(-pi.Sup(), pi.Sup())},
		{I(0, 1), I(-1, 1), I(0, pi.Sup())},
		{I(-1, 0), I(-2, -1), I(-pi.Sup(), pi.Sup())},
		{Empty(), I(1, 2), Empty()},

		// First quadrant.
		{I(1, 2), I(1, 2), I(math.Atan2(1, 2), math.Atan2(2, 1))},
		{I(1, 2), I(0, 2), I(math.Atan2(1, 2), math.Atan2(2, 0))},
		{I(0, 2), I(1, 2), I(0, math.Atan2(2, 1))},
		{I(1, 2), I(0, 0), I(math.Atan2(1, 0), math.Atan2(2, 0))},
		// First and second quadrants.
		{I(1, 2), I(-1, 2), I(math.Atan2(1, 2), math.Atan2(1, -1))},
		// Second quadrant.
		{I(1, 2), I(-2, -1), I(math.Atan2(2, -1), math.Atan2(1, -2))},
		{I(1, 2), I(-2, 0), I(math.Atan2(2, 0), math.Atan2(1, -2))},
		{I(0, 2), I(-2, -1), I(math.Atan2(2, -1), pi.Sup())},
		// Third quadrant.
		{I(-2, -1), I(-2, -1), I(math.Atan2(-1, -2), math.Atan2(-2, -1))},
		{I(-2, -1), I(-2, 0), I(math.Atan2(-1, -2), math.Atan2(-2, 0))},
		// Third and fourth quadrants.
		{I(-2, -1), I(-1, 2), I(math.Atan2(-1, -1), math.Atan2(-1, 2))},
		// Fourth quadrant.
		{I(-2, -1), I(1, 2), I(math.Atan2(-2, 1), math.Atan2(-1, 2))},
		{I(-2, 0), I(1, 2), I(math.Atan2(-2, 1), 0)},
		{I(-2, -1), I(0, 2), I(math.Atan2(-2, 0), math.Atan2(-1, 2))},
		{I(-2, -1), I(0, 0), I(math.Atan2(-2, 0), math.Atan2(-1, 0))},
		// Fourth and first quadrants.
		{I(-1, 1), I(1, 2), I(math.Atan2(-1, 1), math.Atan2(1, 1))},
	}

	for _, test := range tests {
		res := test.y.Atan2(test.x)
		if !res.Eq(test.expected) {
			t.Errorf("atan2(%s, %s) = %s, expected %s", test.y, test.x, res, test.expected)
		}
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		x, y, expected Interval
	}{
		{I(2, 3), I(2, 2), I(4, 9)},
		{I(0, 0), I(-1, 0), Empty()},
		{I(0, 0), I(1, 2), I(0, 0)},
		{I(0, 0), I(-1, 1), I(0, 0)},
		{I(-2, -1), I(1, 2), Empty()},
		{I(-2, 4), I(1, 1), I(0, 4)},
		{I(0.25, 0.5), I(-2, -1), I(2, 16)},
		{I(2, 4), I(-1, 1), I(0.25, 4)},
		{I(0.5, 2), I(2, 2), I(0.25, 4)},
		{I(0.5, 2), I(-1, -1), I(0.5, 2)},
		{I(2, 4), Empty(), Empty()},
	}

	for _, test := range tests {
		if res := test.x.Pow(test.y); !res.Eq(test.expected) {
			t.Errorf("%s ^ %s = %s, expected %s", test.x, test.y, res, test.expected)
		}
	}
}

func TestPowi(t *testing.T) {
	tests := []struct {
		x        Interval
		n        int
		expected Interval
	}{
		{I(-2, 3), 2, I(0, 9)},
		{I(-2, 3), 3, I(-8, 27)},
		{I(-2, 3), 0, I(1, 1)},
		{Entire(), 0, I(1, 1)},
		{I(2, 4), -1, I(0.25, 0.5)},
		{I(-2, 3), -1, Entire()},
		{I(0, 0), -1, Empty()},
		{I(0, 0), -2, Empty()},
		{I(0, 2), -1, I(0.5, inf)},
		{I(nzro, 2), -1, I(0.5, inf)},
		{I(-2, 0), -1, I(-inf, -0.5)},
		{I(-2, -1), -2, I(0.25, 1)},
		{I(0, 2), -2, I(0.25, inf)},
		{I(-2, 3), -2, I(1.0/9, inf)},
		{Empty(), 2, Empty()},
	}

	for _, test := range tests {
		if res := test.x.Powi(test.n); !res.Eq(test.expected) {
			t.Errorf("%s ^ %d = %s, expected %s", test.x, test.n, res, test.expected)
		}
	}
}
