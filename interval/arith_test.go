package interval

import (
	"path/filepath"
	"testing"

	"github.com/cs-au-dk/ivl/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromBounds(bs []float64) Interval {
	if len(bs) == 0 {
		return Empty()
	}
	return MustNew(bs[0], bs[1])
}

func TestArithScenarios(t *testing.T) {
	tests := []struct {
		op             string
		f              func(Interval, Interval) Interval
		a, b, expected Interval
	}{
		{"+", Interval.Add, I(3, 4), I(1, 2), I(4, 6)},
		{"-", Interval.Sub, I(3, 4), I(1, 2), I(1, 3)},
		{"*", Interval.Mul, I(3, 4), I(1, 2), I(3, 8)},
		{"/", Interval.Div, I(3, 4), I(1, 2), I(1.5, 4)},
		{"+", Interval.Add, I(-inf, 1), I(1, 2), I(-inf, 3)},
		{"-", Interval.Sub, I(1, inf), I(1, inf), Entire()},
		{"*", Interval.Mul, Entire(), I(0, 0), I(0, 0)},
		{"*", Interval.Mul, I(-1, 1), I(-1, 1), I(-1, 1)},
		{"*", Interval.Mul, I(0, inf), I(1, 2), I(0, inf)},
		{"/", Interval.Div, I(1, 2), I(0, 0), Empty()},
		{"/", Interval.Div, I(0, 0), I(0, 0), Empty()},
		{"/", Interval.Div, I(1, 2), I(-1, 1), Entire()},
		{"/", Interval.Div, I(-2, -1), I(-4, 0), I(0.25, inf)},
	}

	for _, test := range tests {
		res := test.f(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s %s %s = %s, expected %s\n", test.a, test.op, test.b, res, test.expected)
		} else {
			t.Logf("%s %s %s = %s\n", test.a, test.op, test.b, res)
		}
	}
}

func TestNeg(t *testing.T) {
	tests := []struct {
		a, expected Interval
	}{
		{Empty(), Empty()},
		{I(1, 2), I(-2, -1)},
		{I(-inf, 3), I(-3, inf)},
		{Entire(), Entire()},
	}

	for _, test := range tests {
		if res := test.a.Neg(); !res.Eq(test.expected) {
			t.Errorf("-%s = %s, expected %s\n", test.a, res, test.expected)
		}
	}
}

// Every class pair of * and / is checked against a literal result.
func TestSignTables(t *testing.T) {
	ops := map[string]func(Interval, Interval) Interval{
		"mul": Interval.Mul,
		"div": Interval.Div,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			vs, err := testutil.LoadVectors(filepath.Join("testdata", "vectors", name+".yaml"))
			require.NoError(t, err)
			require.Equal(t, name, vs.Op)

			seen := make(map[Class2]bool)
			for _, v := range vs.Vectors {
				x, y := fromBounds(v.X), fromBounds(v.Y)
				cls := x.Classify2(y)
				assert.Equal(t, v.Class, cls.String(), "classification of %s, %s", x, y)
				seen[cls] = true

				want := fromBounds(v.Want)
				if res := op(x, y); !res.Eq(want) {
					t.Errorf("%s: %s %s %s = %s, expected %s", v.Class, x, name, y, res, want)
				}
			}
			assert.Len(t, seen, 49)
		})
	}
}

var samples = []Interval{
	Empty(), Entire(), I(0, 0), I(nzro, nzro), I(-2, 3), I(-2, 0), I(-3, -2),
	I(0, 2), I(2, 3), I(-inf, 0), I(0, inf), I(-inf, -1), I(1, inf),
}

func TestEmptyAbsorbs(t *testing.T) {
	ops := map[string]func(Interval, Interval) Interval{
		"+":            Interval.Add,
		"-":            Interval.Sub,
		"*":            Interval.Mul,
		"/":            Interval.Div,
		"atan2":        Interval.Atan2,
		"pow":          Interval.Pow,
		"max":          Interval.Max,
		"min":          Interval.Min,
		"intersection": Interval.Intersection,
	}

	for name, op := range ops {
		for _, y := range samples {
			assert.True(t, op(Empty(), y).IsEmpty(), "∅ %s %s", name, y)
			assert.True(t, op(y, Empty()).IsEmpty(), "%s %s ∅", y, name)
		}
	}
}

func TestAssign(t *testing.T) {
	x := I(3, 4)
	x.AddAssign(I(1, 2))
	assert.True(t, x.Eq(I(4, 6)), "got %s", x)
	x.SubAssign(I(1, 2))
	assert.True(t, x.Eq(I(2, 5)), "got %s", x)
	x.MulAssign(I(-1, 2))
	assert.True(t, x.Eq(I(-5, 10)), "got %s", x)
	x.DivAssign(I(5, 5))
	assert.True(t, x.Eq(I(-1, 2)), "got %s", x)
	x.DivAssign(I(0, 0))
	assert.True(t, x.IsEmpty(), "got %s", x)
}

func TestRecipMulAdd(t *testing.T) {
	tests := []struct {
		res, expected Interval
	}{
		{I(2, 4).Recip(), I(0.25, 0.5)},
		{I(0, 2).Recip(), I(0.5, inf)},
		{I(-2, 2).Recip(), Entire()},
		{I(0, 0).Recip(), Empty()},
		{I(1, 2).MulAdd(I(3, 4), I(-1, 1)), I(2, 9)},
		{I(1, 2).MulAdd(I(3, 4), Empty()), Empty()},
	}

	for _, test := range tests {
		if !test.res.Eq(test.expected) {
			t.Errorf("got %s, expected %s", test.res, test.expected)
		}
	}
}
