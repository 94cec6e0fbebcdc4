package interval

import (
	"fmt"
	"math"
)

// Interval is a closed interval [inf, sup] of real numbers, or the empty set.
//
//   - A nonempty interval [a, b] is stored as {inf: a, sup: b}, where
//     a ≤ b, a ≠ +∞ and b ≠ -∞.
//   - The empty set is stored as {inf: NaN, sup: NaN}. Only the NaN-ness of
//     inf is consulted when testing for emptiness.
//
// Intervals are values. Operations never mutate their receiver, except the
// compound assignment methods, which replace it as a whole.
type Interval struct {
	inf float64
	sup float64
}

// New creates the interval [a, b].
// It fails with an UndefinedOperation error if a > b, a = +∞, b = -∞
// or either bound is NaN.
func New(a, b float64) (Interval, error) {
	if a <= b && a != math.Inf(1) && b != math.Inf(-1) {
		return withInfSup(a, b), nil
	}
	return Interval{}, &Error{Kind: UndefinedOperation}
}

// MustNew is like New, but panics if [a, b] is not a valid interval.
// It is intended for initializing tables of literal intervals.
func MustNew(a, b float64) Interval {
	x, err := New(a, b)
	if err != nil {
		panic(fmt.Sprintf("[%v, %v]: %v", a, b, err))
	}
	return x
}

// Point creates the singleton interval [x, x].
func Point(x float64) (Interval, error) {
	return New(x, x)
}

// withInfSup creates [a, b] without validation. The caller must guarantee
// that the bounds are ordered and correctly signed.
func withInfSup(a, b float64) Interval {
	return Interval{inf: a, sup: b}
}

func zero() Interval {
	return Interval{inf: 0, sup: 0}
}

// Empty returns ∅.
func Empty() Interval {
	return _EMPTY
}

// Entire returns [-∞, +∞].
func Entire() Interval {
	return _ENTIRE
}

// Inf returns the raw lower bound. It is NaN if the interval is empty.
func (x Interval) Inf() float64 {
	return x.inf
}

// Sup returns the raw upper bound. It is NaN if the interval is empty.
func (x Interval) Sup() float64 {
	return x.sup
}

// IsEmpty checks whether x = ∅.
func (x Interval) IsEmpty() bool {
	return math.IsNaN(x.inf)
}

// IsEntire checks whether x = [-∞, +∞].
func (x Interval) IsEntire() bool {
	return x.inf == math.Inf(-1) && x.sup == math.Inf(1)
}

// IsSingleton checks whether x consists of a single real number.
// It is false for ∅ and for unbounded intervals.
func (x Interval) IsSingleton() bool {
	return x.inf == x.sup && !math.IsInf(x.inf, 0)
}

// IsCommonInterval checks whether x is nonempty and bounded.
func (x Interval) IsCommonInterval() bool {
	// -∞ < a  ∧  b < +∞
	return math.Inf(-1) < x.inf && x.sup < math.Inf(1)
}

// Eq checks for interval equality. Two intervals are equal if both are
// empty, or if both bounds compare equal with ==. In particular, bounds
// of +0 and -0 are equal.
func (x Interval) Eq(y Interval) bool {
	return x.bothEmpty(y) || (x.inf == y.inf && x.sup == y.sup)
}

// Equal is an alias of Eq, satisfying utils.HashableEq.
func (x Interval) Equal(y Interval) bool {
	return x.Eq(y)
}

// String renders x as "[inf, sup]". The empty interval renders as [NaN, NaN].
func (x Interval) String() string {
	return "[" + colorize.Element(fmt.Sprint(x.inf)) +
		", " + colorize.Element(fmt.Sprint(x.sup)) + "]"
}

func (x Interval) bothEmpty(y Interval) bool {
	return x.IsEmpty() && y.IsEmpty()
}

func (x Interval) eitherEmpty(y Interval) bool {
	return x.IsEmpty() || y.IsEmpty()
}
