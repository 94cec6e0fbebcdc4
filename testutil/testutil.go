package testutil

import "math"

// span bounds the part of an unbounded interval that is sampled evenly.
const span = 1e3

// Sample returns members of [lo, hi] for checking that an interval function
// encloses its point function: the finite bounds and their inner neighbours,
// zero if it is a member, n points evenly spaced across [lo, hi] (or across
// a bounded part of width span if [lo, hi] is unbounded), and ±1e300 for
// unbounded ends. No points are returned if lo is NaN.
func Sample(lo, hi float64, n int) []float64 {
	if math.IsNaN(lo) {
		return nil
	}

	var ps []float64
	add := func(p float64) {
		if lo <= p && p <= hi && !math.IsInf(p, 0) {
			ps = append(ps, p)
		}
	}

	add(lo)
	add(hi)
	add(math.Nextafter(lo, hi))
	add(math.Nextafter(hi, lo))
	add(0)
	add(-1e300)
	add(1e300)

	l, h := lo, hi
	switch {
	case math.IsInf(l, -1) && math.IsInf(h, 1):
		l, h = -span, span
	case math.IsInf(l, -1):
		l = h - span
	case math.IsInf(h, 1):
		h = l + span
	}

	if n < 2 || l == h {
		return ps
	}
	for i := 0; i < n; i++ {
		p := l + (h-l)*float64(i)/float64(n-1)
		add(math.Max(l, math.Min(p, h)))
	}
	return ps
}
