package interval

import (
	"sort"

	uf "github.com/spakin/disjoint"
)

// Components partitions the nonempty intervals of xs into connected
// components, where two intervals are connected if they share a point,
// directly or through a chain of other intervals in xs.
//
// Every component is sorted by lower and then upper bound, and the
// components are sorted by their least lower bound. Empty intervals
// belong to no component.
func Components(xs ...Interval) [][]Interval {
	els := make([]*uf.Element, 0, len(xs))
	for _, x := range xs {
		if x.IsEmpty() {
			continue
		}
		el := uf.NewElement()
		el.Data = x
		els = append(els, el)
	}

	for i, e1 := range els {
		for _, e2 := range els[i+1:] {
			if !e1.Data.(Interval).Disjoint(e2.Data.(Interval)) {
				uf.Union(e1, e2)
			}
		}
	}

	groups := make(map[*uf.Element]int)
	var comps [][]Interval
	for _, el := range els {
		rep := el.Find()
		i, ok := groups[rep]
		if !ok {
			i = len(comps)
			groups[rep] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], el.Data.(Interval))
	}

	for _, comp := range comps {
		sort.SliceStable(comp, func(i, j int) bool {
			if comp[i].inf != comp[j].inf {
				return comp[i].inf < comp[j].inf
			}
			return comp[i].sup < comp[j].sup
		})
	}
	sort.Slice(comps, func(i, j int) bool {
		return comps[i][0].inf < comps[j][0].inf
	})
	return comps
}
