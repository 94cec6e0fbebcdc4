package interval

import (
	"math"

	"github.com/cs-au-dk/ivl/utils"

	"github.com/benbjohnson/immutable"
)

const emptyHash uint32 = 0x7ff8_0001

func hashBound(f float64) uint32 {
	if f == 0 {
		// -0 == +0, so both must hash alike.
		f = 0
	}
	bits := math.Float64bits(f)
	return uint32(bits ^ bits>>32)
}

// Hash is consistent with Eq: bounds of -0 and +0 hash alike, and so
// does every empty interval.
func (x Interval) Hash() uint32 {
	if x.IsEmpty() {
		return emptyHash
	}
	return utils.HashCombine(hashBound(x.inf), hashBound(x.sup))
}

// Hasher allows intervals to be used as keys of immutable maps.
func Hasher() immutable.Hasher[Interval] {
	return utils.HashableHasher[Interval]()
}
