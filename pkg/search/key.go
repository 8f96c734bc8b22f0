package search

import "github.com/arclab-robotics/gridsearch/pkg/geometry"

// eps is the tolerance used when ordering keys. Two keys whose components
// differ by no more than eps are treated as tied, which is what lets LPA*
// and D* Lite avoid re-expanding a vertex whose priority only moved by
// floating point noise after a MapChange.
const eps = geometry.EPS * 1e3

// Key is the two-component priority used to order the open set. k1 drives
// the primary ordering (estimated cost of the best path through the
// vertex, including any accumulated km offset); k2 breaks ties in favor of
// the vertex with the smaller g/rhs value, which in practice prefers
// vertices closer to being resolved.
type Key struct {
	K1 float64
	K2 float64
}

// Less reports whether k orders strictly before other, using an
// epsilon-tolerant comparison on both components so that keys which differ
// only by floating point error compare as equal rather than flip-flopping
// inside the open set's heap.
func (k Key) Less(other Key) bool {
	if !closeEnough(k.K1, other.K1) {
		return k.K1 < other.K1
	}
	return !closeEnough(k.K2, other.K2) && k.K2 < other.K2
}

// Equal reports whether k and other are tied under the same epsilon
// tolerance Less uses.
func (k Key) Equal(other Key) bool {
	return closeEnough(k.K1, other.K1) && closeEnough(k.K2, other.K2)
}

func keyLess(a, b Key) bool {
	return a.Less(b)
}
