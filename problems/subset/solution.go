package subset

import "github.com/go-optim/localsearch/search"

// Solution is a subset of {0, ..., n-1}, backed by a bitset.
type Solution struct {
	bits bitset
}

// NewSolution builds an empty solution over a universe of n elements.
func NewSolution(n int) *Solution {
	return &Solution{bits: newBitset(n)}
}

// Contains reports whether id is a member of the subset.
func (s *Solution) Contains(id int) bool { return s.bits.has(id) }

// Size returns the number of elements currently in the subset.
func (s *Solution) Size() int { return s.bits.popcnt() }

// Each calls fn with every member id, in ascending order.
func (s *Solution) Each(fn func(id int)) { s.bits.each(fn) }

func (s *Solution) add(id int) { s.bits.set(id) }

func (s *Solution) remove(id int) { s.bits.clear(id) }

func (s *Solution) Copy() search.Solution {
	return &Solution{bits: s.bits.clone()}
}

func (s *Solution) Equal(other search.Solution) bool {
	o, ok := other.(*Solution)
	return ok && s.bits.equal(o.bits)
}

func (s *Solution) Hash() uint64 { return s.bits.hash() }
