package subset

import (
	"math/rand"

	"github.com/go-optim/localsearch/search"
)

// Neighbourhood enumerates/samples add, remove and swap moves over a fixed
// universe of n elements. NewNeighbourhood admits all three move kinds;
// NewSwapNeighbourhood admits swaps only, for fixed-size
// problems where add/remove would only ever produce inadmissible
// candidates.
type Neighbourhood struct {
	n                           int
	allowAdd, allowRemove, allowSwap bool
	rng                         *rand.Rand
}

// NewNeighbourhood builds a Neighbourhood over n elements with add, remove
// and swap moves all admissible.
func NewNeighbourhood(n int, rng *rand.Rand) *Neighbourhood {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Neighbourhood{n: n, allowAdd: true, allowRemove: true, allowSwap: true, rng: rng}
}

// NewSwapNeighbourhood builds a Neighbourhood over n elements restricted to
// swap moves, preserving |subset| under every move.
func NewSwapNeighbourhood(n int, rng *rand.Rand) *Neighbourhood {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Neighbourhood{n: n, allowSwap: true, rng: rng}
}

func (nbh *Neighbourhood) AllMoves(sol search.Solution) []search.Move {
	s := sol.(*Solution)
	var moves []search.Move
	if nbh.allowAdd {
		for id := 0; id < nbh.n; id++ {
			if !s.Contains(id) {
				moves = append(moves, AddMove{ID: id})
			}
		}
	}
	if nbh.allowRemove {
		s.Each(func(id int) {
			moves = append(moves, RemoveMove{ID: id})
		})
	}
	if nbh.allowSwap {
		var in, out []int
		for id := 0; id < nbh.n; id++ {
			if s.Contains(id) {
				out = append(out, id)
			} else {
				in = append(in, id)
			}
		}
		for _, i := range in {
			for _, o := range out {
				moves = append(moves, SwapMove{In: i, Out: o})
			}
		}
	}
	return moves
}

func (nbh *Neighbourhood) RandomMove(sol search.Solution) (search.Move, bool) {
	candidates := nbh.AllMoves(sol)
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[nbh.rng.Intn(len(candidates))], true
}
