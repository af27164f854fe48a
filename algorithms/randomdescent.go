package algorithms

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
)

// RandomDescent samples one random move per step and accepts it iff it is
// an improvement; otherwise it is rejected without ever being applied.
//
// Grounded on engine/engine.go's DoMove/UndoMove pair (quiescence search's
// try-then-undo shape), specialised to a single candidate per step.
type RandomDescent struct {
	*search.NeighbourhoodSearch
	neighbourhood search.Neighbourhood
}

// NewRandomDescent builds a RandomDescent over problem, exploring
// neighbourhood.
func NewRandomDescent(problem search.Problem, neighbourhood search.Neighbourhood, opts ...search.Option) (*RandomDescent, error) {
	if neighbourhood == nil {
		return nil, fmt.Errorf("%w: nil neighbourhood", search.ErrConfiguration)
	}
	rd := &RandomDescent{neighbourhood: neighbourhood}
	ns, err := search.NewNeighbourhoodSearch("RandomDescent", problem, rd, opts...)
	if err != nil {
		return nil, err
	}
	rd.NeighbourhoodSearch = ns
	return rd, nil
}

func (rd *RandomDescent) SearchStep() error {
	move, ok := rd.neighbourhood.RandomMove(rd.CurrentSolution())
	if !ok {
		return nil
	}
	eval, validation, improving, err := evaluateAndCheckImprovement(rd.NeighbourhoodSearch, move)
	if err != nil {
		return err
	}
	if !improving {
		rd.RejectMove()
		return nil
	}
	rd.AcceptMove(move, eval, validation)
	return nil
}
