package algorithms

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
)

// SteepestDescent enumerates every admissible move each step and accepts
// the best improving one; it self-terminates (calls Stop) once none
// qualifies, i.e. once the current solution is a local optimum.
//
// Grounded on engine/move_ordering.go's full-candidate scan for the best
// move (easychessanimations-zurichess), specialised to a best-improving
// pick instead of a heuristic ordering.
type SteepestDescent struct {
	*search.NeighbourhoodSearch
	neighbourhood search.Neighbourhood
}

// NewSteepestDescent builds a SteepestDescent over problem, exploring
// neighbourhood.
func NewSteepestDescent(problem search.Problem, neighbourhood search.Neighbourhood, opts ...search.Option) (*SteepestDescent, error) {
	if neighbourhood == nil {
		return nil, fmt.Errorf("%w: nil neighbourhood", search.ErrConfiguration)
	}
	sd := &SteepestDescent{neighbourhood: neighbourhood}
	ns, err := search.NewNeighbourhoodSearch("SteepestDescent", problem, sd, opts...)
	if err != nil {
		return nil, err
	}
	sd.NeighbourhoodSearch = ns
	return sd, nil
}

func (sd *SteepestDescent) SearchStep() error {
	candidates := sd.neighbourhood.AllMoves(sd.CurrentSolution())
	move, eval, validation, ok, err := sd.BestMove(candidates, true)
	if err != nil {
		return err
	}
	if !ok {
		sd.Stop()
		return nil
	}
	sd.AcceptMove(move, eval, validation)
	return nil
}
