package algorithms

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
)

// VND (variable-neighbourhood descent) cycles through an ordered list of
// neighbourhoods: each step it tries the best improving move in the
// current neighbourhood; on success it accepts and resets to the first
// neighbourhood, on failure it advances to the next one. It self-terminates
// once every neighbourhood in turn has failed to improve the current
// solution.
//
// Grounded on engine/engine.go's Play loop cycling through depths until
// tc.NextDepth says to stop (easychessanimations-zurichess), re-targeted
// from an iterative-deepening depth counter to a neighbourhood index.
type VND struct {
	*search.NeighbourhoodSearch
	neighbourhoods []search.Neighbourhood
	k              int
}

// NewVND builds a VND over problem, cycling through neighbourhoods in
// order. At least one neighbourhood is required.
func NewVND(problem search.Problem, neighbourhoods []search.Neighbourhood, opts ...search.Option) (*VND, error) {
	if len(neighbourhoods) == 0 {
		return nil, fmt.Errorf("%w: VND needs at least one neighbourhood", search.ErrConfiguration)
	}
	for i, n := range neighbourhoods {
		if n == nil {
			return nil, fmt.Errorf("%w: VND neighbourhood %d is nil", search.ErrConfiguration, i)
		}
	}
	v := &VND{neighbourhoods: append([]search.Neighbourhood(nil), neighbourhoods...)}
	ns, err := search.NewNeighbourhoodSearch("VND", problem, v, opts...)
	if err != nil {
		return nil, err
	}
	v.NeighbourhoodSearch = ns
	return v, nil
}

// OnSearchStarted resets the neighbourhood index alongside LocalSearch's own
// current-solution seeding, so a fresh run always starts from the first
// neighbourhood.
func (v *VND) OnSearchStarted(s *search.Search) error {
	v.k = 0
	return v.LocalSearch.OnSearchStarted(s)
}

func (v *VND) SearchStep() error {
	nbh := v.neighbourhoods[v.k]
	candidates := nbh.AllMoves(v.CurrentSolution())
	move, eval, validation, ok, err := v.BestMove(candidates, true)
	if err != nil {
		return err
	}
	if ok {
		v.AcceptMove(move, eval, validation)
		v.k = 0
		return nil
	}

	v.k++
	if v.k >= len(v.neighbourhoods) {
		v.Stop()
	}
	return nil
}
