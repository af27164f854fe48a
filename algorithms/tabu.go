package algorithms

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
	"github.com/go-optim/localsearch/tabumemory"
)

// Tabu enumerates candidate moves each step and accepts the best delta
// among those that pass validation and are not tabu, unless a tabu
// candidate strictly improves on the best-so-far (the aspiration
// criterion), in which case it is allowed anyway. Self-terminates once no
// candidate qualifies.
//
// Grounded on engine/hash_table.go's membership/replacement scheme
// (easychessanimations-zurichess) for the memory itself, and on
// engine/move_ordering.go's full-candidate scan for the enumerate-then-pick
// shape.
type Tabu struct {
	*search.NeighbourhoodSearch
	neighbourhood search.Neighbourhood
	memory        tabumemory.Memory
}

// NewTabu builds a Tabu search over problem, exploring neighbourhood, using
// memory to track recently visited states/attributes.
func NewTabu(problem search.Problem, neighbourhood search.Neighbourhood, memory tabumemory.Memory, opts ...search.Option) (*Tabu, error) {
	if neighbourhood == nil {
		return nil, fmt.Errorf("%w: nil neighbourhood", search.ErrConfiguration)
	}
	if memory == nil {
		return nil, fmt.Errorf("%w: nil tabu memory", search.ErrConfiguration)
	}
	t := &Tabu{neighbourhood: neighbourhood, memory: memory}
	ns, err := search.NewNeighbourhoodSearch("Tabu", problem, t, opts...)
	if err != nil {
		return nil, err
	}
	t.NeighbourhoodSearch = ns
	return t, nil
}

func (t *Tabu) SearchStep() error {
	candidates := t.neighbourhood.AllMoves(t.CurrentSolution())

	type scored struct {
		move       search.Move
		eval       search.Evaluation
		validation search.Validation
		delta      float64
	}
	var best *scored

	bestEval := t.BestEvaluation()
	for _, move := range candidates {
		eval, validation, _, err := evaluateAndCheckImprovement(t.NeighbourhoodSearch, move)
		if err != nil {
			return err
		}
		if !validation.Passed() {
			continue
		}
		delta := t.ComputeDelta(eval.Value(), t.CurrentEvaluation().Value())

		tabu := t.memory.IsTabu(move, t.CurrentSolution())
		if tabu {
			aspires := bestEval != nil && t.ComputeDelta(eval.Value(), bestEval.Value()) > 0
			if !aspires {
				continue
			}
		}
		if best == nil || delta > best.delta {
			best = &scored{move: move, eval: eval, validation: validation, delta: delta}
		}
	}

	if best == nil {
		t.Stop()
		return nil
	}

	t.AcceptMove(best.move, best.eval, best.validation)
	t.memory.RegisterVisitedSolution(t.CurrentSolution(), best.move)
	return nil
}
