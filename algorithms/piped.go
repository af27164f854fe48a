package algorithms

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
)

// PipedLocalSearch chains an ordered list of inner local searches into a
// pipeline: each outer step feeds the current solution into the first
// stage, runs it to completion, feeds its best solution into the next
// stage's initial current solution, and so on; the final stage's best
// becomes the new outer current (and best) solution. It never
// self-terminates — repeated outer steps just re-run the whole pipeline
// from wherever it left off — so it requires an external stop criterion,
// same as RandomDescent and Metropolis.
//
// Grounded on engine/engine.go's Play loop composing iterative-deepening
// search and time control (easychessanimations-zurichess), re-targeted from
// one procedure wrapping another to an arbitrary chain of stage factories,
// reusing VNS's InnerLocalSearch/InnerSearchFactory types for each stage.
type PipedLocalSearch struct {
	*search.LocalSearch
	stages []InnerSearchFactory
}

// NewPipedLocalSearch builds a PipedLocalSearch over problem, running stages
// in order on every outer step. At least one stage is required.
func NewPipedLocalSearch(problem search.Problem, stages []InnerSearchFactory, opts ...search.Option) (*PipedLocalSearch, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("%w: piped local search needs at least one stage", search.ErrConfiguration)
	}
	for i, f := range stages {
		if f == nil {
			return nil, fmt.Errorf("%w: piped local search stage %d is nil", search.ErrConfiguration, i)
		}
	}
	p := &PipedLocalSearch{stages: append([]InnerSearchFactory(nil), stages...)}
	ls, err := search.NewLocalSearch("PipedLocalSearch", problem, p, opts...)
	if err != nil {
		return nil, err
	}
	p.LocalSearch = ls
	return p, nil
}

func (p *PipedLocalSearch) SearchStep() error {
	sol := p.Problem().Copy(p.CurrentSolution())
	var lastEval search.Evaluation

	for _, factory := range p.stages {
		inner, err := factory()
		if err != nil {
			return err
		}
		if err := inner.AddStopCriterion(outerTerminating{outer: p.Search}); err != nil {
			_ = inner.Dispose()
			return err
		}
		if err := inner.SetCurrentSolution(sol); err != nil {
			_ = inner.Dispose()
			return err
		}
		if err := inner.Start(); err != nil {
			_ = inner.Dispose()
			return err
		}

		stageBest := inner.BestSolution()
		stageEval := inner.BestEvaluation()
		if err := inner.Dispose(); err != nil {
			return err
		}

		if stageBest == nil {
			// This stage never found a valid solution; feed the same
			// solution it started with into the next stage.
			continue
		}
		sol = p.Problem().Copy(stageBest)
		lastEval = stageEval
	}

	if lastEval == nil {
		// No stage produced a result; nothing to adopt this step.
		return nil
	}

	// Every stage only ever reports already-validated bests, so this
	// adoption skips outer revalidation, the same as VNS's acceptance step.
	p.UpdateCurrentAndBestSolution(sol, lastEval, passedValidation{})
	return nil
}
