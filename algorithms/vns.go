package algorithms

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
)

// InnerLocalSearch is the slice of a LocalSearch-capable algorithm VNS
// needs from the search it builds fresh on every shake: seed a current
// solution, run it to completion, read back its best, then discard it.
// *search.LocalSearch (and anything embedding it, i.e. every algorithm in
// this package except RandomSearch) satisfies this
// interface through promoted methods.
type InnerLocalSearch interface {
	SetCurrentSolution(sol search.Solution) error
	AddStopCriterion(c search.StopCriterion) error
	Start() error
	Dispose() error
	BestSolution() search.Solution
	BestEvaluation() search.Evaluation
}

// InnerSearchFactory builds a fresh inner local search for VNS to run after
// each shake. A fresh instance is required per shake because VNS disposes
// each inner search once it has read back that search's best solution.
type InnerSearchFactory func() (InnerLocalSearch, error)

// outerTerminating is a StopCriterion that fires once the outer VNS search
// it watches has been asked to stop, so an inner local search that would
// otherwise run indefinitely (e.g. RandomDescent with no stop criterion of
// its own) unwinds promptly when the outer search does.
type outerTerminating struct{ outer *search.Search }

func (o outerTerminating) ShouldStop(s *search.Search) bool {
	return o.outer.Status() == search.Terminating
}

// VNS (variable-neighbourhood search) shakes the current solution with a
// random move from one of L_s shaking neighbourhoods, runs a fresh inner
// local search from the shaken point, and adopts its result if it improves
// on the current solution; otherwise it cycles to the next shaking
// neighbourhood. It never self-terminates (shaking neighbourhoods cycle
// indefinitely), so it requires an external stop criterion.
//
// Grounded on engine/engine.go's Play loop (the "try progressively more, in
// an ordered list, until the budget says stop" shape), re-targeted from
// search depths to shaking-neighbourhood strengths, with the inner
// "local search" itself built via InnerSearchFactory instead of being a
// single recursive call (VNS embeds a whole local search).
type VNS struct {
	*search.LocalSearch
	shaking []search.Neighbourhood
	factory InnerSearchFactory
	s       int
}

// NewVNS builds a VNS over problem, shaking with the given neighbourhoods
// in order and running factory's inner local search after each shake.
func NewVNS(problem search.Problem, shaking []search.Neighbourhood, factory InnerSearchFactory, opts ...search.Option) (*VNS, error) {
	if len(shaking) == 0 {
		return nil, fmt.Errorf("%w: VNS needs at least one shaking neighbourhood", search.ErrConfiguration)
	}
	for i, n := range shaking {
		if n == nil {
			return nil, fmt.Errorf("%w: VNS shaking neighbourhood %d is nil", search.ErrConfiguration, i)
		}
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: nil inner search factory", search.ErrConfiguration)
	}
	v := &VNS{shaking: append([]search.Neighbourhood(nil), shaking...), factory: factory}
	ls, err := search.NewLocalSearch("VNS", problem, v, opts...)
	if err != nil {
		return nil, err
	}
	v.LocalSearch = ls
	return v, nil
}

// OnSearchStarted resets the shaking index alongside LocalSearch's own
// current-solution seeding.
func (v *VNS) OnSearchStarted(s *search.Search) error {
	v.s = 0
	return v.LocalSearch.OnSearchStarted(s)
}

func (v *VNS) SearchStep() error {
	nbh := v.shaking[v.s]
	shaken := v.Problem().Copy(v.CurrentSolution())
	move, ok := nbh.RandomMove(shaken)
	if !ok {
		v.advance()
		return nil
	}
	move.Apply(shaken)

	inner, err := v.factory()
	if err != nil {
		return err
	}
	if err := inner.AddStopCriterion(outerTerminating{outer: v.Search}); err != nil {
		return err
	}
	if err := inner.SetCurrentSolution(shaken); err != nil {
		return err
	}
	if err := inner.Start(); err != nil {
		_ = inner.Dispose()
		return err
	}

	innerBestSol := inner.BestSolution()
	innerBestEval := inner.BestEvaluation()
	disposeErr := inner.Dispose()

	if innerBestSol == nil {
		v.advance()
		return disposeErr
	}

	delta := v.ComputeDelta(innerBestEval.Value(), v.CurrentEvaluation().Value())
	if delta > 0 {
		// The inner local search only ever accepted validated solutions as
		// its own best, so this adoption skips outer revalidation.
		v.UpdateCurrentAndBestSolution(v.Problem().Copy(innerBestSol), innerBestEval, passedValidation{})
		v.s = 0
	} else {
		v.advance()
	}
	return disposeErr
}

func (v *VNS) advance() {
	v.s++
	if v.s >= len(v.shaking) {
		v.s = 0
	}
}
