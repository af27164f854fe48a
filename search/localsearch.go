package search

import "sync"

// LocalSearch adds a current solution, retained across runs, to the base
// Search capability. Concrete algorithms that work by repeatedly perturbing
// a single working point (as opposed to RandomSearch, which only ever looks
// at freshly sampled solutions) embed *LocalSearch.
//
// Grounded on engine/engine.go's Engine.Position/DoMove/UndoMove trio
// (easychessanimations-zurichess): a single retained working state that
// every step mutates and, on rejection, restores.
type LocalSearch struct {
	*Search

	curMu         sync.RWMutex
	curSol        Solution
	curEval       Evaluation
	curValidation Validation
	everSeeded    bool
}

// NewLocalSearch builds the base Search plus current-solution capability.
// stepper is the concrete algorithm; it is both the Search's Stepper and,
// typically, the value whose embedded *LocalSearch this call initializes.
func NewLocalSearch(name string, problem Problem, stepper Stepper, opts ...Option) (*LocalSearch, error) {
	base, err := newSearch(name, problem, stepper, opts...)
	if err != nil {
		return nil, err
	}
	return &LocalSearch{Search: base}, nil
}

// CurrentSolution returns the current working solution, or nil if none has
// been set or seeded yet.
func (ls *LocalSearch) CurrentSolution() Solution {
	ls.curMu.RLock()
	defer ls.curMu.RUnlock()
	return ls.curSol
}

// CurrentEvaluation returns the evaluation paired with CurrentSolution.
func (ls *LocalSearch) CurrentEvaluation() Evaluation {
	ls.curMu.RLock()
	defer ls.curMu.RUnlock()
	return ls.curEval
}

// CurrentValidation returns the validation paired with CurrentSolution.
func (ls *LocalSearch) CurrentValidation() Validation {
	ls.curMu.RLock()
	defer ls.curMu.RUnlock()
	return ls.curValidation
}

// SetCurrentSolution installs sol as the current solution, evaluating and
// validating it from scratch, and updates the best solution if it is valid
// and improving. Requires IDLE.
func (ls *LocalSearch) SetCurrentSolution(sol Solution) error {
	if err := ls.assertIdle("set current solution"); err != nil {
		return err
	}
	eval := ls.Problem().Evaluate(sol)
	validation := ls.Problem().Validate(sol)
	ls.installCurrent(sol, eval, validation)
	ls.everSeeded = true
	ls.updateBestSolution(sol, eval, validation)
	return nil
}

// installCurrent replaces the current solution/evaluation/validation
// without any validity gate, then fires NewCurrentSolution.
func (ls *LocalSearch) installCurrent(sol Solution, eval Evaluation, validation Validation) {
	ls.curMu.Lock()
	ls.curSol, ls.curEval, ls.curValidation = sol, eval, validation
	ls.curMu.Unlock()
	ls.fireListeners(func(l Listener) { l.NewCurrentSolution(ls.Search, sol, eval, validation) })
}

// UpdateCurrentSolution is the subtype-internal primitive: it always
// replaces the current solution (no validity gate).
func (ls *LocalSearch) UpdateCurrentSolution(sol Solution, eval Evaluation, validation Validation) {
	ls.installCurrent(sol, eval, validation)
}

// UpdateCurrentAndBestSolution always updates the current solution, and
// additionally updates the best solution following the same accept rule as
// updateBestSolution.
func (ls *LocalSearch) UpdateCurrentAndBestSolution(sol Solution, eval Evaluation, validation Validation) bool {
	ls.installCurrent(sol, eval, validation)
	return ls.updateBestSolution(sol, eval, validation)
}

// OnSearchStarted seeds a fresh random current solution the first time this
// LocalSearch ever runs, if none was set via SetCurrentSolution beforehand.
// Subsequent runs retain whatever current solution the previous run left
// behind. Algorithms that need additional start-up behaviour
// should implement their own OnSearchStarted and call this one explicitly.
func (ls *LocalSearch) OnSearchStarted(s *Search) error {
	if ls.everSeeded {
		return nil
	}
	ls.everSeeded = true
	sol := ls.Problem().CreateRandomSolution()
	eval := ls.Problem().Evaluate(sol)
	validation := ls.Problem().Validate(sol)
	ls.installCurrent(sol, eval, validation)
	ls.updateBestSolution(sol, eval, validation)
	return nil
}
