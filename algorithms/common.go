package algorithms

import "github.com/go-optim/localsearch/search"

// passedValidation is a trivial, always-passing search.Validation used
// where a caller already knows, by construction, that a solution is valid
// (e.g. adopting another search's already-validated best solution) and has
// no original Validation value at hand to reuse.
type passedValidation struct{}

func (passedValidation) Passed() bool { return true }

// evaluateAndCheckImprovement delta-evaluates and delta-validates move
// exactly once, and reports whether it qualifies as an improvement per the
// same rule as search.NeighbourhoodSearch.IsImprovement, so callers that
// need the cached evaluation/validation for AcceptMove don't have to
// recompute it.
func evaluateAndCheckImprovement(ns *search.NeighbourhoodSearch, move search.Move) (eval search.Evaluation, validation search.Validation, improving bool, err error) {
	eval, err = ns.EvaluateMove(move)
	if err != nil {
		return nil, nil, false, err
	}
	validation, err = ns.ValidateMove(move)
	if err != nil {
		return nil, nil, false, err
	}
	if !validation.Passed() {
		return eval, validation, false, nil
	}
	curValidation := ns.CurrentValidation()
	if curValidation == nil || !curValidation.Passed() {
		return eval, validation, true, nil
	}
	delta := ns.ComputeDelta(eval.Value(), ns.CurrentEvaluation().Value())
	return eval, validation, delta > 0, nil
}
