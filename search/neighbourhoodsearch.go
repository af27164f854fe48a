package search

import "sync/atomic"

// NeighbourhoodSearch adds accepted/rejected move counters and the
// accept/reject helpers shared by every algorithm that explores a
// Neighbourhood around the current solution.
//
// Grounded on engine/engine.go's DoMove/UndoMove/Score sequence
// (easychessanimations-zurichess): apply speculatively, evaluate, either
// keep the mutation or undo it.
type NeighbourhoodSearch struct {
	*LocalSearch

	numAccepted uint64
	numRejected uint64
}

// NewNeighbourhoodSearch builds the base Search and current-solution
// capability plus the accept/reject counters.
func NewNeighbourhoodSearch(name string, problem Problem, stepper Stepper, opts ...Option) (*NeighbourhoodSearch, error) {
	ls, err := NewLocalSearch(name, problem, stepper, opts...)
	if err != nil {
		return nil, err
	}
	return &NeighbourhoodSearch{LocalSearch: ls}, nil
}

// NumAcceptedMoves returns the number of moves accepted since the search
// was constructed.
func (ns *NeighbourhoodSearch) NumAcceptedMoves() uint64 {
	return atomic.LoadUint64(&ns.numAccepted)
}

// NumRejectedMoves returns the number of moves rejected since the search
// was constructed.
func (ns *NeighbourhoodSearch) NumRejectedMoves() uint64 {
	return atomic.LoadUint64(&ns.numRejected)
}

// EvaluateMove delta-evaluates move against the current solution's cached
// evaluation, without mutating the current solution.
func (ns *NeighbourhoodSearch) EvaluateMove(move Move) (Evaluation, error) {
	return ns.Problem().EvaluateMove(move, ns.CurrentSolution(), ns.CurrentEvaluation())
}

// ValidateMove delta-validates move against the current solution's cached
// validation, without mutating the current solution.
func (ns *NeighbourhoodSearch) ValidateMove(move Move) (Validation, error) {
	return ns.Problem().ValidateMove(move, ns.CurrentSolution(), ns.CurrentValidation())
}

// IsImprovement reports whether move is an improving, valid move over the
// current solution: its validation must pass, and either the current
// solution's own validation does not pass (any valid neighbour of an
// invalid state is an improvement) or the move's delta is strictly
// positive. See DESIGN.md's zero-delta decision: a delta of exactly zero is
// not an improvement.
func (ns *NeighbourhoodSearch) IsImprovement(move Move) (bool, error) {
	eval, err := ns.EvaluateMove(move)
	if err != nil {
		return false, err
	}
	validation, err := ns.ValidateMove(move)
	if err != nil {
		return false, err
	}
	if !validation.Passed() {
		return false, nil
	}
	curValidation := ns.CurrentValidation()
	if curValidation == nil || !curValidation.Passed() {
		return true, nil
	}
	delta := ns.computeDelta(eval.Value(), ns.CurrentEvaluation().Value())
	return delta > 0, nil
}

// candidateResult pairs a candidate move with its delta-evaluation and
// delta-validation, cached so accepting it never re-evaluates from scratch.
type candidateResult struct {
	move       Move
	eval       Evaluation
	validation Validation
	delta      float64
}

// evaluateCandidates delta-evaluates and delta-validates every candidate
// against the current solution.
func (ns *NeighbourhoodSearch) evaluateCandidates(candidates []Move) ([]candidateResult, error) {
	curEval := ns.CurrentEvaluation()
	results := make([]candidateResult, 0, len(candidates))
	for _, m := range candidates {
		eval, err := ns.Problem().EvaluateMove(m, ns.CurrentSolution(), curEval)
		if err != nil {
			return nil, err
		}
		validation, err := ns.Problem().ValidateMove(m, ns.CurrentSolution(), ns.CurrentValidation())
		if err != nil {
			return nil, err
		}
		results = append(results, candidateResult{
			move:       m,
			eval:       eval,
			validation: validation,
			delta:      ns.computeDelta(eval.Value(), curEval.Value()),
		})
	}
	return results, nil
}

// BestMove returns the candidate maximising the direction-adjusted delta
// among those whose validation passes, breaking ties in enumeration order.
// If improvementRequired is true, a candidate additionally qualifies only
// per the same rule as IsImprovement. Returns ok=false if no candidate
// qualifies.
func (ns *NeighbourhoodSearch) BestMove(candidates []Move, improvementRequired bool) (move Move, eval Evaluation, validation Validation, ok bool, err error) {
	results, err := ns.evaluateCandidates(candidates)
	if err != nil {
		return nil, nil, nil, false, err
	}

	curValidation := ns.CurrentValidation()
	curInvalid := curValidation == nil || !curValidation.Passed()

	var best *candidateResult
	for i := range results {
		r := &results[i]
		if !r.validation.Passed() {
			continue
		}
		qualifies := !improvementRequired || curInvalid || r.delta > 0
		if !qualifies {
			continue
		}
		if best == nil || r.delta > best.delta {
			best = r
		}
	}
	if best == nil {
		return nil, nil, nil, false, nil
	}
	return best.move, best.eval, best.validation, true, nil
}

// AcceptMove applies move to the current solution, then updates the
// current (and possibly best) solution from the cached delta-evaluation and
// delta-validation already computed for it, so the problem is never asked
// to re-evaluate the resulting solution from scratch. Increments
// NumAcceptedMoves.
func (ns *NeighbourhoodSearch) AcceptMove(move Move, eval Evaluation, validation Validation) {
	sol := ns.CurrentSolution()
	move.Apply(sol)
	ns.UpdateCurrentAndBestSolution(sol, eval, validation)
	atomic.AddUint64(&ns.numAccepted, 1)
}

// RejectMove increments NumRejectedMoves. Callers that speculatively
// applied move to the current solution must Undo it before calling
// RejectMove.
func (ns *NeighbourhoodSearch) RejectMove() {
	atomic.AddUint64(&ns.numRejected, 1)
}
