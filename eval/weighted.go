package eval

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
)

// WeightedTerm pairs a sub-objective with a positive weight.
type WeightedTerm struct {
	Objective search.Objective
	Weight    float64
}

// WeightedObjective composes a list of (sub-objective, positive weight)
// terms into a single, always-maximising objective: a minimising
// sub-objective's contribution is sign-inverted before weighting, so every
// term can be added.
//
// Grounded on engine/material.go's weighted, tapered blend of several
// evaluation terms (easychessanimations-zurichess) into one score.
type WeightedObjective struct {
	terms []WeightedTerm
}

// NewWeightedObjective builds a WeightedObjective from terms. Every weight
// must be strictly positive.
func NewWeightedObjective(terms ...WeightedTerm) (*WeightedObjective, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: weighted objective needs at least one term", search.ErrConfiguration)
	}
	for i, t := range terms {
		if t.Objective == nil {
			return nil, fmt.Errorf("%w: weighted objective term %d has a nil sub-objective", search.ErrConfiguration, i)
		}
		if t.Weight <= 0 {
			return nil, fmt.Errorf("%w: weighted objective term %d has non-positive weight %v", search.ErrConfiguration, i, t.Weight)
		}
	}
	return &WeightedObjective{terms: append([]WeightedTerm(nil), terms...)}, nil
}

// IsMinimizing always reports false: a WeightedObjective is always
// maximising, by construction.
func (w *WeightedObjective) IsMinimizing() bool { return false }

func (w *WeightedObjective) contribution(v float64, minimizing bool) float64 {
	if minimizing {
		return -v
	}
	return v
}

// Evaluate sums each term's sign-adjusted, weighted contribution. The
// returned Evaluation caches each term's raw value, so it can be fed
// straight back into EvaluateDelta as curEval.
func (w *WeightedObjective) Evaluate(sol search.Solution, data search.Data) search.Evaluation {
	var total float64
	terms := make([]float64, len(w.terms))
	for i, t := range w.terms {
		v := t.Objective.Evaluate(sol, data).Value()
		terms[i] = v
		total += t.Weight * w.contribution(v, t.Objective.IsMinimizing())
	}
	return weightedEvaluation{value: total, terms: terms}
}

// EvaluateDelta delta-evaluates every term that supports it; terms lacking
// DeltaObjective are fully re-evaluated for the new solution (the move is
// applied and undone around that re-evaluation so the caller's current
// solution is left untouched).
func (w *WeightedObjective) EvaluateDelta(move search.Move, curSol search.Solution, curEval search.Evaluation, data search.Data) (search.Evaluation, error) {
	curWeighted, ok := curEval.(weightedEvaluation)
	if !ok || len(curWeighted.terms) != len(w.terms) {
		return nil, fmt.Errorf("%w: weighted objective delta requires a matching cached evaluation", search.ErrIncompatibleDelta)
	}

	var total float64
	nextTerms := make([]float64, len(w.terms))
	for i, t := range w.terms {
		var nextValue float64
		if deltaObj, ok := t.Objective.(search.DeltaObjective); ok {
			e, err := deltaObj.EvaluateDelta(move, curSol, Simple(curWeighted.terms[i]), data)
			if err != nil {
				return nil, err
			}
			nextValue = e.Value()
		} else {
			move.Apply(curSol)
			nextValue = t.Objective.Evaluate(curSol, data).Value()
			move.Undo(curSol)
		}
		nextTerms[i] = nextValue
		total += t.Weight * w.contribution(nextValue, t.Objective.IsMinimizing())
	}
	return weightedEvaluation{value: total, terms: nextTerms}, nil
}

// weightedEvaluation caches each term's raw (pre-weight, pre-sign) value so
// a subsequent delta evaluation can pass the right baseline to each term's
// own DeltaObjective implementation.
type weightedEvaluation struct {
	value float64
	terms []float64
}

func (e weightedEvaluation) Value() float64 { return e.value }
