package subset

import (
	"fmt"

	"github.com/go-optim/localsearch/eval"
	"github.com/go-optim/localsearch/search"
)

// KnapsackObjective maximises the total profit of the selected elements.
//
// Grounded on engine/material.go's incremental piece-value scoring
// (easychessanimations-zurichess): a scalar that a move adjusts by a
// per-element delta instead of being recomputed from scratch.
type KnapsackObjective struct{}

func (KnapsackObjective) IsMinimizing() bool { return false }

func (KnapsackObjective) Evaluate(sol search.Solution, data search.Data) search.Evaluation {
	s := sol.(*Solution)
	it := data.(items)
	return eval.Simple(it.totalProfit(s))
}

func (o KnapsackObjective) EvaluateDelta(move search.Move, curSol search.Solution, curEval search.Evaluation, data search.Data) (search.Evaluation, error) {
	it := data.(items)
	v := curEval.Value()
	switch m := move.(type) {
	case AddMove:
		v += it[m.ID].Profit
	case RemoveMove:
		v -= it[m.ID].Profit
	case SwapMove:
		v += it[m.In].Profit - it[m.Out].Profit
	default:
		return nil, fmt.Errorf("%w: KnapsackObjective cannot delta-evaluate %T", search.ErrIncompatibleDelta, move)
	}
	return eval.Simple(v), nil
}
