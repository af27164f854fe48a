package subset

import (
	"fmt"
	"math/rand"

	"github.com/go-optim/localsearch/eval"
	"github.com/go-optim/localsearch/search"
)

// Problem is a 0/1 knapsack: select a subset of items maximising total
// profit subject to a capacity constraint and, optionally, a fixed subset
// size. It implements search.Problem.
//
// Grounded on engine/engine.go's Options/engine-state composition
// (easychessanimations-zurichess): a small struct binding together the
// immutable problem data (items), the objective/constraints built from it,
// and a private rng for CreateRandomSolution.
type Problem struct {
	items     items
	capacity  float64
	fixedSize int // 0 means no fixed-size constraint
	objective KnapsackObjective
	rng       *rand.Rand
}

// NewProblem builds a capacity-constrained knapsack problem over itemsIn.
func NewProblem(itemsIn []Item, capacity float64, rng *rand.Rand) *Problem {
	return newProblem(itemsIn, capacity, 0, rng)
}

// NewFixedSizeProblem builds a knapsack problem additionally constrained to
// subsets of exactly k elements.
func NewFixedSizeProblem(itemsIn []Item, capacity float64, k int, rng *rand.Rand) *Problem {
	return newProblem(itemsIn, capacity, k, rng)
}

func newProblem(itemsIn []Item, capacity float64, fixedSize int, rng *rand.Rand) *Problem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	cp := make(items, len(itemsIn))
	copy(cp, itemsIn)
	return &Problem{items: cp, capacity: capacity, fixedSize: fixedSize, rng: rng}
}

// NumItems returns the size of the universe.
func (p *Problem) NumItems() int { return len(p.items) }

// Item returns the weight/profit pair for id.
func (p *Problem) Item(id int) Item { return p.items[id] }

// Capacity returns the configured capacity bound.
func (p *Problem) Capacity() float64 { return p.capacity }

// FixedSize returns the mandatory subset size, or 0 if unconstrained.
func (p *Problem) FixedSize() int { return p.fixedSize }

func (p *Problem) capacityConstraint() CapacityConstraint { return CapacityConstraint{Capacity: p.capacity} }

func (p *Problem) sizeConstraint() FixedSizeConstraint {
	return FixedSizeConstraint{K: p.fixedSize}
}

func (p *Problem) CreateRandomSolution() search.Solution {
	n := len(p.items)
	order := p.rng.Perm(n)
	sol := NewSolution(n)

	if p.fixedSize > 0 {
		k := p.fixedSize
		if k > n {
			k = n
		}
		for _, id := range order[:k] {
			sol.add(id)
		}
		return sol
	}

	var weight float64
	for _, id := range order {
		w := p.items[id].Weight
		if weight+w <= p.capacity {
			sol.add(id)
			weight += w
		}
	}
	return sol
}

func (p *Problem) Evaluate(sol search.Solution) search.Evaluation {
	return p.objective.Evaluate(sol, p.items)
}

func (p *Problem) EvaluateMove(move search.Move, curSol search.Solution, curEval search.Evaluation) (search.Evaluation, error) {
	return p.objective.EvaluateDelta(move, curSol, curEval, p.items)
}

func (p *Problem) Validate(sol search.Solution) search.Validation {
	u := eval.NewUnanimous()
	u.Record("capacity", p.capacityConstraint().Validate(sol, p.items))
	if p.fixedSize > 0 {
		u.Record("size", p.sizeConstraint().Validate(sol, p.items))
	}
	return u
}

func (p *Problem) ValidateMove(move search.Move, curSol search.Solution, curValidation search.Validation) (search.Validation, error) {
	cur, ok := curValidation.(*eval.Unanimous)
	if !ok {
		return nil, fmt.Errorf("%w: subset.Problem requires its own prior validation", search.ErrIncompatibleDelta)
	}
	next := eval.NewUnanimous()

	capPrev, _ := cur.Get("capacity")
	capNext, err := p.capacityConstraint().ValidateDelta(move, curSol, capPrev, p.items)
	if err != nil {
		return nil, err
	}
	next.Record("capacity", capNext)

	if p.fixedSize > 0 {
		sizePrev, _ := cur.Get("size")
		sizeNext, err := p.sizeConstraint().ValidateDelta(move, curSol, sizePrev, p.items)
		if err != nil {
			return nil, err
		}
		next.Record("size", sizeNext)
	}

	return next, nil
}

func (p *Problem) IsMinimizing() bool { return false }

func (p *Problem) Copy(sol search.Solution) search.Solution { return sol.Copy() }
