package subset

import "sort"

// GreedyBaseline builds a solution by profit-density (profit/weight)
// ordering, used only by tests as the baseline a local search is expected
// to match or beat.
//
// Grounded on engine/move_ordering.go's score-then-sort candidate ranking
// (easychessanimations-zurichess), applied here to items instead of moves.
func GreedyBaseline(p *Problem) *Solution {
	order := make([]int, p.NumItems())
	for i := range order {
		order[i] = i
	}
	density := func(id int) float64 {
		it := p.items[id]
		if it.Weight == 0 {
			return it.Profit
		}
		return it.Profit / it.Weight
	}
	sort.Slice(order, func(i, j int) bool { return density(order[i]) > density(order[j]) })

	sol := NewSolution(p.NumItems())

	if p.fixedSize > 0 {
		k := p.fixedSize
		if k > len(order) {
			k = len(order)
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
