// Package algorithms provides the concrete search_step implementations,
// each a small struct embedding the search capability it needs
// (search.Search, search.LocalSearch or search.NeighbourhoodSearch) and
// implementing search.Stepper.
package algorithms

import "github.com/go-optim/localsearch/search"

// RandomSearch samples a fresh random solution every step and keeps it if
// it improves on the best solution seen so far. It needs no current
// solution, so it embeds *search.Search directly rather than LocalSearch.
//
// Grounded on search.Search.UpdateBestSolution directly: a fixed-position
// alpha-beta searcher has no analogous "no working point" algorithm, so
// this is built straight from the accept-if-improving rule.
type RandomSearch struct {
	*search.Search
}

// NewRandomSearch builds a RandomSearch over problem.
func NewRandomSearch(problem search.Problem, opts ...search.Option) (*RandomSearch, error) {
	rs := &RandomSearch{}
	base, err := search.New("RandomSearch", problem, rs, opts...)
	if err != nil {
		return nil, err
	}
	rs.Search = base
	return rs, nil
}

func (rs *RandomSearch) SearchStep() error {
	sol := rs.Problem().CreateRandomSolution()
	eval := rs.Problem().Evaluate(sol)
	validation := rs.Problem().Validate(sol)
	rs.UpdateBestSolution(sol, eval, validation)
	return nil
}
