package subset

// Item is one element of the universe: a weight/profit pair, the payload
// every objective and constraint in this package reads through
// search.Problem's Data plumbing.
type Item struct {
	Weight float64
	Profit float64
}

// items implements search.Data: the immutable-during-a-run item universe
// every Objective/Constraint in this package is evaluated against.
type items []Item

func (it items) totalWeight(s *Solution) float64 {
	var total float64
	s.Each(func(id int) { total += it[id].Weight })
	return total
}

func (it items) totalProfit(s *Solution) float64 {
	var total float64
	s.Each(func(id int) { total += it[id].Profit })
	return total
}
