// Package tabumemory provides the pluggable TabuMemory implementations used
// by the tabu search algorithm: a full-solution FIFO variant and a
// move-attribute (element id) variant for subset-style problems.
//
// Grounded on engine/hash_table.go's fixed-capacity replacement table
// (easychessanimations-zurichess), adapted from a replace-on-collision hash
// table to a FIFO of full solutions, and to a per-id tenure map.
package tabumemory

import "github.com/go-optim/localsearch/search"

// Memory is the contract tabu search drives: membership queries and
// registration of newly visited solutions.
type Memory interface {
	// IsTabu reports whether applying move to current would revisit a
	// tabu state/attribute.
	IsTabu(move search.Move, current search.Solution) bool
	// RegisterVisitedSolution records that newCurrent was reached by
	// applying appliedMove.
	RegisterVisitedSolution(newCurrent search.Solution, appliedMove search.Move)
	// Clear empties the memory.
	Clear()
}
