package subset

import (
	"fmt"

	"github.com/go-optim/localsearch/search"
)

// capacityValidation carries the running total weight alongside the
// pass/fail outcome, so ValidateDelta can adjust it incrementally instead
// of re-summing every item on every move.
type capacityValidation struct {
	ok     bool
	weight float64
}

func (v capacityValidation) Passed() bool { return v.ok }

// CapacityConstraint mandates that the total weight of the selected
// elements not exceed Capacity.
//
// Grounded on engine/see.go's running-total delta idiom
// (easychessanimations-zurichess: static exchange evaluation updates a
// running material total move by move rather than re-scanning the board).
type CapacityConstraint struct {
	Capacity float64
}

func (c CapacityConstraint) Validate(sol search.Solution, data search.Data) search.Validation {
	s := sol.(*Solution)
	it := data.(items)
	w := it.totalWeight(s)
	return capacityValidation{ok: w <= c.Capacity, weight: w}
}

func (c CapacityConstraint) ValidateDelta(move search.Move, curSol search.Solution, curValidation search.Validation, data search.Data) (search.Validation, error) {
	cv, ok := curValidation.(capacityValidation)
	if !ok {
		return nil, fmt.Errorf("%w: CapacityConstraint requires its own prior validation", search.ErrIncompatibleDelta)
	}
	it := data.(items)
	w := cv.weight
	switch m := move.(type) {
	case AddMove:
		w += it[m.ID].Weight
	case RemoveMove:
		w -= it[m.ID].Weight
	case SwapMove:
		w += it[m.In].Weight - it[m.Out].Weight
	default:
		return nil, fmt.Errorf("%w: CapacityConstraint cannot delta-validate %T", search.ErrIncompatibleDelta, move)
	}
	return capacityValidation{ok: w <= c.Capacity, weight: w}, nil
}

// sizeValidation carries the running subset size alongside the pass/fail
// outcome, mirroring capacityValidation.
type sizeValidation struct {
	ok   bool
	size int
}

func (v sizeValidation) Passed() bool { return v.ok }

// FixedSizeConstraint mandates that the subset contain exactly K elements.
// Intended to be paired with NewSwapNeighbourhood, whose moves never change
// |subset|.
type FixedSizeConstraint struct {
	K int
}

func (c FixedSizeConstraint) Validate(sol search.Solution, data search.Data) search.Validation {
	s := sol.(*Solution)
	n := s.Size()
	return sizeValidation{ok: n == c.K, size: n}
}

func (c FixedSizeConstraint) ValidateDelta(move search.Move, curSol search.Solution, curValidation search.Validation, data search.Data) (search.Validation, error) {
	cv, ok := curValidation.(sizeValidation)
	if !ok {
		return nil, fmt.Errorf("%w: FixedSizeConstraint requires its own prior validation", search.ErrIncompatibleDelta)
	}
	n := cv.size
	switch move.(type) {
	case AddMove:
		n++
	case RemoveMove:
		n--
	case SwapMove:
		// size unchanged
	default:
		return nil, fmt.Errorf("%w: FixedSizeConstraint cannot delta-validate %T", search.ErrIncompatibleDelta, move)
	}
	return sizeValidation{ok: n == c.K, size: n}, nil
}
