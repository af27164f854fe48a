package subset

import "github.com/go-optim/localsearch/search"

// AddMove adds a single element to the subset.
type AddMove struct{ ID int }

func (m AddMove) Apply(sol search.Solution) { sol.(*Solution).add(m.ID) }
func (m AddMove) Undo(sol search.Solution)  { sol.(*Solution).remove(m.ID) }

func (m AddMove) Equal(other search.Move) bool {
	o, ok := other.(AddMove)
	return ok && o.ID == m.ID
}

func (m AddMove) Hash() uint64 { return uint64(m.ID)*2 + 1 }

// AddedElement satisfies tabumemory.ElementMove.
func (m AddMove) AddedElement() (int, bool) { return m.ID, true }

// RemovedElement satisfies tabumemory.ElementMove.
func (m AddMove) RemovedElement() (int, bool) { return 0, false }

// RemoveMove removes a single element from the subset.
type RemoveMove struct{ ID int }

func (m RemoveMove) Apply(sol search.Solution) { sol.(*Solution).remove(m.ID) }
func (m RemoveMove) Undo(sol search.Solution)  { sol.(*Solution).add(m.ID) }

func (m RemoveMove) Equal(other search.Move) bool {
	o, ok := other.(RemoveMove)
	return ok && o.ID == m.ID
}

func (m RemoveMove) Hash() uint64 { return uint64(m.ID)*2 + 2 }

func (m RemoveMove) AddedElement() (int, bool) { return 0, false }

func (m RemoveMove) RemovedElement() (int, bool) { return m.ID, true }

// SwapMove removes one element and adds another in its place, useful for
// neighbourhoods constrained to a fixed subset size (see FixedSizeConstraint)
// where a plain add or remove would always be inadmissible.
type SwapMove struct {
	In, Out int
}

func (m SwapMove) Apply(sol search.Solution) {
	s := sol.(*Solution)
	s.remove(m.Out)
	s.add(m.In)
}

func (m SwapMove) Undo(sol search.Solution) {
	s := sol.(*Solution)
	s.remove(m.In)
	s.add(m.Out)
}

func (m SwapMove) Equal(other search.Move) bool {
	o, ok := other.(SwapMove)
	return ok && o.In == m.In && o.Out == m.Out
}

func (m SwapMove) Hash() uint64 {
	return uint64(m.In)*1000003 + uint64(m.Out)*3 + 1
}

func (m SwapMove) AddedElement() (int, bool) { return m.In, true }

func (m SwapMove) RemovedElement() (int, bool) { return m.Out, true }
