package tabumemory

import (
	"fmt"
	"sync"

	"github.com/go-optim/localsearch/search"
)

// ElementMove is implemented by moves of problems whose solutions are
// built from discrete, identifiable elements (e.g. subset selection): it
// reports which element id, if any, the move adds or removes. IDMemory
// type-asserts candidate moves to this interface.
type ElementMove interface {
	// AddedElement returns the id added by this move, if any.
	AddedElement() (id int, ok bool)
	// RemovedElement returns the id removed by this move, if any.
	RemovedElement() (id int, ok bool)
}

// IDMemory is a move-attribute tabu memory for subset-style problems: it
// forbids re-adding a just-removed element (and re-removing a just-added
// one) for a fixed tenure, measured in registered visits.
//
// Grounded on engine/hash_table.go's bounded, automatically-evicted entry
// table, keyed here by element id instead of position hash, with an
// explicit tenure countdown standing in for the hash table's implicit
// age-based eviction.
type IDMemory struct {
	mu     sync.Mutex
	tenure int
	added  map[int]int // id -> visit count at which the add-tabu expires
	removed map[int]int
	visit  int
}

// NewIDMemory builds an IDMemory with the given tenure (number of registered
// visits an id stays tabu for). tenure must be positive.
func NewIDMemory(tenure int) (*IDMemory, error) {
	if tenure <= 0 {
		return nil, fmt.Errorf("%w: tabu tenure must be positive, got %d", search.ErrConfiguration, tenure)
	}
	return &IDMemory{
		tenure:  tenure,
		added:   make(map[int]int),
		removed: make(map[int]int),
	}, nil
}

// IsTabu reports whether move would re-add a recently removed element, or
// re-remove a recently added one. Moves that don't implement ElementMove are
// never tabu.
func (m *IDMemory) IsTabu(move search.Move, _ search.Solution) bool {
	em, ok := move.(ElementMove)
	if !ok {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := em.AddedElement(); ok {
		if expiry, tabu := m.removed[id]; tabu && m.visit < expiry {
			return true
		}
	}
	if id, ok := em.RemovedElement(); ok {
		if expiry, tabu := m.added[id]; tabu && m.visit < expiry {
			return true
		}
	}
	return false
}

// RegisterVisitedSolution records the elements appliedMove added/removed,
// making them tabu (in the opposite direction) for the configured tenure.
func (m *IDMemory) RegisterVisitedSolution(_ search.Solution, appliedMove search.Move) {
	em, ok := appliedMove.(ElementMove)
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visit++
	if id, ok := em.AddedElement(); ok {
		m.added[id] = m.visit + m.tenure
	}
	if id, ok := em.RemovedElement(); ok {
		m.removed[id] = m.visit + m.tenure
	}
}

func (m *IDMemory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.added = make(map[int]int)
	m.removed = make(map[int]int)
	m.visit = 0
}
