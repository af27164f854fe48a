package tabumemory

import (
	"fmt"
	"sync"

	"github.com/go-optim/localsearch/search"
)

// Full is a tabu memory holding deep copies of the capacity most recently
// visited solutions, in FIFO order. IsTabu temporarily applies the
// candidate move to current, checks membership by Solution.Equal, then
// undoes it, leaving current untouched.
//
// Grounded on engine/hash_table.go's HashTable (a fixed-size slice indexed
// modulo its size, with unconditional replace-on-insert), adapted from a
// hash-indexed replacement table to a FIFO ring buffer of full solutions
// since a tabu list must never report a false negative for a recently
// visited exact solution.
type Full struct {
	mu       sync.Mutex
	capacity int
	ring     []search.Solution
	next     int
	size     int
}

// NewFull builds a Full tabu memory retaining the capacity most recent
// solutions. capacity must be positive.
func NewFull(capacity int) (*Full, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: tabu memory capacity must be positive, got %d", search.ErrConfiguration, capacity)
	}
	return &Full{capacity: capacity, ring: make([]search.Solution, capacity)}, nil
}

func (f *Full) IsTabu(move search.Move, current search.Solution) bool {
	move.Apply(current)
	defer move.Undo(current)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < f.size; i++ {
		if f.ring[i].Equal(current) {
			return true
		}
	}
	return false
}

func (f *Full) RegisterVisitedSolution(newCurrent search.Solution, _ search.Move) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ring[f.next] = newCurrent.Copy()
	f.next = (f.next + 1) % f.capacity
	if f.size < f.capacity {
		f.size++
	}
}

func (f *Full) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ring = make([]search.Solution, f.capacity)
	f.next = 0
	f.size = 0
}
