package tabumemory

import (
	"errors"
	"testing"

	"github.com/go-optim/localsearch/search"
)

type elementMove struct {
	added, removed   int
	hasAdd, hasRemove bool
}

func (m elementMove) Apply(search.Solution)        {}
func (m elementMove) Undo(search.Solution)         {}
func (m elementMove) Equal(other search.Move) bool { return true }
func (m elementMove) Hash() uint64                 { return 0 }
func (m elementMove) AddedElement() (int, bool)    { return m.added, m.hasAdd }
func (m elementMove) RemovedElement() (int, bool)  { return m.removed, m.hasRemove }

func TestNewIDMemory_RejectsNonPositiveTenure(t *testing.T) {
	if _, err := NewIDMemory(0); !errors.Is(err, search.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestIDMemory_ForbidsReversingRecentMove(t *testing.T) {
	m, err := NewIDMemory(2)
	if err != nil {
		t.Fatalf("NewIDMemory: %v", err)
	}
	addMove5 := elementMove{added: 5, hasAdd: true}
	m.RegisterVisitedSolution(nil, addMove5)

	removeMove5 := elementMove{removed: 5, hasRemove: true}
	if !m.IsTabu(removeMove5, nil) {
		t.Fatal("re-removing a just-added element should be tabu")
	}
}

func TestIDMemory_ExpiresAfterTenure(t *testing.T) {
	m, err := NewIDMemory(1)
	if err != nil {
		t.Fatalf("NewIDMemory: %v", err)
	}
	addMove5 := elementMove{added: 5, hasAdd: true}
	m.RegisterVisitedSolution(nil, addMove5)

	removeMove5 := elementMove{removed: 5, hasRemove: true}
	// Still within tenure right after registration.
	if !m.IsTabu(removeMove5, nil) {
		t.Fatal("expected tabu immediately after registration")
	}

	// Advance the visit counter past the tenure with an unrelated move.
	m.RegisterVisitedSolution(nil, elementMove{added: 99, hasAdd: true})
	if m.IsTabu(removeMove5, nil) {
		t.Fatal("tabu status should have expired after tenure visits")
	}
}

func TestIDMemory_IgnoresNonElementMoves(t *testing.T) {
	m, err := NewIDMemory(5)
	if err != nil {
		t.Fatalf("NewIDMemory: %v", err)
	}
	if m.IsTabu(plainMove{}, nil) {
		t.Fatal("a move that doesn't implement ElementMove is never tabu")
	}
}

type plainMove struct{}

func (plainMove) Apply(search.Solution)    {}
func (plainMove) Undo(search.Solution)     {}
func (plainMove) Equal(search.Move) bool   { return false }
func (plainMove) Hash() uint64             { return 0 }

func TestIDMemory_Clear(t *testing.T) {
	m, err := NewIDMemory(5)
	if err != nil {
		t.Fatalf("NewIDMemory: %v", err)
	}
	m.RegisterVisitedSolution(nil, elementMove{added: 1, hasAdd: true})
	m.Clear()
	if m.IsTabu(elementMove{removed: 1, hasRemove: true}, nil) {
		t.Fatal("after Clear, nothing should be tabu")
	}
}
