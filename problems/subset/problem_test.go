package subset

import (
	"math/rand"
	"testing"

	"github.com/go-optim/localsearch/eval"
)

func newTestItems() []Item {
	return []Item{
		{Weight: 2, Profit: 3},
		{Weight: 3, Profit: 4},
		{Weight: 4, Profit: 5},
		{Weight: 5, Profit: 8},
	}
}

func TestNewProblem_CreateRandomSolution_RespectsCapacity(t *testing.T) {
	p := NewProblem(newTestItems(), 6, rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		sol := p.CreateRandomSolution().(*Solution)
		var weight float64
		sol.Each(func(id int) { weight += p.Item(id).Weight })
		if weight > p.Capacity() {
			t.Fatalf("CreateRandomSolution produced weight %v over capacity %v", weight, p.Capacity())
		}
	}
}

func TestNewFixedSizeProblem_CreateRandomSolution_ExactSize(t *testing.T) {
	p := NewFixedSizeProblem(newTestItems(), 100, 2, rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		sol := p.CreateRandomSolution().(*Solution)
		if sol.Size() != 2 {
			t.Fatalf("CreateRandomSolution size = %d, want 2", sol.Size())
		}
	}
}

func TestProblem_EvaluateAndValidate(t *testing.T) {
	p := NewProblem(newTestItems(), 5, nil)
	s := NewSolution(4)
	s.add(0)
	s.add(1)

	if got := p.Evaluate(s).Value(); got != 7 {
		t.Fatalf("Evaluate() = %v, want 7", got)
	}
	if !p.Validate(s).Passed() {
		t.Fatal("weight 5 <= capacity 5 should validate")
	}

	s.add(2)
	if p.Validate(s).Passed() {
		t.Fatal("weight 9 > capacity 5 should not validate")
	}
}

func TestProblem_ValidateMove_RecordsBothFixedSizeAndCapacity(t *testing.T) {
	p := NewFixedSizeProblem(newTestItems(), 100, 2, nil)
	s := NewSolution(4)
	s.add(0)
	s.add(1)
	curVal := p.Validate(s)
	if !curVal.Passed() {
		t.Fatal("initial solution should satisfy both constraints")
	}

	next, err := p.ValidateMove(SwapMove{In: 2, Out: 0}, s, curVal)
	if err != nil {
		t.Fatalf("ValidateMove: %v", err)
	}
	u := next.(*eval.Unanimous)
	if _, ok := u.Get("capacity"); !ok {
		t.Fatal("expected a recorded capacity sub-validation")
	}
	if _, ok := u.Get("size"); !ok {
		t.Fatal("expected a recorded size sub-validation for a fixed-size problem")
	}
	if !next.Passed() {
		t.Fatal("a swap preserving size and within capacity should still validate")
	}
}

func TestProblem_ValidateMove_RejectsForeignValidation(t *testing.T) {
	p := NewProblem(newTestItems(), 5, nil)
	s := NewSolution(4)
	_, err := p.ValidateMove(AddMove{ID: 0}, s, eval.Passed(true))
	if err == nil {
		t.Fatal("expected an error when curValidation isn't the problem's own *eval.Unanimous")
	}
}

func TestProblem_EvaluateMove_MatchesFullEvaluation(t *testing.T) {
	p := NewProblem(newTestItems(), 100, nil)
	s := NewSolution(4)
	s.add(0)
	curEval := p.Evaluate(s)

	delta, err := p.EvaluateMove(AddMove{ID: 1}, s, curEval)
	if err != nil {
		t.Fatalf("EvaluateMove: %v", err)
	}
	after := s.Copy().(*Solution)
	AddMove{ID: 1}.Apply(after)
	if full := p.Evaluate(after).Value(); delta.Value() != full {
		t.Fatalf("EvaluateMove delta = %v, want %v", delta.Value(), full)
	}
}

func TestProblem_Copy_IsIndependent(t *testing.T) {
	p := NewProblem(newTestItems(), 100, nil)
	s := NewSolution(4)
	s.add(0)
	cpy := p.Copy(s).(*Solution)
	cpy.add(1)
	if s.Contains(1) {
		t.Fatal("Copy should produce an independent solution")
	}
}

func TestProblem_IsMinimizing(t *testing.T) {
	p := NewProblem(newTestItems(), 100, nil)
	if p.IsMinimizing() {
		t.Fatal("knapsack profit maximisation should report IsMinimizing() == false")
	}
}
