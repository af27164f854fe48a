package algorithms

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-optim/localsearch/problems/subset"
	"github.com/go-optim/localsearch/stopcriteria"
)

func TestPipedLocalSearch_RejectsInvalidConfiguration(t *testing.T) {
	problem := newTestProblem(10)
	neighbourhood := subset.NewNeighbourhood(problem.NumItems(), nil)
	stage := func() (InnerLocalSearch, error) { return NewRandomDescent(problem, neighbourhood) }

	if _, err := NewPipedLocalSearch(problem, nil); err == nil {
		t.Fatal("expected an error for an empty stage list")
	}
	if _, err := NewPipedLocalSearch(problem, []InnerSearchFactory{nil}); err == nil {
		t.Fatal("expected an error for a nil stage factory")
	}
	if _, err := NewPipedLocalSearch(problem, []InnerSearchFactory{stage}); err != nil {
		t.Fatalf("NewPipedLocalSearch with a single valid stage: %v", err)
	}
}

func TestPipedLocalSearch_ChainsStagesAndImprovesOrMatchesInitial(t *testing.T) {
	problem := newTestProblem(10)
	stage1Nbh := subset.NewSwapNeighbourhood(problem.NumItems(), rand.New(rand.NewSource(1)))
	stage2Nbh := subset.NewNeighbourhood(problem.NumItems(), rand.New(rand.NewSource(2)))

	stages := []InnerSearchFactory{
		func() (InnerLocalSearch, error) { return NewRandomDescent(problem, stage1Nbh) },
		func() (InnerLocalSearch, error) { return NewSteepestDescent(problem, stage2Nbh) },
	}

	piped, err := NewPipedLocalSearch(problem, stages)
	if err != nil {
		t.Fatalf("NewPipedLocalSearch: %v", err)
	}
	if err := piped.SetCurrentSolution(subset.NewSolution(problem.NumItems())); err != nil {
		t.Fatalf("SetCurrentSolution: %v", err)
	}
	initial := piped.CurrentEvaluation().Value()

	if err := piped.AddStopCriterion(stopcriteria.MaxSteps(2)); err != nil {
		t.Fatalf("AddStopCriterion: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- piped.Start() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("PipedLocalSearch did not stop within 5s of reaching its step budget")
	}

	if piped.Steps() != 2 {
		t.Fatalf("Steps() = %d, want 2", piped.Steps())
	}

	final := piped.BestEvaluation().Value()
	if final < initial {
		t.Fatalf("best evaluation regressed: %v -> %v", initial, final)
	}

	sol := piped.BestSolution().(*subset.Solution)
	var weight float64
	sol.Each(func(id int) { weight += problem.Item(id).Weight })
	if weight > problem.Capacity() {
		t.Fatalf("best solution weight %v exceeds capacity %v", weight, problem.Capacity())
	}
}
