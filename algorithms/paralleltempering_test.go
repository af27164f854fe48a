package algorithms

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/go-optim/localsearch/problems/subset"
	"github.com/go-optim/localsearch/stopcriteria"
)

func TestParallelTempering_RejectsInvalidConfiguration(t *testing.T) {
	problem := newTestProblem(10)
	neighbourhood := subset.NewNeighbourhood(problem.NumItems(), nil)
	valid := ParallelTemperingOptions{Replicas: 3, TMin: 1, TMax: 10, InnerSteps: 2}

	if _, err := NewParallelTempering(problem, nil, valid); err == nil {
		t.Fatal("expected an error for a nil neighbourhood")
	}
	bad := valid
	bad.Replicas = 1
	if _, err := NewParallelTempering(problem, neighbourhood, bad); err == nil {
		t.Fatal("expected an error for fewer than 2 replicas")
	}
	bad = valid
	bad.TMin = 0
	if _, err := NewParallelTempering(problem, neighbourhood, bad); err == nil {
		t.Fatal("expected an error for a non-positive TMin")
	}
	bad = valid
	bad.TMax = bad.TMin
	if _, err := NewParallelTempering(problem, neighbourhood, bad); err == nil {
		t.Fatal("expected an error for TMax <= TMin")
	}
	bad = valid
	bad.InnerSteps = 0
	if _, err := NewParallelTempering(problem, neighbourhood, bad); err == nil {
		t.Fatal("expected an error for non-positive InnerSteps")
	}
}

func TestParallelTempering_BuildsAscendingTemperatureLadder(t *testing.T) {
	problem := newTestProblem(10)
	neighbourhood := subset.NewNeighbourhood(problem.NumItems(), nil)
	pt, err := NewParallelTempering(problem, neighbourhood, ParallelTemperingOptions{
		Replicas: 4, TMin: 1, TMax: 8, InnerSteps: 1,
	})
	if err != nil {
		t.Fatalf("NewParallelTempering: %v", err)
	}
	replicas := pt.Replicas()
	if len(replicas) != 4 {
		t.Fatalf("len(Replicas()) = %d, want 4", len(replicas))
	}
	temps := make([]float64, len(replicas))
	for i, r := range replicas {
		temps[i] = r.Temperature()
	}
	if !sort.SliceIsSorted(temps, func(i, j int) bool { return temps[i] < temps[j] }) {
		t.Fatalf("replica temperatures not strictly ascending: %v", temps)
	}
	if temps[0] != 1 {
		t.Fatalf("coldest replica temperature = %v, want TMin=1", temps[0])
	}
	if temps[len(temps)-1] != 8 {
		t.Fatalf("hottest replica temperature = %v, want TMax=8", temps[len(temps)-1])
	}
}

func TestParallelTempering_StartPropagatesCurrentSolutionToEveryReplica(t *testing.T) {
	problem := newTestProblem(10)
	neighbourhood := subset.NewNeighbourhood(problem.NumItems(), rand.New(rand.NewSource(1)))
	pt, err := NewParallelTempering(problem, neighbourhood, ParallelTemperingOptions{
		Replicas: 3, TMin: 1, TMax: 10, InnerSteps: 2,
	})
	if err != nil {
		t.Fatalf("NewParallelTempering: %v", err)
	}
	start := subset.NewSolution(problem.NumItems())
	if err := pt.SetCurrentSolution(start); err != nil {
		t.Fatalf("SetCurrentSolution: %v", err)
	}
	if err := pt.AddStopCriterion(stopcriteria.MaxSteps(3)); err != nil {
		t.Fatalf("AddStopCriterion: %v", err)
	}
	if err := pt.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i, r := range pt.Replicas() {
		sol := r.CurrentSolution()
		if sol == nil {
			t.Fatalf("replica %d has no current solution after Start", i)
		}
	}

	sol := pt.BestSolution().(*subset.Solution)
	var weight float64
	sol.Each(func(id int) { weight += problem.Item(id).Weight })
	if weight > problem.Capacity() {
		t.Fatalf("best solution weight %v exceeds capacity %v", weight, problem.Capacity())
	}
}
