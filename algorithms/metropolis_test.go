package algorithms

import (
	"math/rand"
	"testing"

	"github.com/go-optim/localsearch/problems/subset"
	"github.com/go-optim/localsearch/stopcriteria"
)

func TestMetropolis_RejectsInvalidConfiguration(t *testing.T) {
	problem := newTestProblem(10)
	neighbourhood := subset.NewNeighbourhood(problem.NumItems(), nil)
	if _, err := NewMetropolis(problem, nil, 1, nil); err == nil {
		t.Fatal("expected an error for a nil neighbourhood")
	}
	if _, err := NewMetropolis(problem, neighbourhood, 0, nil); err == nil {
		t.Fatal("expected an error for a non-positive temperature")
	}
	if _, err := NewMetropolis(problem, neighbourhood, -1, nil); err == nil {
		t.Fatal("expected an error for a negative temperature")
	}
}

func TestMetropolis_TemperatureGetSet(t *testing.T) {
	problem := newTestProblem(10)
	neighbourhood := subset.NewNeighbourhood(problem.NumItems(), nil)
	m, err := NewMetropolis(problem, neighbourhood, 5, nil)
	if err != nil {
		t.Fatalf("NewMetropolis: %v", err)
	}
	if m.Temperature() != 5 {
		t.Fatalf("Temperature() = %v, want 5", m.Temperature())
	}
	m.SetTemperature(9)
	if m.Temperature() != 9 {
		t.Fatalf("Temperature() after SetTemperature = %v, want 9", m.Temperature())
	}
}

func TestMetropolis_RunsWithoutErrorAndStaysFeasible(t *testing.T) {
	problem := newTestProblem(10)
	neighbourhood := subset.NewNeighbourhood(problem.NumItems(), rand.New(rand.NewSource(2)))
	m, err := NewMetropolis(problem, neighbourhood, 3, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewMetropolis: %v", err)
	}
	if err := m.SetCurrentSolution(subset.NewSolution(problem.NumItems())); err != nil {
		t.Fatalf("SetCurrentSolution: %v", err)
	}
	if err := m.AddStopCriterion(stopcriteria.MaxSteps(100)); err != nil {
		t.Fatalf("AddStopCriterion: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	sol := m.CurrentSolution().(*subset.Solution)
	var weight float64
	sol.Each(func(id int) { weight += problem.Item(id).Weight })
	if weight > problem.Capacity() {
		t.Fatalf("current solution weight %v exceeds capacity %v (Metropolis must never accept an invalid move)", weight, problem.Capacity())
	}
}
