// Command localsearch-demo builds a random knapsack instance and runs one
// of the core algorithms against it, printing the best solution found.
//
// Grounded on zurichess/main.go's flag-parsing/wiring style
// (easychessanimations-zurichess), with the UCI read loop replaced entirely
// by a single build-problem/run-algorithm/print-result pass (no stdin
// protocol has an analogue in a library with no standard "opponent" to
// talk to).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/go-optim/localsearch/algorithms"
	"github.com/go-optim/localsearch/problems/subset"
	"github.com/go-optim/localsearch/search"
	"github.com/go-optim/localsearch/stopcriteria"
	"github.com/go-optim/localsearch/tabumemory"
)

var (
	algorithm   = flag.String("algorithm", "steepestdescent", "algorithm to run: randomsearch, randomdescent, steepestdescent, metropolis, tabu, vnd, vns, paralleltempering, piped")
	numItems    = flag.Int("items", 30, "number of items in the knapsack universe")
	capacity    = flag.Float64("capacity", 50, "knapsack capacity")
	seed        = flag.Int64("seed", 1, "random seed for the item universe and the algorithm's own randomness")
	maxRuntime  = flag.Duration("maxruntime", 2*time.Second, "stop after this long")
	maxSteps    = flag.Int64("maxsteps", 0, "stop after this many steps (0 disables)")
	temperature = flag.Float64("temperature", 5, "Metropolis temperature")
	tenure      = flag.Int("tenure", 7, "tabu tenure, in registered visits")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetPrefix("localsearch-demo: ")
	log.SetFlags(0)

	rng := rand.New(rand.NewSource(*seed))
	problem := subset.NewProblem(randomItems(rng, *numItems), *capacity, rand.New(rand.NewSource(*seed+1)))
	neighbourhood := subset.NewNeighbourhood(*numItems, rand.New(rand.NewSource(*seed+2)))

	run, err := buildAlgorithm(*algorithm, problem, neighbourhood, rand.New(rand.NewSource(*seed+3)))
	if err != nil {
		log.Fatal(err)
	}

	if err := run.AddStopCriterion(stopcriteria.MaxRuntime(*maxRuntime)); err != nil {
		log.Fatal(err)
	}
	if *maxSteps > 0 {
		if err := run.AddStopCriterion(stopcriteria.MaxSteps(*maxSteps)); err != nil {
			log.Fatal(err)
		}
	}

	if err := run.Start(); err != nil {
		log.Fatal(err)
	}

	best := run.BestSolution()
	eval := run.BestEvaluation()
	fmt.Printf("algorithm=%s steps=%d runtime=%s\n", *algorithm, run.Steps(), run.Runtime())
	if best == nil {
		fmt.Println("no solution found")
		return
	}
	fmt.Printf("best profit=%.2f selection=%v\n", eval.Value(), members(best.(*subset.Solution)))
}

func members(sol *subset.Solution) []int {
	var ids []int
	sol.Each(func(id int) { ids = append(ids, id) })
	return ids
}

func randomItems(rng *rand.Rand, n int) []subset.Item {
	items := make([]subset.Item, n)
	for i := range items {
		items[i] = subset.Item{
			Weight: 1 + rng.Float64()*9,
			Profit: 1 + rng.Float64()*9,
		}
	}
	return items
}

// runner is the slice of *search.Search every algorithm built below exposes
// through embedding, enough for this command to drive it generically.
type runner interface {
	AddStopCriterion(c search.StopCriterion) error
	Start() error
	Steps() int64
	Runtime() time.Duration
	BestSolution() search.Solution
	BestEvaluation() search.Evaluation
}

func buildAlgorithm(name string, problem *subset.Problem, neighbourhood *subset.Neighbourhood, rng *rand.Rand) (runner, error) {
	switch name {
	case "randomsearch":
		return algorithms.NewRandomSearch(problem)
	case "randomdescent":
		return algorithms.NewRandomDescent(problem, neighbourhood)
	case "steepestdescent":
		return algorithms.NewSteepestDescent(problem, neighbourhood)
	case "metropolis":
		return algorithms.NewMetropolis(problem, neighbourhood, *temperature, rng)
	case "tabu":
		memory, err := tabumemory.NewIDMemory(*tenure)
		if err != nil {
			return nil, err
		}
		return algorithms.NewTabu(problem, neighbourhood, memory)
	case "vnd":
		return algorithms.NewVND(problem, []search.Neighbourhood{neighbourhood})
	case "vns":
		factory := func() (algorithms.InnerLocalSearch, error) {
			return algorithms.NewRandomDescent(problem, neighbourhood)
		}
		return algorithms.NewVNS(problem, []search.Neighbourhood{neighbourhood}, factory)
	case "paralleltempering":
		return algorithms.NewParallelTempering(problem, neighbourhood, algorithms.ParallelTemperingOptions{
			Replicas: 4, TMin: 1, TMax: 20, InnerSteps: 10,
		})
	case "piped":
		stages := []algorithms.InnerSearchFactory{
			func() (algorithms.InnerLocalSearch, error) { return algorithms.NewRandomDescent(problem, neighbourhood) },
			func() (algorithms.InnerLocalSearch, error) { return algorithms.NewSteepestDescent(problem, neighbourhood) },
		}
		return algorithms.NewPipedLocalSearch(problem, stages)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}
