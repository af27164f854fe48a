package algorithms

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/go-optim/localsearch/search"
)

// ParallelTempering maintains R Metropolis replicas on a geometrically
// spaced temperature ladder between tMin and tMax, and per outer step runs
// each replica for a fixed inner step budget in parallel, then attempts to
// swap adjacent replicas. The best solution across all replicas becomes
// this search's best solution.
//
// Grounded on engine/engine.go's eng.stack being private, per-search-thread
// state (easychessanimations-zurichess): each replica's Metropolis state is
// likewise mutated only by the goroutine running that replica's inner
// steps, with the coordinator (this SearchStep) performing cross-replica
// swaps only while every replica's inner-step goroutine has already joined.
// Fan-out/join uses stdlib sync.WaitGroup: no worker-pool library in the
// retrieval pack models bounded, barrier-synchronized replica steps any
// better than a plain WaitGroup (see DESIGN.md).
type ParallelTempering struct {
	*search.LocalSearch
	replicas       []*Metropolis
	innerSteps     int
	rng            *rand.Rand
}

// ParallelTemperingOptions configures ladder construction.
type ParallelTemperingOptions struct {
	// Replicas is the number of replicas R (must be >= 2).
	Replicas int
	// TMin, TMax bound the geometric temperature ladder (0 < TMin < TMax).
	TMin, TMax float64
	// ScaleFactor multiplies every rung of the ladder (default 1 if zero).
	ScaleFactor float64
	// InnerSteps is how many Metropolis steps each replica runs per outer
	// step (must be >= 1).
	InnerSteps int
}

// NewParallelTempering builds a ParallelTempering over problem, exploring
// neighbourhood with Metropolis replicas per opts.
func NewParallelTempering(problem search.Problem, neighbourhood search.Neighbourhood, opts ParallelTemperingOptions, searchOpts ...search.Option) (*ParallelTempering, error) {
	if neighbourhood == nil {
		return nil, fmt.Errorf("%w: nil neighbourhood", search.ErrConfiguration)
	}
	if opts.Replicas < 2 {
		return nil, fmt.Errorf("%w: parallel tempering needs at least 2 replicas, got %d", search.ErrConfiguration, opts.Replicas)
	}
	if opts.TMin <= 0 || opts.TMax <= opts.TMin {
		return nil, fmt.Errorf("%w: invalid temperature range [%v, %v]", search.ErrConfiguration, opts.TMin, opts.TMax)
	}
	if opts.InnerSteps < 1 {
		return nil, fmt.Errorf("%w: inner steps must be >= 1, got %d", search.ErrConfiguration, opts.InnerSteps)
	}
	scale := opts.ScaleFactor
	if scale == 0 {
		scale = 1
	}

	pt := &ParallelTempering{innerSteps: opts.InnerSteps, rng: rand.New(rand.NewSource(rand.Int63()))}

	pt.replicas = make([]*Metropolis, opts.Replicas)
	for i := 0; i < opts.Replicas; i++ {
		temp := scale * opts.TMin * math.Pow(opts.TMax/opts.TMin, float64(i)/float64(opts.Replicas-1))
		replica, err := NewMetropolis(problem, neighbourhood, temp, rand.New(rand.NewSource(rand.Int63())),
			search.WithName(fmt.Sprintf("ParallelTempering.replica[%d]", i)))
		if err != nil {
			return nil, err
		}
		pt.replicas[i] = replica
	}

	ls, err := search.NewLocalSearch("ParallelTempering", problem, pt, searchOpts...)
	if err != nil {
		return nil, err
	}
	pt.LocalSearch = ls
	return pt, nil
}

// Replicas returns the underlying Metropolis replicas, ordered from
// coldest (index 0) to hottest.
func (pt *ParallelTempering) Replicas() []*Metropolis { return pt.replicas }

// OnSearchStarted propagates the outer current solution into every replica
// before the first swap round, after seeding it per LocalSearch's own rule
// if it hasn't been set yet.
func (pt *ParallelTempering) OnSearchStarted(s *search.Search) error {
	if err := pt.LocalSearch.OnSearchStarted(s); err != nil {
		return err
	}
	sol := pt.CurrentSolution()
	for _, r := range pt.replicas {
		r.UpdateCurrentAndBestSolution(pt.Problem().Copy(sol), pt.CurrentEvaluation(), pt.CurrentValidation())
	}
	return nil
}

func (pt *ParallelTempering) SearchStep() error {
	var wg sync.WaitGroup
	errs := make([]error, len(pt.replicas))
	for i, r := range pt.replicas {
		wg.Add(1)
		go func(i int, r *Metropolis) {
			defer wg.Done()
			for step := 0; step < pt.innerSteps; step++ {
				if err := r.SearchStep(); err != nil {
					errs[i] = err
					return
				}
			}
		}(i, r)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	// Attempt to swap each adjacent pair, coordinator-only, with every
	// replica's inner-step goroutine already joined above.
	for i := 0; i < len(pt.replicas)-1; i++ {
		lo, hi := pt.replicas[i], pt.replicas[i+1]
		d := pt.ComputeDelta(hi.CurrentEvaluation().Value(), lo.CurrentEvaluation().Value())
		p := math.Min(1, math.Exp(d*(1/lo.Temperature()-1/hi.Temperature())))
		if pt.rng.Float64() < p {
			loSol, loEval, loVal := lo.CurrentSolution(), lo.CurrentEvaluation(), lo.CurrentValidation()
			hiSol, hiEval, hiVal := hi.CurrentSolution(), hi.CurrentEvaluation(), hi.CurrentValidation()
			lo.UpdateCurrentSolution(hiSol, hiEval, hiVal)
			hi.UpdateCurrentSolution(loSol, loEval, loVal)
		}
	}

	best := pt.replicas[0]
	for _, r := range pt.replicas[1:] {
		if pt.ComputeDelta(r.BestEvaluation().Value(), best.BestEvaluation().Value()) > 0 {
			best = r
		}
	}
	pt.UpdateCurrentAndBestSolution(pt.Problem().Copy(best.BestSolution()), best.BestEvaluation(), passedValidation{})
	return nil
}

// OnSearchStopped does nothing. Each replica's own Search is never
// started or stopped through its own Start/Stop lifecycle here; its state
// is driven directly by SearchStep above, whose replica goroutines have
// all joined before it returns, so there is nothing left to stop or join.
func (pt *ParallelTempering) OnSearchStopped(s *search.Search) {}
