// Package stopcriteria provides the built-in StopCriterion implementations:
// simple, pure predicates over a search's live metadata.
//
// Grounded on engine/time_control.go's threshold comparisons
// (easychessanimations-zurichess), generalized from a single deadline field
// to one criterion type per metric.
package stopcriteria

import (
	"time"

	"github.com/go-optim/localsearch/search"
)

// maxRuntime fires once a search's Runtime exceeds duration.
type maxRuntime struct{ duration time.Duration }

// MaxRuntime returns a StopCriterion that fires once the search has run
// longer than duration.
func MaxRuntime(duration time.Duration) search.StopCriterion {
	return maxRuntime{duration: duration}
}

func (c maxRuntime) ShouldStop(s *search.Search) bool {
	return s.Runtime() > c.duration
}

// maxSteps fires once a search has completed at least n steps.
type maxSteps struct{ n int64 }

// MaxSteps returns a StopCriterion that fires once the search has completed
// at least n steps.
func MaxSteps(n int64) search.StopCriterion {
	return maxSteps{n: n}
}

func (c maxSteps) ShouldStop(s *search.Search) bool {
	return s.Steps() >= c.n
}

// maxTimeWithoutImprovement fires once TimeWithoutImprovement exceeds d.
type maxTimeWithoutImprovement struct{ d time.Duration }

// MaxTimeWithoutImprovement returns a StopCriterion that fires once d has
// elapsed since the last accepted improvement (or since the run started, if
// none has occurred).
func MaxTimeWithoutImprovement(d time.Duration) search.StopCriterion {
	return maxTimeWithoutImprovement{d: d}
}

func (c maxTimeWithoutImprovement) ShouldStop(s *search.Search) bool {
	return s.TimeWithoutImprovement() > c.d
}

// maxStepsWithoutImprovement fires once StepsSinceLastImprovement exceeds n.
type maxStepsWithoutImprovement struct{ n int64 }

// MaxStepsWithoutImprovement returns a StopCriterion that fires once more
// than n steps have elapsed since the last accepted improvement.
func MaxStepsWithoutImprovement(n int64) search.StopCriterion {
	return maxStepsWithoutImprovement{n: n}
}

func (c maxStepsWithoutImprovement) ShouldStop(s *search.Search) bool {
	since := s.StepsSinceLastImprovement()
	return since != search.InvalidStepCount && since > c.n
}

// minDelta fires once the run has observed at least one improvement and its
// MinDelta has dropped below d. The InvalidDelta sentinel never triggers.
type minDelta struct{ d float64 }

// MinDelta returns a StopCriterion that fires once the smallest improvement
// delta observed this run drops below d (diminishing returns).
func MinDelta(d float64) search.StopCriterion {
	return minDelta{d: d}
}

func (c minDelta) ShouldStop(s *search.Search) bool {
	m := s.MinDelta()
	if m == search.InvalidDelta {
		return false
	}
	return m < c.d
}

// targetValue fires once the best-so-far evaluation reaches v, in the
// problem's optimization direction.
type targetValue struct{ v float64 }

// TargetValue returns a StopCriterion that fires once the best-so-far value
// reaches or exceeds v (maximising) or drops to or below v (minimising).
func TargetValue(v float64) search.StopCriterion {
	return targetValue{v: v}
}

func (c targetValue) ShouldStop(s *search.Search) bool {
	eval := s.BestEvaluation()
	if eval == nil {
		return false
	}
	if s.Problem().IsMinimizing() {
		return eval.Value() <= c.v
	}
	return eval.Value() >= c.v
}
