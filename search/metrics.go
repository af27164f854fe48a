package search

import (
	"math"
	"time"
)

// Sentinel values reported by metric getters before they become meaningful,
// in the same spirit as a Stats{Depth: -1} convention that resets a running
// counter to -1 before the first unit of work completes.
const (
	// InvalidStepCount is returned by Steps/StepsSinceLastImprovement before
	// a run, or before any improvement, has occurred.
	InvalidStepCount int64 = -1
)

// InvalidDelta is returned by MinDelta before any improvement has been
// observed during the current run.
var InvalidDelta = math.Inf(1)

// InvalidTimestamp is the zero time.Time, returned by StartTime/StopTime/
// LastImprovementTime before they are meaningful.
var InvalidTimestamp time.Time

// InvalidTimeSpan is returned by Runtime/TimeWithoutImprovement before they
// are meaningful.
const InvalidTimeSpan time.Duration = -1

// runMetrics holds the per-run metadata tracked over a search's lifetime,
// reset on every searchStarted. Only the step-loop goroutine writes these fields; the
// checker goroutine and external getters only read them, all under the
// owning Search's status lock (s.mu, which every metric getter takes).
type runMetrics struct {
	startTime    time.Time
	stopTime     time.Time
	running      bool
	steps        int64
	lastImprove  time.Time
	stepsSinceImprove int64
	minDelta     float64
	improvedStep bool
}

func newRunMetrics() runMetrics {
	return runMetrics{
		stopTime:          InvalidTimestamp,
		steps:             0,
		stepsSinceImprove: InvalidStepCount,
		minDelta:          InvalidDelta,
	}
}

func (m *runMetrics) reset(now time.Time) {
	*m = runMetrics{
		startTime:         now,
		stopTime:          InvalidTimestamp,
		running:           true,
		steps:             0,
		lastImprove:       InvalidTimestamp,
		stepsSinceImprove: InvalidStepCount,
		minDelta:          InvalidDelta,
	}
}

func (m *runMetrics) recordStop(now time.Time) {
	m.running = false
	m.stopTime = now
}

// recordStep increments steps and updates stepsSinceImprove: reset to 0 if
// this step flipped improvedStep, otherwise incremented (from 0 once an
// improvement has ever been seen this run, staying at InvalidStepCount
// until then). See DESIGN.md for the open-question decision this encodes:
// stepsSinceImprove is driven purely by whether update_best_solution fired
// this step, independent of any registered MinDelta threshold.
func (m *runMetrics) recordStep() {
	m.steps++
	if m.improvedStep {
		m.stepsSinceImprove = 0
		m.improvedStep = false
		return
	}
	if m.stepsSinceImprove >= 0 {
		m.stepsSinceImprove++
	}
}

// recordImprovement is called by updateBestSolution when an improvement is
// accepted, with the direction-adjusted positive delta over the previous
// best. delta is meaningless when hadPrevious is false (the run's baseline
// solution is not an improvement over anything), so minDelta is left
// untouched in that case.
func (m *runMetrics) recordImprovement(now time.Time, delta float64, hadPrevious bool) {
	m.improvedStep = true
	m.lastImprove = now
	if hadPrevious && delta < m.minDelta {
		m.minDelta = delta
	}
}

func (m *runMetrics) runtime(now time.Time) time.Duration {
	if m.startTime.IsZero() {
		return InvalidTimeSpan
	}
	end := now
	if !m.running {
		end = m.stopTime
	}
	return end.Sub(m.startTime)
}

func (m *runMetrics) timeWithoutImprovement(now time.Time) time.Duration {
	if m.startTime.IsZero() {
		return InvalidTimeSpan
	}
	ref := m.lastImprove
	if ref.IsZero() {
		ref = m.startTime
	}
	end := now
	if !m.running {
		end = m.stopTime
	}
	return end.Sub(ref)
}
