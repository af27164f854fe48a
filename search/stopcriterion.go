package search

import (
	"sync"
	"time"
)

// StopCriterion is a boolean predicate over a search's live metadata.
// Predicates must be pure/fast: the checker polls them on a timer and
// treats them as idempotent.
type StopCriterion interface {
	// ShouldStop reports whether s should stop now.
	ShouldStop(s *Search) bool
}

// CompatibilityChecker is an optional interface a StopCriterion may
// implement to reject searches it cannot evaluate (e.g. a criterion that
// only makes sense for NeighbourhoodSearch-capable algorithms). AddStopCriterion
// probes it once, at registration time.
type CompatibilityChecker interface {
	IsCompatible(s *Search) bool
}

// DefaultCheckPeriod is the checker's default polling interval.
const DefaultCheckPeriod = time.Second

// checker is the per-search background stop-criterion poller, in the spirit
// of a TimeControl deadline-poll design, generalized from a single deadline
// to an ordered list of criteria evaluated on a ticker.
type checker struct {
	mu     sync.Mutex
	period time.Duration
	cancel chan struct{}
	done   chan struct{}
}

func newChecker() *checker {
	return &checker{period: DefaultCheckPeriod}
}

func (c *checker) setPeriod(d time.Duration) {
	c.mu.Lock()
	c.period = d
	c.mu.Unlock()
}

// start begins polling criteria against s until one fires (calling s.Stop),
// the search leaves INITIALIZING/RUNNING, or stop is called.
func (c *checker) start(s *Search) {
	c.mu.Lock()
	period := c.period
	if c.cancel != nil {
		// already running; nothing to do.
		c.mu.Unlock()
		return
	}
	cancel := make(chan struct{})
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				status := s.Status()
				if status != Initializing && status != Running {
					return
				}
				s.criteriaMu.RLock()
				criteria := make([]StopCriterion, len(s.criteria))
				copy(criteria, s.criteria)
				s.criteriaMu.RUnlock()

				for _, crit := range criteria {
					if crit.ShouldStop(s) {
						s.Stop()
						return
					}
				}
			}
		}
	}()
}

// stop cancels the poller if active, and waits for its goroutine to exit.
func (c *checker) stop() {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	if cancel != nil {
		close(cancel)
		<-done
	}
}
