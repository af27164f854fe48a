package search

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the diagnostic sink a Search reports its own lifecycle to,
// independent of (and called after) the Listener fan-out for the same
// event. It mirrors the
// shape of a BeginSearch/EndSearch/PrintPV-style engine logger, generalized
// to the richer event set of a metaheuristic run.
type Logger interface {
	// SearchStarted is called once, synchronously, after the FSM
	// transitions into INITIALIZING and before the algorithm's
	// OnSearchStarted hook runs (so before the FSM reaches RUNNING).
	SearchStarted(name string, id uint64)
	// SearchStopped is called once, synchronously, right before the FSM
	// transitions back to IDLE.
	SearchStopped(name string, id uint64, steps int64)
	// StepCompleted is called after every search_step.
	StepCompleted(name string, id uint64, step int64)
	// NewBestSolution is called on every accepted improvement.
	NewBestSolution(name string, id uint64, value float64)
	// Error is called for runtime malfunctions surfaced from user code,
	// including recovered listener-callback panics (see
	// DESIGN.md's "listener callback errors" decision).
	Error(name string, id uint64, err error)
}

// NopLogger discards every event. It is the zero-value default, so the core
// never requires a logging dependency to function.
type NopLogger struct{}

func (NopLogger) SearchStarted(string, uint64)             {}
func (NopLogger) SearchStopped(string, uint64, int64)       {}
func (NopLogger) StepCompleted(string, uint64, int64)       {}
func (NopLogger) NewBestSolution(string, uint64, float64)   {}
func (NopLogger) Error(string, uint64, error)               {}

// StumpyLogger adapts a github.com/joeycumines/logiface Logger backed by
// github.com/joeycumines/stumpy's JSON event encoder to the Logger contract
// above. Construct with NewStumpyLogger; the zero value is unusable (its
// *logiface.Logger field would be nil).
type StumpyLogger struct {
	logger *logiface.Logger[*stumpy.Event]
}

// NewStumpyLogger builds a StumpyLogger writing newline-delimited JSON
// events, in the style of logiface-stumpy/example_test.go from the
// joeycumines-go-utilpkg retrieval pack.
func NewStumpyLogger(opts ...stumpy.Option) *StumpyLogger {
	return &StumpyLogger{logger: stumpy.L.New(stumpy.L.WithStumpy(opts...))}
}

func (l *StumpyLogger) SearchStarted(name string, id uint64) {
	l.logger.Info().Str(`search`, name).Int(`id`, int(id)).Log(`search started`)
}

func (l *StumpyLogger) SearchStopped(name string, id uint64, steps int64) {
	l.logger.Info().Str(`search`, name).Int(`id`, int(id)).Int(`steps`, int(steps)).Log(`search stopped`)
}

func (l *StumpyLogger) StepCompleted(name string, id uint64, step int64) {
	l.logger.Debug().Str(`search`, name).Int(`id`, int(id)).Int(`step`, int(step)).Log(`step completed`)
}

func (l *StumpyLogger) NewBestSolution(name string, id uint64, value float64) {
	l.logger.Info().Str(`search`, name).Int(`id`, int(id)).Float64(`value`, value).Log(`new best solution`)
}

func (l *StumpyLogger) Error(name string, id uint64, err error) {
	l.logger.Err().Str(`search`, name).Int(`id`, int(id)).Err(err).Log(`search error`)
}
