package search

import "errors"

// Sentinel errors, in a flat package-var style (errorWrongLength,
// errorUnknownFigure, ...): compare with errors.Is, wrap with
// fmt.Errorf("...: %w", ...) for context.
var (
	// ErrNotIdle is returned by any control operation (Start, Dispose,
	// AddSearchListener, AddStopCriterion, ...) that requires the search to
	// be IDLE but finds it in some other state.
	ErrNotIdle = errors.New("search: not idle")

	// ErrConfiguration is returned at construction time for invalid
	// parameters: nil collaborators, empty neighbourhood lists, non-positive
	// sizes or temperatures.
	ErrConfiguration = errors.New("search: invalid configuration")

	// ErrIncompatibleStopCriterion is returned by AddStopCriterion when the
	// criterion's probe call reports it cannot evaluate this search.
	ErrIncompatibleStopCriterion = errors.New("search: incompatible stop criterion")

	// ErrIncompatibleTabuMemory reports a tabu memory that cannot support
	// the problem's move type. NewTabu does not check compatibility, and
	// nothing in this module returns this error.
	ErrIncompatibleTabuMemory = errors.New("search: incompatible tabu memory")

	// ErrIncompatibleDelta is returned by Problem.EvaluateMove/ValidateMove
	// when an involved objective or constraint does not recognise the
	// move's concrete type, or the cached evaluation/validation it is given
	// is not of the type it produces.
	ErrIncompatibleDelta = errors.New("search: incompatible delta")

	// ErrSolutionModification reports a move that cannot be carried out
	// against a given solution (e.g. removing an element that isn't
	// present). Move.Apply and Undo have no error result, and nothing in
	// this module returns this error.
	ErrSolutionModification = errors.New("search: solution modification failed")
)
