// Package search implements a metaheuristic local-search engine: the
// lifecycle of a search, delta evaluation/validation against a problem, and
// the listener/stop-criterion plumbing shared by every concrete algorithm.
//
// Concrete algorithms (random descent, steepest descent, tabu search, ...)
// live in the sibling algorithms package; this package only defines the
// contracts they're built against and the orchestration common to all of
// them.
package search

// Solution is a candidate point in a problem's solution space. Solutions
// must be cheaply copyable relative to evaluation cost: the engine copies a
// solution whenever it retains one (best-so-far, a replica's current
// solution, tabu memory).
type Solution interface {
	// Copy returns a deep copy of the solution.
	Copy() Solution
	// Equal reports whether two solutions are structurally equivalent.
	Equal(other Solution) bool
	// Hash must be consistent with Equal: equal solutions hash equal.
	Hash() uint64
}

// Evaluation is a scalar-valued record produced by an Objective.
type Evaluation interface {
	// Value folds the evaluation down to the scalar used for comparison.
	Value() float64
}

// Validation reports whether a solution or move satisfies a constraint.
type Validation interface {
	Passed() bool
}

// PenalisingValidation is a Validation that additionally carries a
// non-negative penalty magnitude for a failed (or partially failed) check.
type PenalisingValidation interface {
	Validation
	Penalty() float64
}

// Move is an opaque, reversible mutation of a Solution. Apply followed by
// Undo must restore the solution to an equal state. The engine treats moves
// as opaque; the Problem that produced them is responsible for evaluating
// and validating them.
type Move interface {
	Apply(sol Solution)
	Undo(sol Solution)
	// Equal reports whether two moves would have an identical effect.
	Equal(other Move) bool
	Hash() uint64
}

// Neighbourhood produces admissible moves for a solution.
type Neighbourhood interface {
	// RandomMove returns one uniformly random admissible move for sol, or
	// ok=false if the solution has no admissible moves.
	RandomMove(sol Solution) (m Move, ok bool)
	// AllMoves enumerates every admissible move for sol.
	AllMoves(sol Solution) []Move
}

// Data is the problem-specific, immutable-during-a-run payload an Objective
// or Constraint is evaluated against (e.g. item weights/profits). It is
// opaque to the engine.
type Data interface{}

// Objective is the quantity a Problem maximises or minimises.
type Objective interface {
	Evaluate(sol Solution, data Data) Evaluation
	// IsMinimizing reports the objective's optimization direction.
	IsMinimizing() bool
}

// DeltaObjective is implemented by objectives that can evaluate a move
// incrementally, from the cached evaluation of the solution it would be
// applied to, instead of re-scanning the whole solution.
type DeltaObjective interface {
	Objective
	// EvaluateDelta must agree, within floating-point tolerance, with
	// evaluating a full copy of sol after Move.Apply. It returns
	// ErrIncompatibleDelta if it doesn't recognise move's concrete type.
	EvaluateDelta(move Move, curSol Solution, curEval Evaluation, data Data) (Evaluation, error)
}

// Constraint restricts the solution space, either mandatorily (the problem
// rejects solutions that fail it) or as a PenalisingConstraint (the problem
// folds the penalty into the objective value instead of rejecting).
type Constraint interface {
	Validate(sol Solution, data Data) Validation
}

// DeltaConstraint is implemented by constraints that can validate a move
// incrementally from the cached validation of the solution it would be
// applied to.
type DeltaConstraint interface {
	Constraint
	// ValidateDelta returns ErrIncompatibleDelta if it doesn't recognise
	// move's concrete type.
	ValidateDelta(move Move, curSol Solution, curValidation Validation, data Data) (Validation, error)
}

// PenalisingConstraint is a Constraint whose validation carries a penalty
// magnitude instead of (or in addition to) a hard pass/fail.
type PenalisingConstraint interface {
	Constraint
	ValidatePenalising(sol Solution, data Data) PenalisingValidation
}

// Problem binds an Objective and zero or more Constraints to a Data payload.
// It is the sole interface concrete algorithms talk to; they never call an
// Objective or Constraint directly.
type Problem interface {
	// CreateRandomSolution builds a uniformly random admissible solution.
	CreateRandomSolution() Solution

	// Evaluate performs a full, from-scratch evaluation of sol.
	Evaluate(sol Solution) Evaluation
	// EvaluateMove delta-evaluates move against the cached evaluation
	// curEval of curSol. Returns ErrIncompatibleDelta if any objective
	// involved cannot delta-evaluate move's concrete type.
	EvaluateMove(move Move, curSol Solution, curEval Evaluation) (Evaluation, error)

	// Validate performs a full, from-scratch validation of sol.
	Validate(sol Solution) Validation
	// ValidateMove delta-validates move against the cached validation
	// curValidation of curSol.
	ValidateMove(move Move, curSol Solution, curValidation Validation) (Validation, error)

	// IsMinimizing reports the problem's optimization direction.
	IsMinimizing() bool
	// Copy deep-copies sol. Typically sol.Copy().
	Copy(sol Solution) Solution
}
