package eval

import "github.com/go-optim/localsearch/search"

// Passed is a trivial Validation that always reports the given outcome.
type Passed bool

func (p Passed) Passed() bool { return bool(p) }

// Penalising is a Validation that additionally carries a non-negative
// penalty magnitude for a (partially) failed check, satisfying
// search.PenalisingValidation.
type Penalising struct {
	OK      bool
	Amount  float64
}

func (p Penalising) Passed() bool    { return p.OK }
func (p Penalising) Penalty() float64 { return p.Amount }

// Unanimous aggregates one named sub-validation per constraint. It passes
// iff every recorded sub-validation passes. Callers are expected to record
// every constraint on every call, not stop at the first failure: a
// delta-validating Problem looks up each constraint's own prior
// sub-validation by name (via Get) to compute that constraint's next delta,
// so a constraint skipped once it had already failed would have no prior
// entry to diff against on the next move.
type Unanimous struct {
	order   []string
	entries map[string]search.Validation
}

// NewUnanimous builds an empty aggregate validation.
func NewUnanimous() *Unanimous {
	return &Unanimous{entries: make(map[string]search.Validation)}
}

// Record adds (or replaces) the sub-validation for the named constraint.
func (u *Unanimous) Record(name string, v search.Validation) {
	if _, exists := u.entries[name]; !exists {
		u.order = append(u.order, name)
	}
	u.entries[name] = v
}

// Get returns the previously recorded sub-validation for name, if any.
func (u *Unanimous) Get(name string) (search.Validation, bool) {
	v, ok := u.entries[name]
	return v, ok
}

// Passed reports whether every recorded sub-validation passes. An aggregate
// with no recorded sub-validations passes vacuously.
func (u *Unanimous) Passed() bool {
	for _, name := range u.order {
		if !u.entries[name].Passed() {
			return false
		}
	}
	return true
}

// TotalPenalty sums the Penalty of every recorded sub-validation that
// implements search.PenalisingValidation.
func (u *Unanimous) TotalPenalty() float64 {
	var total float64
	for _, name := range u.order {
		if pv, ok := u.entries[name].(search.PenalisingValidation); ok {
			total += pv.Penalty()
		}
	}
	return total
}

// Copy returns a shallow copy safe to mutate independently (Record on the
// copy doesn't affect the original).
func (u *Unanimous) Copy() *Unanimous {
	cp := NewUnanimous()
	cp.order = append([]string(nil), u.order...)
	for k, v := range u.entries {
		cp.entries[k] = v
	}
	return cp
}
