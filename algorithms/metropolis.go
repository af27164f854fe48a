package algorithms

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-optim/localsearch/search"
)

// Metropolis samples one random move per step; it accepts outright if the
// move improves on the current solution, and otherwise accepts with
// probability exp(delta/T) (delta <= 0, so the probability is in [0, 1],
// and exactly 1 for a zero delta). Temperature T is set at construction and
// changes only through SetTemperature; ParallelTempering builds each
// replica at its own temperature.
//
// Grounded on engine/engine.go's aspiration-window retry loop (the
// "evaluate, and retry/accept based on a threshold" shape), with the
// accept-with-probability rule itself built directly from simulated
// annealing theory, since a deterministic alpha-beta searcher has no
// simulated annealing analogue.
type Metropolis struct {
	*search.NeighbourhoodSearch
	neighbourhood search.Neighbourhood
	temperature   float64
	rng           *rand.Rand
}

// NewMetropolis builds a Metropolis search at temperature (must be > 0)
// over problem, exploring neighbourhood. rng may be nil, in which case a
// new, independently-seeded generator is created: concurrent replicas must
// not contend on a shared generator.
func NewMetropolis(problem search.Problem, neighbourhood search.Neighbourhood, temperature float64, rng *rand.Rand, opts ...search.Option) (*Metropolis, error) {
	if neighbourhood == nil {
		return nil, fmt.Errorf("%w: nil neighbourhood", search.ErrConfiguration)
	}
	if temperature <= 0 {
		return nil, fmt.Errorf("%w: temperature must be positive, got %v", search.ErrConfiguration, temperature)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	m := &Metropolis{neighbourhood: neighbourhood, temperature: temperature, rng: rng}
	ns, err := search.NewNeighbourhoodSearch("Metropolis", problem, m, opts...)
	if err != nil {
		return nil, err
	}
	m.NeighbourhoodSearch = ns
	return m, nil
}

// Temperature returns the search's current temperature.
func (m *Metropolis) Temperature() float64 { return m.temperature }

// SetTemperature updates the temperature used by subsequent steps.
func (m *Metropolis) SetTemperature(t float64) { m.temperature = t }

func (m *Metropolis) SearchStep() error {
	move, ok := m.neighbourhood.RandomMove(m.CurrentSolution())
	if !ok {
		return nil
	}
	validation, err := m.ValidateMove(move)
	if err != nil {
		return err
	}
	if !validation.Passed() {
		m.RejectMove()
		return nil
	}
	eval, err := m.EvaluateMove(move)
	if err != nil {
		return err
	}

	curValidation := m.CurrentValidation()
	delta := m.ComputeDelta(eval.Value(), m.CurrentEvaluation().Value())

	accept := delta > 0 || (curValidation != nil && !curValidation.Passed())
	if !accept {
		p := math.Exp(delta / m.temperature)
		accept = m.rng.Float64() < p
	}
	if !accept {
		m.RejectMove()
		return nil
	}
	m.AcceptMove(move, eval, validation)
	return nil
}
