// Package eval provides composite Evaluation/Validation types: a penalised
// evaluation that folds penalties into a base value, an aggregate
// validation that records one sub-validation per constraint, and a weighted
// objective composing several sub-objectives.
//
// Grounded on engine/material.go's phased, weighted scoring
// (easychessanimations-zurichess: mid-game/end-game blend, tapered by game
// phase) as the "compose several scalar contributions into one" pattern.
package eval

import "github.com/go-optim/localsearch/search"

// Simple is a plain scalar Evaluation.
type Simple float64

func (s Simple) Value() float64 { return float64(s) }

// Penalty is one named penalty contribution folded into a Penalised
// evaluation.
type Penalty struct {
	Name   string
	Amount float64
}

// Penalised composes a base evaluation with zero or more penalties. Value
// subtracts the total penalty from the base (penalties always make a
// solution look worse, regardless of optimization direction; a minimising
// problem's objective should itself be negated-compatible with that).
type Penalised struct {
	Base     search.Evaluation
	Penalties []Penalty
}

func (p Penalised) Value() float64 {
	v := p.Base.Value()
	for _, pen := range p.Penalties {
		v -= pen.Amount
	}
	return v
}

// TotalPenalty sums every penalty's amount.
func (p Penalised) TotalPenalty() float64 {
	var total float64
	for _, pen := range p.Penalties {
		total += pen.Amount
	}
	return total
}

// WithPenalty returns a copy of p with an additional penalty appended.
func (p Penalised) WithPenalty(name string, amount float64) Penalised {
	penalties := make([]Penalty, len(p.Penalties), len(p.Penalties)+1)
	copy(penalties, p.Penalties)
	penalties = append(penalties, Penalty{Name: name, Amount: amount})
	return Penalised{Base: p.Base, Penalties: penalties}
}
