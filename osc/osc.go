package osc

import (
	"github.com/wippyai/lattice/errors"
)

// Lattice bounds. A position is always a non-negative five-digit decimal
// integer, so both bounds are inclusive.
const (
	Low  = 10000
	High = 99999
)

const (
	// MaxAmount is the largest per-step displacement: one full byte.
	// It is far below the range width (High - Low = 89999), so a single
	// reflection always returns an overshooting candidate into range.
	MaxAmount = 255

	// MaxChoice is the largest recordable 6-bit choice. A step amount
	// splits into a choice (low six bits) and two auxiliary bits.
	MaxChoice = 63
)

// State is the complete oscillator state between steps: a bounded position
// and the sign applied to the next step amount.
type State struct {
	Position  int
	Direction int // +1 or -1
}

// InRange reports whether the position lies within the lattice bounds.
func (s State) InRange() bool {
	return s.Position >= Low && s.Position <= High
}

// Step advances the oscillator by one step. The candidate next position is
// Position + Direction*amount. A candidate beyond a bound reflects off that
// bound and flips the direction; this is the only transition in the system.
//
// The returned bool reports whether the step bounced.
func (s State) Step(amount int) (State, bool, error) {
	if amount < 0 || amount > MaxAmount {
		return State{}, false, errors.InvalidChoice(errors.PhaseWalk, amount, MaxAmount)
	}

	candidate := s.Position + s.Direction*amount
	switch {
	case candidate > High:
		return State{Position: 2*High - candidate, Direction: -s.Direction}, true, nil
	case candidate < Low:
		return State{Position: 2*Low - candidate, Direction: -s.Direction}, true, nil
	default:
		return State{Position: candidate, Direction: s.Direction}, false, nil
	}
}

// Prior is one consistent predecessor of an observed post-step state.
type Prior struct {
	State   State // state before the step
	Bounced bool  // whether the step that produced the observed state bounced
}

// Invert enumerates every predecessor state that the given amount maps onto
// s. Three hypotheses are tested: no bounce, reflection off High, and
// reflection off Low. Each candidate is verified by forward re-application.
//
// Exactly one prior exists for almost every state. The exception is the
// reflection shadow: when s.Position sits exactly amount inside a bound and
// the direction points away from it, a walk that grazed the bound and one
// that reflected off it are indistinguishable, and both priors are returned.
// Callers must treat that case as ambiguous rather than pick one.
func (s State) Invert(amount int) ([]Prior, error) {
	if amount < 0 || amount > MaxAmount {
		return nil, errors.InvalidChoice(errors.PhaseWalk, amount, MaxAmount)
	}

	var priors []Prior

	// No bounce: direction was unchanged by the step.
	p := State{Position: s.Position - s.Direction*amount, Direction: s.Direction}
	if p.InRange() {
		if next, bounced, _ := p.Step(amount); !bounced && next == s {
			priors = append(priors, Prior{State: p})
		}
	}

	// Reflection off High: the prior moved upward and flipped to -1.
	if s.Direction == -1 {
		p := State{Position: 2*High - s.Position - amount, Direction: +1}
		if p.InRange() {
			if next, bounced, _ := p.Step(amount); bounced && next == s {
				priors = append(priors, Prior{State: p, Bounced: true})
			}
		}
	}

	// Reflection off Low: the prior moved downward and flipped to +1.
	if s.Direction == +1 {
		p := State{Position: 2*Low - s.Position + amount, Direction: -1}
		if p.InRange() {
			if next, bounced, _ := p.Step(amount); bounced && next == s {
				priors = append(priors, Prior{State: p, Bounced: true})
			}
		}
	}

	return priors, nil
}
