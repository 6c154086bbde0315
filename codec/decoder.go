package codec

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/wippyai/lattice"
	"github.com/wippyai/lattice/errors"
	"github.com/wippyai/lattice/osc"
)

// Decoder reconstructs bytes from a coordinate by walking the oscillator's
// inverse backward. A Decoder holds no state and is safe for concurrent use.
type Decoder struct{}

// NewDecoder creates a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// finalCandidate is one hypothesis for the anchored final step: the full
// byte amount (end_d plus two auxiliary bits) and the state before the step.
type finalCandidate struct {
	amount int
	before osc.State
}

// Decode reconstructs the exact byte sequence a coordinate was produced
// from, or reports why reconstruction is impossible. It never returns
// partial or guessed bytes: a coordinate whose backward walk admits zero
// reconstructions is rejected as corrupt, and one admitting several is
// rejected as ambiguous.
func (d *Decoder) Decode(coord lattice.Coordinate) ([]byte, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	n := coord.LengthBytes
	if n == 0 {
		return []byte{}, nil
	}
	if n == 1 && coord.PrevMask != coord.StartMask {
		return nil, errors.AnchorMismatch(1,
			"prev_mask must equal start_mask for a one-step walk")
	}

	finals := d.finalCandidates(coord)
	if len(finals) == 0 {
		return nil, errors.AnchorMismatch(n,
			"no step from prev_mask reaches end_mask under end_d")
	}

	// Each final candidate seeds one backward walk. Reconstruction succeeds
	// only when exactly one distinct byte sequence survives.
	var solutions [][]byte
	var walkErr error
	for _, fc := range finals {
		data, err := d.walkBack(coord, fc)
		if err != nil {
			if walkErr == nil || isAmbiguous(err) {
				walkErr = err
			}
			continue
		}
		solutions = appendSolution(solutions, data)
	}

	switch {
	case len(solutions) > 1:
		return nil, errors.Ambiguous(n, coord.EndMask, len(solutions))
	case len(solutions) == 0:
		return nil, walkErr
	}

	Logger().Debug("decode complete",
		zap.Int("length_bytes", n),
		zap.Int("start_mask", coord.StartMask))

	return solutions[0], nil
}

// finalCandidates resolves the anchored final step: every (amount, prior
// direction) pair that carries prev_mask onto end_mask, where the amount's
// low six bits are pinned by end_d. This is how the direction at the end of
// the walk, and the final byte's auxiliary bits, are recovered — neither is
// derivable from end_mask alone.
func (d *Decoder) finalCandidates(coord lattice.Coordinate) []finalCandidate {
	var cands []finalCandidate
	for aux := 0; aux < 4; aux++ {
		amount := coord.EndChoice | aux<<6
		for _, dir := range [2]int{+1, -1} {
			if coord.LengthBytes == 1 && dir != +1 {
				// A one-step walk starts with the initial direction.
				continue
			}
			before := osc.State{Position: coord.PrevMask, Direction: dir}
			next, _, err := before.Step(amount)
			if err != nil {
				continue
			}
			if next.Position == coord.EndMask {
				cands = append(cands, finalCandidate{amount: amount, before: before})
			}
		}
	}
	return cands
}

// walkBack inverts steps n-1 down to 1 for one final-step hypothesis.
// Interior steps must be uniquely invertible; the first step is anchored by
// (start_mask, +1) and must land the walk exactly on its origin.
func (d *Decoder) walkBack(coord lattice.Coordinate, fc finalCandidate) ([]byte, error) {
	n := coord.LengthBytes
	data := make([]byte, n)
	data[n-1] = byte(fc.amount)
	cur := fc.before // state after step n-1

	for step := n - 1; step >= 1; step-- {
		if step == 1 {
			amount, ok := d.firstStep(coord.StartMask, cur)
			if !ok {
				return nil, errors.AnchorMismatch(step,
					"walk does not return to start_mask with direction +1")
			}
			data[0] = byte(amount)
			return data, nil
		}

		var matched int
		var matchedPrior osc.Prior
		var count int
		for amount := 0; amount <= osc.MaxAmount; amount++ {
			priors, err := cur.Invert(amount)
			if err != nil {
				return nil, err
			}
			for _, p := range priors {
				count++
				matched, matchedPrior = amount, p
			}
		}
		switch {
		case count == 0:
			return nil, errors.New(errors.PhaseDecode, errors.KindAnchorMismatch).
				Step(step).
				Position(cur.Position).
				Detail("no consistent predecessor").
				Build()
		case count > 1:
			return nil, errors.Ambiguous(step, cur.Position, count)
		}

		data[step-1] = byte(matched)
		cur = matchedPrior.State
	}

	// n == 1: the final step was the whole walk. finalCandidates pinned the
	// direction; the position anchor was checked before walking.
	return data, nil
}

// firstStep finds the amount carrying the start state onto cur. For a fixed
// prior state each amount maps to a distinct successor, so at most one
// amount matches.
func (d *Decoder) firstStep(startMask int, cur osc.State) (int, bool) {
	start := osc.State{Position: startMask, Direction: +1}
	for amount := 0; amount <= osc.MaxAmount; amount++ {
		next, _, err := start.Step(amount)
		if err != nil {
			return 0, false
		}
		if next == cur {
			return amount, true
		}
	}
	return 0, false
}

func appendSolution(solutions [][]byte, data []byte) [][]byte {
	for _, s := range solutions {
		if bytes.Equal(s, data) {
			return solutions
		}
	}
	return append(solutions, data)
}

func isAmbiguous(err error) bool {
	e, ok := err.(*errors.Error)
	return ok && e.Kind == errors.KindAmbiguous
}
