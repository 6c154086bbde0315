package codec

import (
	"bufio"
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/lattice"
	"github.com/wippyai/lattice/errors"
	"github.com/wippyai/lattice/osc"
)

// StepEvent describes one completed oscillator step during an encode walk.
type StepEvent struct {
	Index   int // 0-based index of the consumed byte
	Byte    byte
	Choice  int // low six bits of the byte, what end_d would record
	Before  osc.State
	After   osc.State
	Bounced bool
}

// Observer receives step events as the forward walk progresses. Observers
// exist for tooling; the encoder itself never buffers the trajectory.
type Observer func(StepEvent)

// Encoder drives the oscillator forward, one step per input byte, and
// records the minimal state needed to reverse the walk. The zero value is
// not ready for use; construct with NewEncoder. An Encoder is immutable
// after construction and safe for concurrent use.
type Encoder struct {
	root     int
	observer Observer
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithRoot sets the starting mask. It must lie within [osc.Low, osc.High];
// Encode rejects out-of-range roots before any step runs.
func WithRoot(root int) EncoderOption {
	return func(e *Encoder) { e.root = root }
}

// WithObserver registers a step observer for the walk.
func WithObserver(fn Observer) EncoderOption {
	return func(e *Encoder) { e.observer = fn }
}

// NewEncoder creates an Encoder rooted at lattice.DefaultRoot unless
// overridden by options.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{root: lattice.DefaultRoot}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode consumes data left to right and returns its coordinate.
func (e *Encoder) Encode(data []byte) (lattice.Coordinate, error) {
	return e.EncodeFrom(bytes.NewReader(data))
}

// EncodeFrom consumes the reader to EOF and returns the coordinate of the
// stream. The walk carries only the current and previous state, so memory
// stays constant regardless of input size.
func (e *Encoder) EncodeFrom(r io.Reader) (lattice.Coordinate, error) {
	if e.root < osc.Low || e.root > osc.High {
		return lattice.Coordinate{}, errors.OutOfRange(errors.PhaseEncode, "root", e.root, osc.Low, osc.High)
	}

	br := bufio.NewReader(r)
	cur := osc.State{Position: e.root, Direction: +1}
	prev := cur
	endChoice := lattice.EndChoiceNone
	n := 0

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return lattice.Coordinate{}, errors.New(errors.PhaseEncode, errors.KindInvalidData).
				Cause(err).
				Detail("read input at byte %d", n).
				Build()
		}

		amount := int(b)
		next, bounced, err := cur.Step(amount)
		if err != nil {
			return lattice.Coordinate{}, errors.Wrap(errors.PhaseEncode, errors.KindInvalidChoice, err, "forward step")
		}
		if e.observer != nil {
			e.observer(StepEvent{
				Index:   n,
				Byte:    b,
				Choice:  amount & osc.MaxChoice,
				Before:  cur,
				After:   next,
				Bounced: bounced,
			})
		}

		prev = cur
		cur = next
		endChoice = amount & osc.MaxChoice
		n++
	}

	coord := lattice.Coordinate{
		StartMask:   e.root,
		EndMask:     cur.Position,
		PrevMask:    prev.Position,
		EndChoice:   endChoice,
		LengthBytes: n,
	}

	Logger().Debug("encode complete",
		zap.Int("length_bytes", n),
		zap.Int("start_mask", coord.StartMask),
		zap.Int("end_mask", coord.EndMask))

	return coord, nil
}
