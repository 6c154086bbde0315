package lattice

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"

	"github.com/wippyai/lattice/errors"
	"github.com/wippyai/lattice/osc"
)

// DefaultRoot is the conventional starting mask used when a walk does not
// derive a private root.
const DefaultRoot = 50000

// EndChoiceNone is the end_d sentinel carried by zero-length coordinates.
const EndChoiceNone = -1

// Coordinate is the serializable result of one encode pass: five plain
// integers that, together, locate the end of a forward walk and anchor its
// final transition. It is created wholly by one encode call, immutable
// thereafter, and consumed wholly by one decode call.
//
// The anchor pair (PrevMask, EndChoice) is the only piece of forward-walk
// history exposed beyond the endpoints. Without it the direction at the end
// of the walk, and whether the final step bounced, would be unrecoverable.
type Coordinate struct {
	StartMask   int `json:"start_mask"`
	EndMask     int `json:"end_mask"`
	PrevMask    int `json:"prev_mask"`
	EndChoice   int `json:"end_d"`
	LengthBytes int `json:"length_bytes"`
}

// Validate checks the coordinate's shape: mask ranges, choice domain, and
// zero-length consistency. It does not prove that a walk exists; the decoder
// establishes that against the anchors.
func (c Coordinate) Validate() error {
	for _, m := range []struct {
		name string
		pos  int
	}{
		{"start_mask", c.StartMask},
		{"end_mask", c.EndMask},
		{"prev_mask", c.PrevMask},
	} {
		if m.pos < osc.Low || m.pos > osc.High {
			return errors.OutOfRange(errors.PhaseCoordinate, m.name, m.pos, osc.Low, osc.High)
		}
	}

	if c.LengthBytes < 0 {
		return errors.LengthMismatch("length_bytes %d is negative", c.LengthBytes)
	}

	if c.LengthBytes == 0 {
		if c.EndMask != c.StartMask || c.PrevMask != c.StartMask {
			return errors.LengthMismatch(
				"zero-length coordinate with unequal masks (start %d, end %d, prev %d)",
				c.StartMask, c.EndMask, c.PrevMask)
		}
		if c.EndChoice != EndChoiceNone {
			return errors.LengthMismatch("zero-length coordinate with end_d %d, want sentinel %d",
				c.EndChoice, EndChoiceNone)
		}
		return nil
	}

	if c.EndChoice < 0 || c.EndChoice > osc.MaxChoice {
		return errors.InvalidChoice(errors.PhaseCoordinate, c.EndChoice, osc.MaxChoice)
	}
	return nil
}

// ParseCoordinate unmarshals a coordinate from its five-field JSON object and
// validates it.
func ParseCoordinate(data []byte) (Coordinate, error) {
	if len(data) == 0 {
		return Coordinate{}, errors.InvalidData(errors.PhaseCoordinate, "empty coordinate payload")
	}
	var c Coordinate
	if err := json.Unmarshal(data, &c); err != nil {
		return Coordinate{}, errors.Wrap(errors.PhaseCoordinate, errors.KindInvalidData, err, "parse coordinate JSON")
	}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// RootForLabel derives a starting mask from an arbitrary label, folded into
// [osc.Low, osc.High]. The same label always yields the same root, so two
// parties sharing a label agree on a walk origin without exchanging it.
func RootForLabel(label string) int {
	h := sha256.Sum256([]byte(label))
	span := uint64(osc.High - osc.Low + 1)
	return osc.Low + int(binary.BigEndian.Uint64(h[:8])%span)
}
