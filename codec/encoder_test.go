package codec

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/lattice"
	"github.com/wippyai/lattice/errors"
	"github.com/wippyai/lattice/osc"
)

func TestEncode_Empty(t *testing.T) {
	coord, err := NewEncoder(WithRoot(50000)).Encode(nil)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := lattice.Coordinate{
		StartMask:   50000,
		EndMask:     50000,
		PrevMask:    50000,
		EndChoice:   lattice.EndChoiceNone,
		LengthBytes: 0,
	}
	if coord != want {
		t.Errorf("Encode(empty) = %+v, want %+v", coord, want)
	}
}

func TestEncode_SingleByte(t *testing.T) {
	coord, err := NewEncoder(WithRoot(50000)).Encode([]byte{10})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := lattice.Coordinate{
		StartMask:   50000,
		EndMask:     50010,
		PrevMask:    50000,
		EndChoice:   10,
		LengthBytes: 1,
	}
	if coord != want {
		t.Errorf("Encode([10]) = %+v, want %+v", coord, want)
	}
}

func TestEncode_EndChoiceIsLowSixBits(t *testing.T) {
	coord, err := NewEncoder(WithRoot(50000)).Encode([]byte{200})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if coord.EndMask != 50200 {
		t.Errorf("EndMask = %d, want 50200", coord.EndMask)
	}
	if coord.EndChoice != 200&osc.MaxChoice {
		t.Errorf("EndChoice = %d, want %d", coord.EndChoice, 200&osc.MaxChoice)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	data := []byte("determinism is the whole point")
	enc := NewEncoder(WithRoot(77777))

	first, err := enc.Encode(data)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	second, err := enc.Encode(data)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if first != second {
		t.Errorf("coordinates differ: %+v vs %+v", first, second)
	}
}

func TestEncode_RootOutOfRange(t *testing.T) {
	for _, root := range []int{9999, 100000, 0, -50000} {
		_, err := NewEncoder(WithRoot(root)).Encode([]byte{1})
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindOutOfRange}) {
			t.Errorf("root %d: error = %v, want out_of_range", root, err)
		}
	}
}

func TestEncode_Observer(t *testing.T) {
	var events []StepEvent
	enc := NewEncoder(
		WithRoot(99999),
		WithObserver(func(ev StepEvent) { events = append(events, ev) }),
	)

	// First byte reflects off High, second continues downward.
	coord, err := enc.Encode([]byte{200, 150})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if !events[0].Bounced || events[1].Bounced {
		t.Errorf("bounce flags = %v, %v; want true, false", events[0].Bounced, events[1].Bounced)
	}
	if events[0].Before != (osc.State{Position: 99999, Direction: +1}) {
		t.Errorf("first Before = %+v", events[0].Before)
	}
	if events[0].After != (osc.State{Position: 99799, Direction: -1}) {
		t.Errorf("first After = %+v", events[0].After)
	}
	if events[1].Before != events[0].After {
		t.Errorf("step chain broken: %+v then %+v", events[0].After, events[1].Before)
	}
	if events[1].After.Position != coord.EndMask {
		t.Errorf("last After = %d, coordinate EndMask = %d", events[1].After.Position, coord.EndMask)
	}
	if events[0].After.Position != coord.PrevMask {
		t.Errorf("PrevMask = %d, want %d", coord.PrevMask, events[0].After.Position)
	}
	if events[1].Choice != 150&osc.MaxChoice || coord.EndChoice != events[1].Choice {
		t.Errorf("final choice = %d, coordinate EndChoice = %d", events[1].Choice, coord.EndChoice)
	}
}

func TestEncodeFrom_MatchesEncode(t *testing.T) {
	data := "streamed and buffered walks agree"
	enc := NewEncoder(WithRoot(12345))

	fromBytes, err := enc.Encode([]byte(data))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	fromReader, err := enc.EncodeFrom(strings.NewReader(data))
	if err != nil {
		t.Fatalf("EncodeFrom error: %v", err)
	}
	if fromBytes != fromReader {
		t.Errorf("coordinates differ: %+v vs %+v", fromBytes, fromReader)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestEncodeFrom_ReadError(t *testing.T) {
	cause := stderrors.New("disk gone")
	_, err := NewEncoder(WithRoot(50000)).EncodeFrom(failingReader{err: cause})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInvalidData}) {
		t.Fatalf("error = %v, want invalid_data", err)
	}
	if !stderrors.Is(err, cause) {
		t.Errorf("error %v does not wrap its cause", err)
	}
}

func TestEncode_RangeInvariant(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}

	for _, root := range []int{osc.Low, 50000, osc.High} {
		enc := NewEncoder(
			WithRoot(root),
			WithObserver(func(ev StepEvent) {
				if !ev.After.InRange() {
					t.Fatalf("root %d: position %d escaped range at step %d",
						root, ev.After.Position, ev.Index)
				}
			}),
		)
		if _, err := enc.Encode(data); err != nil {
			t.Fatalf("root %d: Encode error: %v", root, err)
		}
	}
}
