package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindAmbiguous,
				Step:     3,
				Position: 99948,
				Detail:   "2 consistent predecessors",
			},
			contains: []string{"[decode]", "ambiguous", "step 3", "position 99948", "2 consistent predecessors"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseCoordinate,
				Kind:  KindLengthMismatch,
			},
			contains: []string{"[coordinate]", "length_mismatch"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindInvalidData,
				Detail: "read input",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "invalid_data", "read input", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindAnchorMismatch,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindAmbiguous,
		Step:  2,
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindAmbiguous}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindAmbiguous}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindAnchorMismatch}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindAmbiguous}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match phase and kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseDecode, KindAmbiguous).
		Step(4).
		Position(12345).
		Detail("%d candidates", 3).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindAmbiguous {
		t.Errorf("phase/kind = %s/%s", err.Phase, err.Kind)
	}
	if err.Step != 4 || err.Position != 12345 {
		t.Errorf("step/position = %d/%d", err.Step, err.Position)
	}
	if err.Detail != "3 candidates" {
		t.Errorf("detail = %q", err.Detail)
	}
	if !errors.Is(err, err) || err.Unwrap() != cause {
		t.Error("cause chain broken")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"OutOfRange", OutOfRange(PhaseEncode, "root", 9999, 10000, 99999), KindOutOfRange},
		{"InvalidChoice", InvalidChoice(PhaseWalk, 300, 255), KindInvalidChoice},
		{"Ambiguous", Ambiguous(2, 50000, 7), KindAmbiguous},
		{"AnchorMismatch", AnchorMismatch(1, "no walk"), KindAnchorMismatch},
		{"LengthMismatch", LengthMismatch("length %d", -1), KindLengthMismatch},
		{"InvalidData", InvalidData(PhaseCoordinate, "bad JSON"), KindInvalidData},
		{"Wrap", Wrap(PhaseEncode, KindInvalidData, errors.New("io"), "read"), KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty rendering")
			}
		})
	}
}
