package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCoordinate Phase = "coordinate" // coordinate validation
	PhaseEncode     Phase = "encode"     // forward walk
	PhaseDecode     Phase = "decode"     // backward walk
	PhaseWalk       Phase = "walk"       // single step transitions
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfRange     Kind = "out_of_range"    // position or root outside the lattice
	KindInvalidChoice  Kind = "invalid_choice"  // step amount or choice outside its domain
	KindAmbiguous      Kind = "ambiguous"       // more than one consistent reconstruction
	KindAnchorMismatch Kind = "anchor_mismatch" // coordinate does not describe any walk
	KindLengthMismatch Kind = "length_mismatch" // length negative or inconsistent
	KindInvalidData    Kind = "invalid_data"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Position int // oscillator position when relevant; 0 means unset (0 is never a valid position)
	Step     int // 1-based step number within the walk; 0 means unset
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Step > 0 {
		fmt.Fprintf(&b, " at step %d", e.Step)
	}
	if e.Position != 0 {
		fmt.Fprintf(&b, " (position %d)", e.Position)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Step sets the 1-based step number within the walk
func (b *Builder) Step(n int) *Builder {
	b.err.Step = n
	return b
}

// Position sets the oscillator position at which the error occurred
func (b *Builder) Position(p int) *Builder {
	b.err.Position = p
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfRange creates an error for a position outside the lattice bounds
func OutOfRange(phase Phase, what string, position, low, high int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOutOfRange,
		Position: position,
		Detail:   fmt.Sprintf("%s %d outside [%d, %d]", what, position, low, high),
	}
}

// InvalidChoice creates an error for a step amount or choice outside its domain
func InvalidChoice(phase Phase, value, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidChoice,
		Detail: fmt.Sprintf("value %d outside [0, %d]", value, max),
	}
}

// Ambiguous creates an error for a backward step with multiple consistent candidates
func Ambiguous(step, position, candidates int) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindAmbiguous,
		Step:     step,
		Position: position,
		Detail:   fmt.Sprintf("%d consistent predecessors, refusing to guess", candidates),
	}
}

// AnchorMismatch creates an error for a coordinate that describes no walk
func AnchorMismatch(step int, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindAnchorMismatch,
		Step:   step,
		Detail: detail,
	}
}

// LengthMismatch creates an error for a negative or inconsistent length
func LengthMismatch(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseCoordinate,
		Kind:   KindLengthMismatch,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
