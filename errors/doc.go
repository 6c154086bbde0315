// Package errors provides structured error types for the lattice codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes walk context: the step number and the
// oscillator position at the point of failure, plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindAmbiguous).
//		Step(3).
//		Position(99948).
//		Detail("2 consistent predecessors").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseEncode, "root", 9999, osc.Low, osc.High)
//	err := errors.Ambiguous(3, 99948, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
