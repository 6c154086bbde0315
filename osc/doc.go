// Package osc implements the bounded oscillator state machine.
//
// The oscillator holds a position confined to [Low, High] and a direction
// sign. One step displaces the position by Direction*amount; a candidate
// that would leave the range reflects off the crossed bound and flips the
// direction:
//
//	candidate > High  →  position = 2*High - candidate, direction flips
//	candidate < Low   →  position = 2*Low  - candidate, direction flips
//
// Amounts never exceed MaxAmount (255), so one reflection always suffices.
//
// Invert recovers the predecessor of a state for a known amount by testing
// the three step hypotheses (no bounce, bounce off High, bounce off Low) and
// verifying each by forward re-application. The package is a leaf: it keeps
// no history and depends only on the errors package.
package osc
