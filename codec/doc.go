// Package codec drives the bounded oscillator in both directions.
//
// # Walk Overview
//
// Encoding consumes the input once, left to right, one oscillator step per
// byte. The byte value is the step amount; its low six bits are the choice
// that end_d records, its high two bits are the auxiliary pair the anchor
// recovers:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ bytes → [Encoder] → osc steps → Coordinate (5 integers)      │
//	│ Coordinate → [Decoder] → inverse osc steps → bytes           │
//	└──────────────────────────────────────────────────────────────┘
//
// The encoder keeps only the current state, the previous position, and the
// last choice; it never buffers the trajectory. Observers can watch steps
// for tooling without changing that.
//
// # Anchors
//
// A coordinate pins three points of the walk:
//
//	start_mask            position before step 1, direction +1 by definition
//	prev_mask, end_d      position before the final step and its choice
//	end_mask              position after the final step
//
// Decoding first resolves the final step against (prev_mask, end_d): the
// prior direction, the bounce status, and the auxiliary bits of the final
// byte are exactly the hypotheses that carry prev_mask onto end_mask. The
// first step is resolved against (start_mask, +1) the same way.
//
// # Reconstruction Guarantees
//
// An anchor narrows a step to the few hypotheses consistent with it, and a
// backward step whose predecessor is not uniquely determined stops the walk
// with an ambiguity error — the decoder proves every reconstruction it
// returns and never guesses between candidates. Anchored steps are unique
// unless they land in a reflection shadow of their anchor: two amounts
// sharing the same recorded choice, one grazing a bound and one reflecting
// off it, reach the same end position and leave even a one-byte walk
// ambiguous. The shadow requires the anchor position within a step of a
// bound; everywhere else one- and two-byte walks reconstruct exactly.
// Interior steps of longer walks carry no anchor and are rejected as
// ambiguous unless pinned.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[encode] out_of_range (position 9999): root 9999 outside [10000, 99999]
//	[decode] ambiguous at step 3 (position 99948): 512 consistent predecessors, refusing to guess
//
// # Thread Safety
//
// Encoder and Decoder hold configuration only; every call owns its walk
// state locally, so both are safe for concurrent use.
package codec
