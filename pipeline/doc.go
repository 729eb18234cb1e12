// Package pipeline applies ordered chains of piecewise-linear integer maps to
// sets of closed integer ranges.
//
// What:
//
//   - MapRule shifts every integer of its Source interval by Offset.
//   - MapStage is one named step ("seed-to-soil") made of disjoint rules;
//     integers no rule covers map to themselves.
//   - Pipeline is an ordered list of stages; stage i's output ranges are
//     stage i+1's input ranges.
//
// Core operations:
//
//   - ApplyStage splits each input interval into pieces that lie entirely
//     inside or entirely outside every rule, shifts the covered pieces and
//     passes the rest through unchanged.
//   - Run chains ApplyStage over all stages.
//   - MinimumValue reduces the final ranges to their smallest start.
//
// Algorithm Outline (ApplyStage):
//
//  1. For every input interval keep a list of pending (not yet mapped) pieces,
//     initially just the interval itself.
//  2. For every rule, test each pending piece with a bounding-box check;
//     disjoint pieces stay pending.
//  3. An intersecting piece splits into at most three parts: the left
//     remainder and right remainder stay pending for the remaining rules,
//     the intersection is shifted by Offset and emitted immediately.
//  4. Pieces still pending after the last rule are emitted unchanged.
//
// Invariants:
//
//   - Coverage conservation: with disjoint rules, TotalLen(output) equals
//     TotalLen(input); integers are relocated, never created or dropped.
//   - A mapped piece is never tested again within the same stage.
//   - Inputs are never mutated.
//
// Complexity:
//
//   - ApplyStage: O(n·r) time and output size for n input intervals and r rules
//     (each rule adds at most two pieces).
//   - Run: sum of ApplyStage over all stages.
//
// Errors:
//
//   - ErrEmptyResult:       MinimumValue called with no intervals.
//   - ErrNonPositiveLength: NewRule called with length ≤ 0.
//   - ErrRuleOverflow:      NewRule range or offset outside int.
//   - ErrOverlappingRules:  MapStage.Validate found intersecting sources.
//     ApplyStage itself does not detect overlap; overlapping rules give
//     undefined (but deterministic) results.
package pipeline
