// Package interval provides a closed integer range value type and the small
// set of helpers needed to reason about collections of ranges.
//
// What:
//
//   - Interval is an immutable closed range [Start, End] with Start ≤ End.
//   - Constructors validate bounds: New, FromLength, Point.
//   - Arithmetic returns new values: Shift, Intersect.
//   - Collection helpers: TotalLen, Count, Sort, Merge, Min.
//   - The zero value [0, 0] is valid. Fields are exported, so literals must
//     keep Start ≤ End; Valid and Check test values built by hand.
//
// Why:
//
//   - Id ranges (seeds, soils, locations…) are far too large to enumerate;
//     working on [Start, End] pairs keeps every operation proportional to the
//     number of ranges, not the number of ids they cover.
//
// Complexity:
//
//   - Len, Contains, Overlaps, Intersect, Shift: O(1).
//   - TotalLen, Count, Min: O(n).
//   - Sort, Merge: O(n log n) time, O(n) memory.
//
// Errors:
//
//   - ErrInvalidBounds:     Start > End, or an end past math.MaxInt.
//   - ErrNonPositiveLength: FromLength called with length ≤ 0.
//   - ErrEmpty:             Min called on an empty collection.
//
// Bounds errors are reported as *ValidationError, which unwraps to the
// sentinel so errors.Is works on either.
package interval
