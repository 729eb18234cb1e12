package interval

import (
	"fmt"
	"math"
	"sort"
)

// Interval is a closed range of integers [Start, End].
// Values are never mutated; every operation returns a new Interval.
//
// The zero value is the valid single-point interval [0, 0]. Struct literals
// bypass the constructors and must keep Start <= End themselves; use Valid
// to check values of unknown origin.
type Interval struct {
	Start int
	End   int
}

// New returns the closed interval [start, end].
// Returns a *ValidationError wrapping ErrInvalidBounds if start > end.
func New(start, end int) (Interval, error) {
	if start > end {
		return Interval{}, &ValidationError{Start: start, End: end, Err: ErrInvalidBounds}
	}

	return Interval{Start: start, End: end}, nil
}

// FromLength returns the interval covering length integers beginning at start,
// i.e. [start, start+length-1].
// Returns a *ValidationError wrapping ErrNonPositiveLength if length ≤ 0, or
// ErrInvalidBounds if the end would overflow int.
func FromLength(start, length int) (Interval, error) {
	if length <= 0 {
		return Interval{}, &ValidationError{Start: start, End: start + length - 1, Err: ErrNonPositiveLength}
	}
	if start > math.MaxInt-length+1 {
		return Interval{}, &ValidationError{Start: start, End: start + length - 1, Err: ErrInvalidBounds}
	}

	return Interval{Start: start, End: start + length - 1}, nil
}

// Point returns the single-value interval [v, v].
func Point(v int) Interval {
	return Interval{Start: v, End: v}
}

// Valid reports whether Start <= End.
func (iv Interval) Valid() bool {
	return iv.Start <= iv.End
}

// Check returns a *ValidationError wrapping ErrInvalidBounds when iv is not
// Valid.
func (iv Interval) Check() error {
	if iv.Valid() {
		return nil
	}

	return &ValidationError{Start: iv.Start, End: iv.End, Err: ErrInvalidBounds}
}

// Len returns the number of integers covered.
// The count wraps for spans wider than math.MaxInt; see Count.
func (iv Interval) Len() int {
	return iv.End - iv.Start + 1
}

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v int) bool {
	return iv.Start <= v && v <= iv.End
}

// Overlaps reports whether the two intervals share at least one integer.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start <= o.End && o.Start <= iv.End
}

// Intersect returns the common part of iv and o.
// The boolean is false when they are disjoint.
func (iv Interval) Intersect(o Interval) (Interval, bool) {
	start, end := max(iv.Start, o.Start), min(iv.End, o.End)
	if start > end {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}

// Shift moves both endpoints by offset.
func (iv Interval) Shift(offset int) Interval {
	return Interval{Start: iv.Start + offset, End: iv.End + offset}
}

// String renders the interval as "[start, end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Start, iv.End)
}

// TotalLen returns the summed length of all intervals, counting overlaps
// once per interval.
func TotalLen(ivs []Interval) int {
	total := 0
	for _, iv := range ivs {
		total += iv.Len()
	}

	return total
}

// Count returns the number of integers covered by ivs, counting overlaps once
// per interval, or ok == false as soon as that number exceeds limit.
// Unlike TotalLen it never wraps, whatever the bounds.
// Intervals that are not Valid contribute nothing.
func Count(ivs []Interval, limit int) (total int, ok bool) {
	if limit < 0 {
		return 0, false
	}
	var sum uint64
	for _, iv := range ivs {
		if !iv.Valid() {
			continue
		}
		// two's complement difference is exact for End >= Start
		span := uint64(iv.End) - uint64(iv.Start)
		if span >= uint64(limit) {
			return 0, false
		}
		sum += span + 1
		if sum > uint64(limit) {
			return 0, false
		}
	}

	return int(sum), true
}

// Min returns the smallest Start across ivs.
// Returns ErrEmpty if ivs has no elements.
func Min(ivs []Interval) (int, error) {
	if len(ivs) == 0 {
		return 0, ErrEmpty
	}
	lowest := ivs[0].Start
	for _, iv := range ivs[1:] {
		if iv.Start < lowest {
			lowest = iv.Start
		}
	}

	return lowest, nil
}

// Sort returns a copy of ivs ordered by (Start, End).
func Sort(ivs []Interval) []Interval {
	out := make([]Interval, len(ivs))
	copy(out, ivs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start == out[j].Start {
			return out[i].End < out[j].End
		}
		return out[i].Start < out[j].Start
	})

	return out
}

// Merge returns the normalized union of ivs: sorted, with overlapping or
// adjacent intervals coalesced. The input is not modified.
// Complexity: O(n log n).
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := Sort(ivs)
	out := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		// adjacent ranges join too: [1,3] + [4,6] = [1,6]
		if iv.Start <= last.End || iv.Start-1 == last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}

	return out
}
