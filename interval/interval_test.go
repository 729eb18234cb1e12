package interval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/remap/interval"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects inverted bounds.
func TestNew_Errors(t *testing.T) {
	_, err := interval.New(5, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interval.ErrInvalidBounds))

	var verr *interval.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 5, verr.Start)
	assert.Equal(t, 4, verr.End)
}

// TestNew_SinglePoint accepts start == end.
func TestNew_SinglePoint(t *testing.T) {
	iv, err := interval.New(7, 7)
	require.NoError(t, err)
	assert.Equal(t, interval.Point(7), iv)
	assert.Equal(t, 1, iv.Len())
}

// TestFromLength covers the (start, length) form used by almanac seed pairs.
func TestFromLength(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		length int
		want   interval.Interval
		err    error
	}{
		{"One", 79, 1, interval.Interval{Start: 79, End: 79}, nil},
		{"Many", 79, 14, interval.Interval{Start: 79, End: 92}, nil},
		{"Zero", 10, 0, interval.Interval{}, interval.ErrNonPositiveLength},
		{"Negative", 10, -3, interval.Interval{}, interval.ErrNonPositiveLength},
		{"EndsAtMaxInt", math.MaxInt - 9, 10, interval.Interval{Start: math.MaxInt - 9, End: math.MaxInt}, nil},
		{"PointAtMaxInt", math.MaxInt, 1, interval.Point(math.MaxInt), nil},
		{"FromMinInt", math.MinInt, math.MaxInt, interval.Interval{Start: math.MinInt, End: -2}, nil},
		{"EndOverflows", math.MaxInt, 2, interval.Interval{}, interval.ErrInvalidBounds},
		{"HugeLength", 2, math.MaxInt, interval.Interval{}, interval.ErrInvalidBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := interval.FromLength(tc.start, tc.length)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.length, got.Len())
		})
	}
}

// TestFromLength_OverflowIsValidationError keeps the offending start in the error.
func TestFromLength_OverflowIsValidationError(t *testing.T) {
	_, err := interval.FromLength(math.MaxInt, 2)
	var verr *interval.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, math.MaxInt, verr.Start)
	assert.Greater(t, verr.Start, verr.End)
}

// TestValid covers the zero value and hand-built literals.
func TestValid(t *testing.T) {
	var zero interval.Interval
	assert.True(t, zero.Valid())
	assert.NoError(t, zero.Check())
	assert.Equal(t, 1, zero.Len())

	bad := interval.Interval{Start: 3, End: 2}
	assert.False(t, bad.Valid())
	assert.ErrorIs(t, bad.Check(), interval.ErrInvalidBounds)
}

// TestCount caps the total without wrapping on extreme bounds.
func TestCount(t *testing.T) {
	small := []interval.Interval{{Start: 0, End: 4}, {Start: 10, End: 10}}
	got, ok := interval.Count(small, 100)
	assert.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = interval.Count(small, 5)
	assert.False(t, ok)
	got, ok = interval.Count(small, 6)
	assert.True(t, ok)
	assert.Equal(t, 6, got)

	huge := []interval.Interval{{Start: 0, End: math.MaxInt - 1}, {Start: -10, End: math.MaxInt - 20}}
	assert.Negative(t, interval.TotalLen(huge), "TotalLen wraps here")
	_, ok = interval.Count(huge, 100)
	assert.False(t, ok)

	_, ok = interval.Count([]interval.Interval{{Start: math.MinInt, End: math.MaxInt}}, math.MaxInt)
	assert.False(t, ok)

	got, ok = interval.Count([]interval.Interval{{Start: 5, End: 1}}, 10)
	assert.True(t, ok)
	assert.Zero(t, got)
}

//----------------------------------------------------------------------------//
// Arithmetic
//----------------------------------------------------------------------------//

// TestIntersect checks overlapping, touching and disjoint pairs.
func TestIntersect(t *testing.T) {
	a := interval.Interval{Start: 0, End: 10}

	got, ok := a.Intersect(interval.Interval{Start: 5, End: 7})
	assert.True(t, ok)
	assert.Equal(t, interval.Interval{Start: 5, End: 7}, got)

	got, ok = a.Intersect(interval.Interval{Start: 10, End: 20})
	assert.True(t, ok)
	assert.Equal(t, interval.Point(10), got)

	_, ok = a.Intersect(interval.Interval{Start: 11, End: 20})
	assert.False(t, ok)
	assert.False(t, a.Overlaps(interval.Interval{Start: -5, End: -1}))
}

// TestShift verifies that shifting preserves length and leaves the receiver intact.
func TestShift(t *testing.T) {
	a := interval.Interval{Start: 10, End: 20}
	b := a.Shift(5)
	assert.Equal(t, interval.Interval{Start: 15, End: 25}, b)
	assert.Equal(t, interval.Interval{Start: 10, End: 20}, a)
	assert.Equal(t, a.Len(), b.Len())
	assert.True(t, b.Contains(25))
	assert.False(t, b.Contains(26))
	assert.Equal(t, "[15, 25]", b.String())
}

//----------------------------------------------------------------------------//
// Collections
//----------------------------------------------------------------------------//

// TestMin covers the empty-collection error and the normal reduction.
func TestMin(t *testing.T) {
	_, err := interval.Min(nil)
	assert.ErrorIs(t, err, interval.ErrEmpty)

	got, err := interval.Min([]interval.Interval{{Start: 8, End: 9}, {Start: -2, End: 0}, {Start: 3, End: 3}})
	require.NoError(t, err)
	assert.Equal(t, -2, got)
}

// TestSort_DoesNotMutate checks ordering and that the input is copied.
func TestSort_DoesNotMutate(t *testing.T) {
	in := []interval.Interval{{Start: 5, End: 9}, {Start: 1, End: 4}, {Start: 1, End: 2}}
	got := interval.Sort(in)
	assert.Equal(t, []interval.Interval{{Start: 1, End: 2}, {Start: 1, End: 4}, {Start: 5, End: 9}}, got)
	assert.Equal(t, interval.Interval{Start: 5, End: 9}, in[0])
}

// TestMerge coalesces overlapping and adjacent ranges only.
func TestMerge(t *testing.T) {
	in := []interval.Interval{
		{Start: 20, End: 25},
		{Start: 1, End: 3},
		{Start: 4, End: 6},
		{Start: 5, End: 10},
		{Start: 12, End: 12},
	}
	got := interval.Merge(in)
	assert.Equal(t, []interval.Interval{
		{Start: 1, End: 10},
		{Start: 12, End: 12},
		{Start: 20, End: 25},
	}, got)
	assert.Nil(t, interval.Merge(nil))
	assert.Equal(t, 9, interval.TotalLen(in[:2]))
}

// TestMerge_MaxInt does not wrap around at the top of the int range.
func TestMerge_MaxInt(t *testing.T) {
	in := []interval.Interval{
		{Start: math.MaxInt - 5, End: math.MaxInt},
		{Start: math.MaxInt - 1, End: math.MaxInt},
	}
	assert.Equal(t, []interval.Interval{{Start: math.MaxInt - 5, End: math.MaxInt}}, interval.Merge(in))
}
