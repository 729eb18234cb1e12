package almanac

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/remap/interval"
	"github.com/katalvlaran/remap/pipeline"
)

// Mode selects how the seeds line is interpreted.
type Mode string

const (
	// ModePoints treats every seed value as a single-value range.
	ModePoints Mode = "points"
	// ModeRanges treats seed values as (start, length) pairs.
	ModeRanges Mode = "ranges"
)

// ParseMode converts a case-insensitive mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePoints:
		return ModePoints, nil
	case ModeRanges:
		return ModeRanges, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Almanac is the parsed input: raw seed values and the ordered stages.
type Almanac struct {
	Seeds  []int
	Stages []pipeline.MapStage
}

// Pipeline returns the stages as a pipeline.Pipeline.
func (a *Almanac) Pipeline() pipeline.Pipeline {
	return pipeline.New(a.Stages...)
}

// SeedPoints returns every seed as the interval [seed, seed].
func (a *Almanac) SeedPoints() []interval.Interval {
	out := make([]interval.Interval, len(a.Seeds))
	for i, s := range a.Seeds {
		out[i] = interval.Point(s)
	}

	return out
}

// SeedRanges reads the seeds as (start, length) pairs.
// Returns ErrOddSeedCount for an unpaired value and a *interval.ValidationError
// for a length ≤ 0.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))
	}
	out := make([]interval.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, err := interval.FromLength(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed pair %d: %w", i/2, err)
		}
		out = append(out, iv)
	}

	return out, nil
}

// SeedIntervals returns the seeds interpreted according to mode.
func (a *Almanac) SeedIntervals(mode Mode) ([]interval.Interval, error) {
	switch mode {
	case ModePoints:
		return a.SeedPoints(), nil
	case ModeRanges:
		return a.SeedRanges()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Solve runs every stage over the seeds read in mode and returns the
// smallest resulting value.
func (a *Almanac) Solve(mode Mode, opts ...pipeline.Option) (int, error) {
	seeds, err := a.SeedIntervals(mode)
	if err != nil {
		return 0, err
	}

	return a.Pipeline().Lowest(seeds, opts...)
}
