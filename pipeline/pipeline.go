package pipeline

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/remap/interval"
)

// Split divides iv against the rule's source.
// If they are disjoint, ok is false and rest holds iv unchanged.
// Otherwise mapped is the shifted intersection and rest holds the left and
// right remainders (zero, one or two pieces, left first).
// Complexity: O(1).
func (r MapRule) Split(iv interval.Interval) (mapped interval.Interval, ok bool, rest []interval.Interval) {
	// bounding-box pre-check
	if r.Source.End < iv.Start || r.Source.Start > iv.End {
		return interval.Interval{}, false, []interval.Interval{iv}
	}
	if iv.Start < r.Source.Start {
		rest = append(rest, interval.Interval{Start: iv.Start, End: r.Source.Start - 1})
	}
	if iv.End > r.Source.End {
		rest = append(rest, interval.Interval{Start: r.Source.End + 1, End: iv.End})
	}
	hit, _ := iv.Intersect(r.Source)

	return hit.Shift(r.Offset), true, rest
}

// Lookup maps a single value through the stage. The first rule whose source
// contains v wins; uncovered values map to themselves.
func (s MapStage) Lookup(v int) int {
	for _, r := range s.Rules {
		if mapped, ok := r.Map(v); ok {
			return mapped
		}
	}

	return v
}

// Validate reports ErrOverlappingRules if any two rule sources intersect.
// Complexity: O(r log r).
func (s MapStage) Validate() error {
	rules := make([]MapRule, len(s.Rules))
	copy(rules, s.Rules)
	sort.Slice(rules, func(i, j int) bool { return rules[i].Source.Start < rules[j].Source.Start })
	for i := 1; i < len(rules); i++ {
		if rules[i-1].Source.Overlaps(rules[i].Source) {
			return fmt.Errorf("%w: %q %s and %s", ErrOverlappingRules, s.Name, rules[i-1].Source, rules[i].Source)
		}
	}

	return nil
}

// ApplyStage maps intervals through one stage.
//
// Every input interval is split so that each resulting piece lies entirely
// inside or entirely outside each rule. Pieces inside a rule are shifted by
// its Offset and emitted at once; the left and right remainders are retested
// against the remaining rules, and whatever no rule claims is emitted as is.
//
// The input slice is not modified. With disjoint rule sources the output
// covers exactly as many integers as the input. Intervals with Start > End,
// which only struct literals can produce, cover nothing and are dropped.
// Complexity: O(n·r) for n intervals and r rules.
func ApplyStage(intervals []interval.Interval, stage MapStage, opts ...Option) []interval.Interval {
	o := buildOptions(opts)

	return applyStage(intervals, stage, o)
}

func applyStage(intervals []interval.Interval, stage MapStage, o Options) []interval.Interval {
	out := make([]interval.Interval, 0, len(intervals))
	for _, iv := range intervals {
		// inverted literals cover no values
		if !iv.Valid() {
			if o.Logger != nil {
				o.Logger.Debug("skipping inverted interval", "stage", stage.Name, "piece", iv.String())
			}
			continue
		}
		pending := []interval.Interval{iv}
		for _, rule := range stage.Rules {
			if len(pending) == 0 {
				break
			}
			next := make([]interval.Interval, 0, len(pending)+1)
			for _, piece := range pending {
				mapped, ok, rest := rule.Split(piece)
				next = append(next, rest...)
				if !ok {
					continue
				}
				out = append(out, mapped)
				if o.OnSplit != nil {
					o.OnSplit(stage.Name, piece, mapped, rest)
				}
				if o.Logger != nil {
					o.Logger.Debug("split",
						"stage", stage.Name,
						"piece", piece.String(),
						"rule", rule.String(),
						"mapped", mapped.String(),
						"unmapped", len(rest),
					)
				}
			}
			pending = next
		}
		// identity for everything no rule claimed
		out = append(out, pending...)
	}
	if o.Normalize {
		out = interval.Merge(out)
	}
	if o.Logger != nil {
		o.Logger.Debug("stage applied",
			"stage", stage.Name,
			"rules", len(stage.Rules),
			"in", len(intervals),
			"out", len(out),
		)
	}

	return out
}

// Run applies stages in order, feeding each stage's output to the next, and
// returns the final intervals. With no stages the result is a copy of initial.
func Run(initial []interval.Interval, stages []MapStage, opts ...Option) []interval.Interval {
	o := buildOptions(opts)
	current := make([]interval.Interval, len(initial))
	copy(current, initial)
	for _, stage := range stages {
		current = applyStage(current, stage, o)
	}

	return current
}

// MinimumValue returns the smallest Start across intervals.
// Returns ErrEmptyResult if intervals is empty.
func MinimumValue(intervals []interval.Interval) (int, error) {
	if len(intervals) == 0 {
		return 0, ErrEmptyResult
	}

	return interval.Min(intervals)
}

// Run applies every stage of p to initial. See the package-level Run.
func (p Pipeline) Run(initial []interval.Interval, opts ...Option) []interval.Interval {
	return Run(initial, p.Stages, opts...)
}

// Lowest runs p over initial and reduces the result with MinimumValue.
func (p Pipeline) Lowest(initial []interval.Interval, opts ...Option) (int, error) {
	return MinimumValue(p.Run(initial, opts...))
}

// Lookup maps a single value through every stage of p.
// Complexity: O(total rules).
func (p Pipeline) Lookup(v int) int {
	for _, s := range p.Stages {
		v = s.Lookup(v)
	}

	return v
}

// Validate runs MapStage.Validate on every stage and returns the first error.
func (p Pipeline) Validate() error {
	for _, s := range p.Stages {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	return nil
}
