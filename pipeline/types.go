package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/remap/interval"
)

// MapRule maps every integer x of Source to x + Offset.
type MapRule struct {
	Source interval.Interval
	Offset int
}

// NewRule builds a rule from an almanac triple (destination start, source
// start, length): Source = [sourceStart, sourceStart+length-1] and
// Offset = destStart - sourceStart.
// Returns an error wrapping ErrNonPositiveLength if length ≤ 0, and
// ErrRuleOverflow if the source, destination or offset do not fit in int.
func NewRule(destStart, sourceStart, length int) (MapRule, error) {
	src, err := interval.FromLength(sourceStart, length)
	if err != nil {
		if errors.Is(err, interval.ErrNonPositiveLength) {
			return MapRule{}, fmt.Errorf("%w: %w", ErrNonPositiveLength, err)
		}
		return MapRule{}, fmt.Errorf("%w: source: %w", ErrRuleOverflow, err)
	}
	if _, err := interval.FromLength(destStart, length); err != nil {
		return MapRule{}, fmt.Errorf("%w: destination: %w", ErrRuleOverflow, err)
	}
	if (sourceStart > 0 && destStart < math.MinInt+sourceStart) ||
		(sourceStart < 0 && destStart > math.MaxInt+sourceStart) {
		return MapRule{}, fmt.Errorf("%w: offset %d - %d", ErrRuleOverflow, destStart, sourceStart)
	}

	return MapRule{Source: src, Offset: destStart - sourceStart}, nil
}

// Destination returns the image of Source under the rule.
func (r MapRule) Destination() interval.Interval {
	return r.Source.Shift(r.Offset)
}

// Map translates a single value. ok is false when v lies outside Source.
func (r MapRule) Map(v int) (mapped int, ok bool) {
	if !r.Source.Contains(v) {
		return v, false
	}

	return v + r.Offset, true
}

// String renders the rule as "[a, b] +offset".
func (r MapRule) String() string {
	return fmt.Sprintf("%s %+d", r.Source, r.Offset)
}

// MapStage is one named step of a Pipeline.
// Name is typically "<From>-to-<To>"; From and To name the value categories
// on either side and may be empty for anonymous stages.
type MapStage struct {
	Name  string
	From  string
	To    string
	Rules []MapRule
}

// NewStage returns a stage named "<from>-to-<to>" holding rules.
func NewStage(from, to string, rules ...MapRule) MapStage {
	return MapStage{
		Name:  from + "-to-" + to,
		From:  from,
		To:    to,
		Rules: rules,
	}
}

// Pipeline is an ordered list of stages, applied strictly in sequence.
type Pipeline struct {
	Stages []MapStage
}

// New returns a Pipeline over stages.
func New(stages ...MapStage) Pipeline {
	return Pipeline{Stages: stages}
}

// SplitHook observes one split performed by ApplyStage: the piece that was
// tested, the shifted intersection, and the remainders left pending.
type SplitHook func(stage string, piece interval.Interval, mapped interval.Interval, unmapped []interval.Interval)

// Option configures optional behavior of ApplyStage and Run.
type Option func(*Options)

// Options holds the tunables shared by ApplyStage and Run.
type Options struct {
	// Logger, if non-nil, receives debug records for every split and a
	// summary record per applied stage.
	Logger *slog.Logger

	// OnSplit, if non-nil, is called for every rule/piece intersection.
	OnSplit SplitHook

	// Normalize, if true, merges each stage's output into its normalized
	// union. Overlapping outputs are coalesced, so TotalLen conservation
	// no longer holds for inputs that overlap. Default is false.
	Normalize bool
}

// DefaultOptions returns Options with no logger, no hook and no normalization.
func DefaultOptions() Options {
	return Options{
		Logger:    nil,
		OnSplit:   nil,
		Normalize: false,
	}
}

// WithLogger returns an Option that sends split tracing to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSplit returns an Option that installs fn as the split hook.
func WithOnSplit(fn SplitHook) Option {
	return func(o *Options) {
		o.OnSplit = fn
	}
}

// WithNormalize returns an Option that toggles per-stage merging.
func WithNormalize(on bool) Option {
	return func(o *Options) {
		o.Normalize = on
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
