package pipeline

import "errors"

var (
	// ErrEmptyResult indicates MinimumValue was given no intervals to reduce.
	ErrEmptyResult = errors.New("pipeline: no intervals to reduce")
	// ErrNonPositiveLength indicates a rule triple with length ≤ 0.
	ErrNonPositiveLength = errors.New("pipeline: rule length must be positive")
	// ErrRuleOverflow indicates a rule whose offset or destination leaves the int range.
	ErrRuleOverflow = errors.New("pipeline: rule overflows int range")
	// ErrOverlappingRules indicates two rules of one stage share source values.
	ErrOverlappingRules = errors.New("pipeline: overlapping rule sources in stage")
)
