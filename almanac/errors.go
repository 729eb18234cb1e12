package almanac

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeeds indicates the input has no "seeds:" line.
	ErrMissingSeeds = errors.New("almanac: missing seeds line")
	// ErrDuplicateSeeds indicates more than one "seeds:" line.
	ErrDuplicateSeeds = errors.New("almanac: duplicate seeds line")
	// ErrBadNumber indicates a token that is not a base-10 integer.
	ErrBadNumber = errors.New("almanac: malformed number")
	// ErrBadHeader indicates a map header not of the form "<from>-to-<to> map:".
	ErrBadHeader = errors.New("almanac: malformed map header")
	// ErrBadRule indicates a rule that is not a valid (dest, source, length) triple.
	ErrBadRule = errors.New("almanac: malformed rule")
	// ErrRuleOutsideStage indicates a rule line before any map header.
	ErrRuleOutsideStage = errors.New("almanac: rule outside of a map block")
	// ErrBrokenChain indicates a stage whose source category does not match
	// the previous stage's destination category.
	ErrBrokenChain = errors.New("almanac: stage does not continue the chain")
	// ErrOddSeedCount indicates range mode with an unpaired seed value.
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of values")
	// ErrUnknownMode indicates an unsupported seed interpretation.
	ErrUnknownMode = errors.New("almanac: unknown seed mode")
)

// ParseError locates a failure in the input.
// Line is 1-based for text input and 0 when no line is known.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
