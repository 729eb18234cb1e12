package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/remap/pipeline"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
	stageJoin   = "-to-"
)

// Option configures parsing.
type Option func(*parseOptions)

type parseOptions struct {
	strict bool
}

// WithStrict returns an Option that rejects stages whose rule sources
// overlap (pipeline.ErrOverlappingRules). Off by default.
func WithStrict(on bool) Option {
	return func(o *parseOptions) {
		o.strict = on
	}
}

// assembler accumulates seeds and stages, enforcing chain continuity.
// Shared by the text and YAML readers.
type assembler struct {
	opts     parseOptions
	almanac  Almanac
	seedsSet bool
}

func newAssembler(opts []Option) *assembler {
	a := &assembler{}
	for _, fn := range opts {
		fn(&a.opts)
	}

	return a
}

func (a *assembler) setSeeds(seeds []int) error {
	if a.seedsSet {
		return ErrDuplicateSeeds
	}
	a.seedsSet = true
	a.almanac.Seeds = seeds

	return nil
}

func (a *assembler) openStage(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: %q to %q", ErrBadHeader, from, to)
	}
	if n := len(a.almanac.Stages); n > 0 {
		if prev := a.almanac.Stages[n-1]; prev.To != from {
			return fmt.Errorf("%w: %q follows %q", ErrBrokenChain, from+stageJoin+to, prev.Name)
		}
	}
	a.almanac.Stages = append(a.almanac.Stages, pipeline.NewStage(from, to))

	return nil
}

func (a *assembler) addRule(dest, src, length int) error {
	n := len(a.almanac.Stages)
	if n == 0 {
		return ErrRuleOutsideStage
	}
	rule, err := pipeline.NewRule(dest, src, length)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRule, err)
	}
	a.almanac.Stages[n-1].Rules = append(a.almanac.Stages[n-1].Rules, rule)

	return nil
}

func (a *assembler) finish() (*Almanac, error) {
	if !a.seedsSet {
		return nil, &ParseError{Err: ErrMissingSeeds}
	}
	if a.opts.strict {
		if err := a.almanac.Pipeline().Validate(); err != nil {
			return nil, &ParseError{Err: err}
		}
	}
	out := a.almanac

	return &out, nil
}

// Parse reads the text almanac format from r.
// Errors are *ParseError values carrying the offending line number.
func Parse(r io.Reader, opts ...Option) (*Almanac, error) {
	asm := newAssembler(opts)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if err := parseLine(asm, line); err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("almanac: read input: %w", err)
	}

	return asm.finish()
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*Almanac, error) {
	return Parse(strings.NewReader(s), opts...)
}

func parseLine(asm *assembler, line string) error {
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, seedsPrefix):
		seeds, err := parseInts(strings.TrimPrefix(line, seedsPrefix))
		if err != nil {
			return err
		}
		return asm.setSeeds(seeds)
	case strings.HasSuffix(line, mapSuffix):
		from, to, ok := strings.Cut(strings.TrimSuffix(line, mapSuffix), stageJoin)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		return asm.openStage(from, to)
	default:
		nums, err := parseInts(line)
		if err != nil {
			return err
		}
		if len(nums) != 3 {
			return fmt.Errorf("%w: want 3 numbers, got %d", ErrBadRule, len(nums))
		}
		return asm.addRule(nums[0], nums[1], nums[2])
	}
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}
		out = append(out, n)
	}

	return out, nil
}

// Format names an input encoding.
type Format string

const (
	// FormatText is the plain "seeds:" / "x-to-y map:" layout.
	FormatText Format = "text"
	// FormatYAML is the YAML document layout.
	FormatYAML Format = "yaml"
)

// DetectFormat picks FormatYAML for .yaml/.yml paths and FormatText otherwise.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Read decodes r in the given format.
func Read(r io.Reader, format Format, opts ...Option) (*Almanac, error) {
	if format == FormatYAML {
		return DecodeYAML(r, opts...)
	}

	return Parse(r, opts...)
}

// Load opens path and decodes it in the format implied by its extension.
func Load(path string, opts ...Option) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("almanac: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, DetectFormat(path), opts...)
}
