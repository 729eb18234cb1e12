package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/remap/interval"
	"github.com/katalvlaran/remap/pipeline"
)

// sampleTriples is the seven-stage worked example almanac as
// (destination start, source start, length) triples.
var sampleTriples = []struct {
	from, to string
	rules    [][3]int
}{
	{"seed", "soil", [][3]int{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]int{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]int{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]int{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]int{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]int{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]int{{60, 56, 37}, {56, 93, 4}}},
}

// sampleStages builds the worked example stages, failing t on bad triples.
func sampleStages(t testing.TB) []pipeline.MapStage {
	t.Helper()
	stages := make([]pipeline.MapStage, 0, len(sampleTriples))
	for _, st := range sampleTriples {
		rules := make([]pipeline.MapRule, 0, len(st.rules))
		for _, tr := range st.rules {
			r, err := pipeline.NewRule(tr[0], tr[1], tr[2])
			require.NoError(t, err)
			rules = append(rules, r)
		}
		stages = append(stages, pipeline.NewStage(st.from, st.to, rules...))
	}

	return stages
}

// iv is shorthand for a literal interval.
func iv(start, end int) interval.Interval {
	return interval.Interval{Start: start, End: end}
}

// points converts values to single-value intervals.
func points(vs ...int) []interval.Interval {
	out := make([]interval.Interval, len(vs))
	for i, v := range vs {
		out[i] = interval.Point(v)
	}

	return out
}
