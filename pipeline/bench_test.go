package pipeline_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/remap/interval"
	"github.com/katalvlaran/remap/pipeline"
)

// BenchmarkRun measures seven stages of 40 disjoint rules each over 100
// wide seed ranges.
// Complexity: O(stages × intervals × rules)
func BenchmarkRun(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	stages := make([]pipeline.MapStage, 7)
	for s := range stages {
		pos := 0
		rules := make([]pipeline.MapRule, 0, 40)
		for k := 0; k < 40; k++ {
			start := pos + rng.Intn(1_000_000)
			length := 1 + rng.Intn(50_000_000)
			rules = append(rules, pipeline.MapRule{
				Source: interval.Interval{Start: start, End: start + length - 1},
				Offset: rng.Intn(2_000_000_000) - 1_000_000_000,
			})
			pos = start + length
		}
		rng.Shuffle(len(rules), func(i, j int) { rules[i], rules[j] = rules[j], rules[i] })
		stages[s] = pipeline.MapStage{Rules: rules}
	}
	seeds := make([]interval.Interval, 100)
	for i := range seeds {
		a := rng.Intn(2_000_000_000)
		seeds[i] = interval.Interval{Start: a, End: a + rng.Intn(100_000_000)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pipeline.Run(seeds, stages, pipeline.WithNormalize(true))
	}
}
