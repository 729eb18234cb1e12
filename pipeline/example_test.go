package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/remap/interval"
	"github.com/katalvlaran/remap/pipeline"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ApplyStage
////////////////////////////////////////////////////////////////////////////////

// ExampleApplyStage splits a range around a single rule.
// Scenario:
//
//   - Input [0, 10].
//   - One rule moves [5, 7] up by 100.
//
// The covered middle is shifted, both remainders pass through unchanged.
func ExampleApplyStage() {
	stage := pipeline.MapStage{
		Name:  "demo",
		Rules: []pipeline.MapRule{{Source: interval.Interval{Start: 5, End: 7}, Offset: 100}},
	}
	out := pipeline.ApplyStage([]interval.Interval{{Start: 0, End: 10}}, stage)
	for _, iv := range interval.Sort(out) {
		fmt.Println(iv)
	}
	// Output:
	// [0, 4]
	// [8, 10]
	// [105, 107]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Pipeline.Lowest
////////////////////////////////////////////////////////////////////////////////

// ExamplePipeline_Lowest chains two stages and reports the smallest value.
func ExamplePipeline_Lowest() {
	soil, _ := pipeline.NewRule(52, 50, 48)
	loop, _ := pipeline.NewRule(50, 98, 2)
	fert, _ := pipeline.NewRule(0, 15, 37)

	p := pipeline.New(
		pipeline.NewStage("seed", "soil", loop, soil),
		pipeline.NewStage("soil", "fertilizer", fert),
	)
	seeds, _ := interval.FromLength(79, 14)
	low, err := p.Lowest([]interval.Interval{seeds})
	fmt.Println(low, err)
	// Output:
	// 81 <nil>
}
