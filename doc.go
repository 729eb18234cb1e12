// Package remap maps sets of integer ranges through ordered chains of
// piecewise-linear lookup tables, without ever enumerating the integers.
//
// 🚀 What is remap?
//
//	A small, dependency-light toolkit that brings together:
//		• Interval values: closed ranges with validation & set helpers
//		• Pipelines: rules, stages, range splitting and chaining
//		• Almanac input: text and YAML readers for seeds & stages
//		• Scan: exact brute-force cross-check over a bounded worker pool
//
// Under the hood, everything is organized under these subpackages:
//
//	interval/ — Interval type, New/FromLength/Point, Merge, Min
//	pipeline/ — MapRule, MapStage, Pipeline, ApplyStage, Run, MinimumValue
//	almanac/  — Parse, DecodeYAML, SeedPoints/SeedRanges, Solve
//	scan/     — Lowest: per-value search for verification
//	cmd/remap — CLI: solve, verify, version
//
// Quick ASCII example:
//
//	input     [0 ─────────────── 10]
//	rule           [5 ─ 7] +100
//	output    [0 ─ 4]     [8 ─ 10]   [105 ─ 107]
//
// splits one range into the part a rule moves and the parts it leaves.
//
//	go get github.com/katalvlaran/remap
package remap
