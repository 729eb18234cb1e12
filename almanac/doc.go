// Package almanac reads seed lists and ordered map stages from text or YAML
// and turns them into pipeline inputs.
//
// Text format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each rule line is a (destination start, source start, length) triple.
// Stages must chain: every stage's source category equals the previous
// stage's destination category.
//
// YAML format carries the same data:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    rules: [[50, 98, 2], [52, 50, 48]]
//
// Seeds are read either as single values (ModePoints) or as
// (start, length) pairs (ModeRanges).
package almanac
