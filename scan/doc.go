// Package scan finds the lowest mapped value by evaluating every integer in
// a set of bounds, one lookup at a time.
//
// It exists to cross-check the interval pipeline on inputs small enough to
// enumerate. Work is cut into fixed-size batches and fanned out to a bounded
// pool of goroutines; the first failure or a cancelled context stops the scan.
//
// The scan is exact. It deliberately does not sample the bounds coarsely
// before refining, since that shortcut can miss the true minimum.
package scan
