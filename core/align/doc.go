// Package align scores a query against a fixed panel of short references
// with Smith–Waterman local alignment.
//
// A Scorer is immutable once built and may be shared by any number of
// goroutines. DP rows are kept in per-call Scratch values drawn from a
// pool, so the hot path does not allocate a matrix per query.
package align
