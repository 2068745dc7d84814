// Package pipeline labels reads from many input files on a bounded pool of
// goroutines and hands the calls back in input-file order.
//
// The contracts to implement are Source (where reads come from) and
// Labeler (how a read becomes a call). This keeps the pipeline swappable
// and testable.
package pipeline
