// Package barcode labels reads by scoring the sequence flanking each
// adapter against a panel of barcode references.
//
// Flow per read: ExtractFlanks around each of the first MaxAdapters
// adapter intervals, score both flanks with align.Scorer, average the
// present flanks into an adapter vector, sum adapter vectors into a read
// vector, then Rank under the configured Mode.
//
// Paired mode assumes the adapter intervals strictly alternate strand in
// encounter order. A missed or doubled adapter shifts the parity of every
// later adapter and is not detected here.
package barcode
