// core/barcode/flank.go
package barcode

import "pbbarcode/core/dna"

// Flanks holds the two windows around one adapter. Left is already
// reverse-complemented so both sides read away from the adapter.
type Flanks struct {
	Left     string
	Right    string
	HasLeft  bool
	HasRight bool
}

// Present counts the usable flanks (0, 1 or 2).
func (f Flanks) Present() int {
	n := 0
	if f.HasLeft && f.Left != "" {
		n++
	}
	if f.HasRight && f.Right != "" {
		n++
	}
	return n
}

// ExtractFlanks cuts the windows on either side of the adapter
// [adapterStart, adapterEnd). Each window spans barcodeLength+insertSidePad
// bases away from the adapter plus adapterSidePad bases into it. A window
// that does not fit inside the read is reported absent.
func ExtractFlanks(r Read, adapterStart, adapterEnd, barcodeLength, insertSidePad, adapterSidePad int) Flanks {
	var f Flanks
	span := barcodeLength + insertSidePad
	if left, ok := r.Bases(adapterStart-span, adapterStart+adapterSidePad); ok {
		f.Left, f.HasLeft = dna.RevCompString(left), true
	}
	if right, ok := r.Bases(adapterEnd-adapterSidePad, adapterEnd+span); ok {
		f.Right, f.HasRight = right, true
	}
	return f
}
