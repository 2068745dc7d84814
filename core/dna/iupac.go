// core/dna/iupac.go
package dna

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// Mask returns the IUPAC bit mask for b (0 for bytes outside the alphabet).
func Mask(b byte) byte { return iupacMask[b] }

// IsACGT reports whether b is one of the four unambiguous bases (any case).
func IsACGT(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		return true
	}
	return false
}

// BaseMatch returns true if pattern base p can pair with read base g.
//
// A read base of 'N' (or any non-ACGT byte) is a hard mismatch so that
// N-runs in low-quality reads do not produce spurious adapter hits.
func BaseMatch(g, p byte) bool {
	if !IsACGT(g) {
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}

// Code maps a base to the 2-bit alphabet used by the aligner:
// A=0 C=1 G=2 T=3, everything else (N, IUPAC, gaps) = 4.
func Code(b byte) byte {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't', 'U', 'u':
		return 3
	}
	return Ambiguous
}

// Ambiguous is the Code value of every non-ACGT byte.
const Ambiguous byte = 4
