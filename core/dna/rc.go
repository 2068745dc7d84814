// core/dna/rc.go
package dna

var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'B', 'V'}, {'D', 'H'},
		{'N', 'N'}, {'U', 'A'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
		complement[p.a|0x20] = p.b | 0x20
		complement[p.b|0x20] = p.a | 0x20
	}
	// 'U' pairs with A but A complements to T.
	complement['A'], complement['a'] = 'T', 't'
	complement['-'] = '-'
	complement['.'] = '.'
}

// Complement returns the complement of a single base. Case is preserved;
// gaps map to themselves and unknown bytes become 'N'.
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// RevComp returns the reverse complement of seq.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return out
}

// RevCompString is RevComp for strings.
func RevCompString(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(s[n-1-i])
	}
	return string(out)
}
