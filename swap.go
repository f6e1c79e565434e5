package bitvec

var nibbleSwap = func() (t [256]byte) {
	for i := range t {
		t[i] = byte(16*(i%16) + i/16)
	}
	return t
}()

// NibbleSwapTable returns the 256-entry table that swaps the high and low
// four bits of a byte, e.g. 0x1F -> 0xF1. It is an involution.
func NibbleSwapTable() [256]byte {
	return nibbleSwap
}

// Translate replaces every byte c in p with table[c].
func Translate(p []byte, table *[256]byte) {
	for i, c := range p {
		p[i] = table[c]
	}
}
