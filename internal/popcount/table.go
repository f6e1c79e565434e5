package popcount

// Table holds the number of set bits for every byte value.
var Table [256]uint8

func init() {
	for i := 1; i < 256; i++ {
		Table[i] = Table[i>>1] + uint8(i&1)
	}
}

// Byte returns the number of set bits in c.
//
//go:nosplit
func Byte(c byte) int {
	return int(Table[c])
}
