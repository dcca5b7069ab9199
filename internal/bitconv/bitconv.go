package bitconv

// BytesToBits expands b into bits, most significant bit of each byte first.
func BytesToBits(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (bb>>uint(i))&1 == 1)
		}
	}
	return bits
}

// BitsToBytes packs bits into bytes, MSB-first. A trailing partial byte is
// zero-padded on the right.
func BitsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}
