package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	test := []struct {
		data []byte
	}{
		{data: []byte{0b10101010}},
		{data: []byte{0b11110000, 0b00001111}},
		{data: []byte{0, 0, 0, 2}},
		{data: []byte("Hello")},
		{data: []byte{}},
	}
	for _, tt := range test {
		bits := BytesToBits(tt.data)
		assert.Len(t, bits, len(tt.data)*8)
		assert.Equal(t, tt.data, BitsToBytes(bits)[:len(tt.data)])
	}
}

func TestBitOrder(t *testing.T) {
	// 'H' = 0x48 must come out MSB-first.
	bits := BytesToBits([]byte{0x48})
	assert.Equal(t, []bool{false, true, false, false, true, false, false, false}, bits)
}

func TestPartialByte(t *testing.T) {
	bits := []bool{true, false, true}
	assert.Equal(t, []byte{0b10100000}, BitsToBytes(bits))
}
