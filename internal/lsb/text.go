package lsb

import (
	"encoding/binary"
	"fmt"

	"github.com/lucin/pixveil/internal/bitconv"
	"github.com/lucin/pixveil/internal/pixel"
)

// lenPrefixBits is the 4-byte big-endian byte-length prefix that leads
// every embedded text stream.
const lenPrefixBits = 32

// EmbedText hides text inside carrier, one bit per pixel in the red
// channel's least significant bit, in raster order. The stream is the
// 4-byte big-endian length of text followed by the payload bits produced
// by ecc, every byte MSB-first. Green, blue and the upper 7 red bits are
// untouched. The scan is strictly sequential: the pixel index is the bit
// position.
func EmbedText(carrier pixel.Buffer, text []byte, ecc ECC) (pixel.Buffer, error) {
	need := lenPrefixBits + ecc.EncodedBits(len(text))
	if need > carrier.Area() {
		return pixel.Buffer{}, fmt.Errorf("text needs %d pixels, image has %d", need, carrier.Area())
	}

	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(text)))
	bits := append(bitconv.BytesToBits(prefix[:]), ecc.Encode(text)...)

	dist := carrier.Copy()
	red := dist.Plane(pixel.R)
	for i, bit := range bits {
		if bit {
			red[i] |= 1
		} else {
			red[i] &^= 1
		}
	}
	return dist, nil
}

// ExtractText reads the length prefix and then the declared number of
// payload bytes from the red-channel LSBs of src. It fails if src cannot
// hold even the prefix, or if the declared length would run past the last
// pixel.
func ExtractText(src pixel.Buffer, ecc ECC) ([]byte, error) {
	if src.Area() < lenPrefixBits {
		return nil, fmt.Errorf("%d pixels cannot hold the %d-bit length prefix", src.Area(), lenPrefixBits)
	}
	red := src.Plane(pixel.R)

	prefix := make([]bool, lenPrefixBits)
	for i := range prefix {
		prefix[i] = red[i]&1 == 1
	}
	n := int(binary.BigEndian.Uint32(bitconv.BitsToBytes(prefix)))

	body := ecc.EncodedBits(n)
	if lenPrefixBits+body > src.Area() {
		return nil, fmt.Errorf("declared length %d overruns the %d available pixels", n, src.Area())
	}
	bits := make([]bool, body)
	for i := range bits {
		bits[i] = red[lenPrefixBits+i]&1 == 1
	}
	return ecc.Decode(bits, n), nil
}
