package lsb

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"

	"github.com/lucin/pixveil/internal/bitconv"
)

// ECC turns text payload bytes into the bit sequence that rides the red
// LSB channel after the length prefix, and back. Embedding and extraction
// must use the same implementation: the two produce different wire formats.
type ECC interface {
	// Encode returns the bits to embed for payload.
	Encode(payload []byte) []bool
	// Decode recovers n payload bytes from bits.
	Decode(bits []bool, n int) []byte
	// EncodedBits reports how many bits n payload bytes occupy.
	EncodedBits(n int) int
}

var _ ECC = (*Raw)(nil)

// Raw is the canonical un-coded format: payload bytes MSB-first,
// one bit per pixel.
type Raw struct{}

func (Raw) Encode(payload []byte) []bool {
	return bitconv.BytesToBits(payload)
}

func (Raw) Decode(bits []bool, n int) []byte {
	return bitconv.BitsToBytes(bits)[:n]
}

func (Raw) EncodedBits(n int) int {
	return n * 8
}

var _ ECC = (*ShuffledGolay)(nil)

// ShuffledGolay protects the payload with the Golay code and spreads the
// codeword bits with a deterministic seeded permutation, so localized
// damage to the stego image degrades many codewords a little instead of
// one codeword a lot. The value is the shuffle seed.
type ShuffledGolay int64

func (sg ShuffledGolay) Encode(payload []byte) []bool {
	nbits := len(payload) * 8
	if nbits == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, bit := range bitconv.BytesToBits(payload) {
		w.WriteBool(bit)
	}

	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), nbits)
	encodedLen := enc.Bits()

	index := sg.generatePermutation(encodedLen)
	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, encodedLen)
	for i := range out {
		out[i], _ = r.ReadBitAt(index[i])
	}
	return out
}

func (sg ShuffledGolay) Decode(bits []bool, n int) []byte {
	if n == 0 {
		return []byte{}
	}
	// reverse shuffle: same permutation, applied inversely
	index := sg.generatePermutation(len(bits))
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	r := bitstream.NewBitReader(decoded, 0, 0)
	r.SetBits(n * 8)
	out := make([]bool, n*8)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return bitconv.BitsToBytes(out)[:n]
}

func (sg ShuffledGolay) EncodedBits(n int) int {
	return golay.EncodedBits(n * 8)
}

func (sg ShuffledGolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
