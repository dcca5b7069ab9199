// Package lsb implements the bit-plane substitution codecs: a
// 2-bit-per-channel image-in-image codec and a 1-bit red-channel text codec.
package lsb

import (
	"sync"

	"github.com/lucin/pixveil/internal/pixel"
)

// EmbedImage hides secret inside carrier. Both buffers must have equal
// dimensions; the caller is responsible for reconciling them first.
// Each channel keeps the carrier's top 6 bits and receives the secret's
// top 2 bits in its low 2 bits. The carrier's low bits are destroyed;
// the transform is lossy and one-way.
func EmbedImage(carrier, secret pixel.Buffer) pixel.Buffer {
	dist := carrier.Copy()
	var wg sync.WaitGroup
	wg.Add(3)
	for c := range 3 {
		go func(c int) {
			defer wg.Done()
			plane := dist.Plane(c)
			from := secret.Plane(c)
			for i, v := range plane {
				plane[i] = (v & 0xFC) | (from[i] >> 6)
			}
		}(c)
	}
	wg.Wait()
	return dist
}

// ExtractImage recovers the hidden image from src. Only the low 2 bits of
// each channel were kept, so every channel value is quantized to one of
// 0, 85, 170, 255.
func ExtractImage(src pixel.Buffer) pixel.Buffer {
	dist := src.Copy()
	var wg sync.WaitGroup
	wg.Add(3)
	for c := range 3 {
		go func(c int) {
			defer wg.Done()
			plane := dist.Plane(c)
			for i, v := range plane {
				plane[i] = (v & 0x03) * 85
			}
		}(c)
	}
	wg.Wait()
	return dist
}
