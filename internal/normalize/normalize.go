package normalize

import (
	"math"
	"sync"

	"github.com/lucin/pixveil/internal/pixel"
)

// Normalize rescales src so that its channel values span the full 0-255
// range. The minimum and maximum are taken globally over all three planes
// combined, not per plane. A flat image (min == max) is returned as an
// unchanged copy; there is no other sensible mapping for it.
func Normalize(src pixel.Buffer) pixel.Buffer {
	lo, hi := minMax(src)
	if lo >= hi {
		return src.Copy()
	}

	var lut [256]uint8
	scale := 255.0 / float64(int(hi)-int(lo))
	for v := int(lo); v <= int(hi); v++ {
		lut[v] = uint8(math.Round(float64(v-int(lo)) * scale))
	}

	dist := src.Copy()
	var wg sync.WaitGroup
	wg.Add(3)
	for c := range 3 {
		go func(c int) {
			defer wg.Done()
			plane := dist.Plane(c)
			for i, v := range plane {
				plane[i] = lut[v]
			}
		}(c)
	}
	wg.Wait()
	return dist
}

func minMax(src pixel.Buffer) (lo, hi uint8) {
	var los, his [3]uint8
	var wg sync.WaitGroup
	wg.Add(3)
	for c := range 3 {
		go func(c int) {
			defer wg.Done()
			lo, hi := uint8(255), uint8(0)
			for _, v := range src.Plane(c) {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			los[c], his[c] = lo, hi
		}(c)
	}
	wg.Wait()

	lo, hi = los[0], his[0]
	for c := 1; c < 3; c++ {
		if los[c] < lo {
			lo = los[c]
		}
		if his[c] > hi {
			hi = his[c]
		}
	}
	return lo, hi
}
