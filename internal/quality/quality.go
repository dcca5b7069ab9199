// Package quality measures the distortion introduced by embedding.
package quality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lucin/pixveil/internal/pixel"
)

// MSE returns the mean squared error between a and b over all three
// channel planes.
func MSE(a, b pixel.Buffer) (float64, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return 0, fmt.Errorf("dimensions differ: %dx%d vs %dx%d", a.Width(), a.Height(), b.Width(), b.Height())
	}
	af, bf := flatten(a), flatten(b)
	d := floats.Distance(af, bf, 2)
	return d * d / float64(len(af)), nil
}

// PSNR returns the peak signal-to-noise ratio in decibels.
// Identical images yield +Inf.
func PSNR(a, b pixel.Buffer) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(255*255/mse), nil
}

func flatten(b pixel.Buffer) []float64 {
	out := make([]float64, 0, b.Area()*3)
	for c := range 3 {
		for _, v := range b.Plane(c) {
			out = append(out, float64(v))
		}
	}
	return out
}
