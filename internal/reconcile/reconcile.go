// Package reconcile makes two images' dimensions compatible for embedding.
package reconcile

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/lucin/pixveil/internal/pixel"
)

type Policy int

const (
	// PolicyNone requires dimensions to already match.
	PolicyNone Policy = iota
	// PolicyResize resamples the smaller image up to the target size.
	PolicyResize
	// PolicyExpand pads the smaller image with black to the target size.
	PolicyExpand
)

func (p Policy) String() string {
	switch p {
	case PolicyResize:
		return "resize"
	case PolicyExpand:
		return "expand"
	default:
		return "none"
	}
}

// Reconcile brings a and b to a common size, the per-axis maximum of the
// two inputs. Inputs already at the target size are returned as-is.
// With PolicyNone both inputs are returned unchanged; the caller decides
// whether mismatched dimensions are an error.
func Reconcile(a, b pixel.Buffer, policy Policy) (pixel.Buffer, pixel.Buffer) {
	if policy == PolicyNone {
		return a, b
	}
	width := max(a.Width(), b.Width())
	height := max(a.Height(), b.Height())
	return apply(a, width, height, policy), apply(b, width, height, policy)
}

func apply(src pixel.Buffer, width, height int, policy Policy) pixel.Buffer {
	if src.Width() == width && src.Height() == height {
		return src
	}
	if policy == PolicyResize {
		return resample(src, width, height)
	}
	return expand(src, width, height)
}

func resample(src pixel.Buffer, width, height int) pixel.Buffer {
	dist := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dist, dist.Bounds(), src.Image(), image.Rect(0, 0, src.Width(), src.Height()), draw.Src, nil)
	return pixel.FromImage(dist)
}

func expand(src pixel.Buffer, width, height int) pixel.Buffer {
	dist := pixel.New(width, height)
	for c := range 3 {
		from, to := src.Plane(c), dist.Plane(c)
		for y := range src.Height() {
			_ = copy(to[y*width:y*width+src.Width()], from[y*src.Width():(y+1)*src.Width()])
		}
	}
	return dist
}
