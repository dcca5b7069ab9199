package pixel

import (
	"image"
	"image/color"
)

// Channel indices into a Buffer's planes.
const (
	R = iota
	G
	B
)

// Buffer is a width x height grid of 8-bit RGB pixels stored as three
// flattened row-major channel planes. Alpha is not carried; images built
// from a Buffer are opaque.
type Buffer struct {
	bounds        image.Rectangle
	width, height int
	area          int

	// planes[R], planes[G], planes[B]
	planes [3][]uint8
}

func FromImage(src image.Image) Buffer {
	var b Buffer
	b.bounds = src.Bounds()
	b.width, b.height = b.bounds.Dx(), b.bounds.Dy()
	b.area = b.width * b.height
	for c := range b.planes {
		b.planes[c] = make([]uint8, b.area)
	}

	idx := 0
	min := b.bounds.Min
	for y := range b.height {
		for x := range b.width {
			r32, g32, b32, _ := src.At(min.X+x, min.Y+y).RGBA()
			b.planes[R][idx] = uint8(r32 >> 8)
			b.planes[G][idx] = uint8(g32 >> 8)
			b.planes[B][idx] = uint8(b32 >> 8)
			idx++
		}
	}
	return b
}

// New returns a black width x height buffer.
func New(width, height int) Buffer {
	var b Buffer
	b.bounds = image.Rect(0, 0, width, height)
	b.width, b.height = width, height
	b.area = width * height
	for c := range b.planes {
		b.planes[c] = make([]uint8, b.area)
	}
	return b
}

func (b Buffer) Width() int  { return b.width }
func (b Buffer) Height() int { return b.height }
func (b Buffer) Area() int   { return b.area }

// Plane returns the flattened row-major plane for channel c.
// The returned slice is the buffer's backing store, not a copy.
func (b Buffer) Plane(c int) []uint8 { return b.planes[c] }

func (b Buffer) At(x, y int) color.RGBA {
	idx := y*b.width + x
	return color.RGBA{
		R: b.planes[R][idx],
		G: b.planes[G][idx],
		B: b.planes[B][idx],
		A: 0xFF,
	}
}

// Copy returns a buffer with freshly allocated planes.
func (b Buffer) Copy() Buffer {
	var tmp [3][]uint8
	for c := range b.planes {
		tmp[c] = make([]uint8, b.area)
		_ = copy(tmp[c], b.planes[c])
	}
	b.planes = tmp
	return b
}

func (b Buffer) Image() image.Image {
	dist := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	idx := 0
	for y := range b.height {
		for x := range b.width {
			dist.SetRGBA(x, y, color.RGBA{
				R: b.planes[R][idx],
				G: b.planes[G][idx],
				B: b.planes[B][idx],
				A: 0xFF,
			})
			idx++
		}
	}
	return dist
}
