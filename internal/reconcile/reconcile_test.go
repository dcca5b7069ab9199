package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucin/pixveil/internal/pixel"
)

func gradient(w, h int) pixel.Buffer {
	b := pixel.New(w, h)
	for c := range 3 {
		for i := range b.Plane(c) {
			b.Plane(c)[i] = uint8((c*40 + i*3) % 256)
		}
	}
	return b
}

func TestNoneReturnsInputs(t *testing.T) {
	a, b := gradient(4, 4), gradient(8, 8)
	ra, rb := Reconcile(a, b, PolicyNone)
	assert.Equal(t, 4, ra.Width())
	assert.Equal(t, 8, rb.Width())
}

func TestTargetIsPerAxisMax(t *testing.T) {
	test := []struct {
		name           string
		aw, ah, bw, bh int
		wantW, wantH   int
	}{
		{"carrier smaller", 4, 4, 8, 8, 8, 8},
		{"secret smaller", 8, 8, 4, 4, 8, 8},
		{"mixed axes", 10, 5, 5, 10, 10, 10},
		{"equal", 6, 6, 6, 6, 6, 6},
	}
	for _, policy := range []Policy{PolicyResize, PolicyExpand} {
		for _, tt := range test {
			t.Run(policy.String()+"/"+tt.name, func(t *testing.T) {
				ra, rb := Reconcile(gradient(tt.aw, tt.ah), gradient(tt.bw, tt.bh), policy)
				assert.Equal(t, tt.wantW, ra.Width())
				assert.Equal(t, tt.wantH, ra.Height())
				assert.Equal(t, tt.wantW, rb.Width())
				assert.Equal(t, tt.wantH, rb.Height())
			})
		}
	}
}

func TestExpandKeepsTopLeftAndFillsBlack(t *testing.T) {
	small := gradient(3, 2)
	big := gradient(5, 4)
	rs, rb := Reconcile(small, big, PolicyExpand)

	// the already-big input is untouched
	for c := range 3 {
		require.Equal(t, big.Plane(c), rb.Plane(c))
	}
	for y := range 4 {
		for x := range 5 {
			if x < 3 && y < 2 {
				assert.Equal(t, small.At(x, y), rs.At(x, y), "pixel (%d,%d)", x, y)
			} else {
				px := rs.At(x, y)
				assert.Zero(t, px.R, "pixel (%d,%d)", x, y)
				assert.Zero(t, px.G, "pixel (%d,%d)", x, y)
				assert.Zero(t, px.B, "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestResizeConstantImageStaysConstant(t *testing.T) {
	small := pixel.New(4, 4)
	for c := range 3 {
		for i := range small.Plane(c) {
			small.Plane(c)[i] = 100
		}
	}
	rs, _ := Reconcile(small, gradient(8, 8), PolicyResize)
	require.Equal(t, 8, rs.Width())
	for c := range 3 {
		for _, v := range rs.Plane(c) {
			assert.InDelta(t, 100, v, 1)
		}
	}
}
