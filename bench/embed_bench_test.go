package bench_test

import (
	"context"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/lucin/pixveil"
)

func fhd() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
	for y := 0; y < 1080; y++ {
		for x := 0; x < 1920; x++ {
			r := uint8(x * 255 / 1920)
			g := uint8(y * 255 / 1080)
			b := uint8((x + y) * 255 / 3000)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

func BenchmarkHideImage_FHD(b *testing.B) {
	ctx := context.Background()
	carrier, secret := fhd(), fhd()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pixveil.HideImage(ctx, carrier, secret); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRevealImage_FHD(b *testing.B) {
	ctx := context.Background()
	hidden, err := pixveil.HideImage(ctx, fhd(), fhd())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pixveil.RevealImage(ctx, hidden); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHideText_FHD(b *testing.B) {
	ctx := context.Background()
	carrier := fhd()
	text := strings.Repeat("benchmark payload ", 1000)
	test := []struct {
		name string
		opts []pixveil.Option
	}{
		{name: "raw"},
		{name: "golay", opts: []pixveil.Option{pixveil.WithGolay(1)}},
	}
	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := pixveil.HideText(ctx, carrier, text, tt.opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
