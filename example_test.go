package pixveil_test

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/lucin/pixveil"
)

func Example_hideText() {
	// Create a simple gradient image (200x200 pixels)
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			r := uint8(x * 255 / 200)
			g := uint8(y * 255 / 200)
			b := uint8((x + y) * 255 / 400)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}

	ctx := context.Background()

	// Hide a message in the red channel's least significant bits
	hidden, err := pixveil.HideText(ctx, img, "meet at noon")
	if err != nil {
		fmt.Printf("Error hiding text: %v\n", err)
		return
	}

	// Recover it
	text, err := pixveil.RevealText(ctx, hidden)
	if err != nil {
		fmt.Printf("Error revealing text: %v\n", err)
		return
	}

	fmt.Println(text)

	// Output:
	// meet at noon
}

func Example_hideImage() {
	// A flat white carrier and a flat colored secret
	carrier := image.NewRGBA(image.Rect(0, 0, 64, 64))
	secret := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			carrier.Set(x, y, color.RGBA{255, 255, 255, 255})
			secret.Set(x, y, color.RGBA{128, 64, 32, 255})
		}
	}

	ctx := context.Background()
	hidden, err := pixveil.HideImage(ctx, carrier, secret)
	if err != nil {
		fmt.Printf("Error hiding image: %v\n", err)
		return
	}

	revealed, err := pixveil.RevealImage(ctx, hidden)
	if err != nil {
		fmt.Printf("Error revealing image: %v\n", err)
		return
	}

	// Only the secret's top 2 bits survive: each channel is quantized
	// to 0, 85, 170 or 255.
	r, g, b, _ := revealed.At(0, 0).RGBA()
	fmt.Println(r>>8, g>>8, b>>8)

	// Output:
	// 170 85 0
}
