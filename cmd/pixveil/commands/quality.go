package commands

import (
	"fmt"
	"image"

	"github.com/lucin/pixveil/internal/pixel"
	"github.com/lucin/pixveil/internal/quality"
)

// distortion formats the PSNR between the original carrier and the stego
// output. It returns an empty string when the two are not comparable,
// e.g. after the carrier was resized or expanded.
func distortion(carrier, stego image.Image) string {
	v, err := quality.PSNR(pixel.FromImage(carrier), pixel.FromImage(stego))
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (psnr: %.1f dB)", v)
}
