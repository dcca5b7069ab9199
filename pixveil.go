// Package pixveil hides images and text in the low-order bit planes of a
// carrier image. Images ride the low 2 bits of every channel and are
// recovered as a four-level quantized approximation; text rides the red
// channel's least significant bit and is recovered exactly.
package pixveil

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/lucin/pixveil/internal/lsb"
	"github.com/lucin/pixveil/internal/normalize"
	"github.com/lucin/pixveil/internal/pixel"
	"github.com/lucin/pixveil/internal/reconcile"
)

var (
	// ErrSizeMismatch reports carrier/secret dimensions that differ after
	// any reconciliation.
	ErrSizeMismatch = errors.New("secret image does not fit the carrier")
	// ErrInsufficientCapacity reports a text payload that, with its length
	// prefix, exceeds the carrier's pixel count.
	ErrInsufficientCapacity = errors.New("image has too few pixels for the text")
	// ErrImageTooSmall reports an image that cannot hold even the length
	// prefix, or whose declared length overruns its pixels.
	ErrImageTooSmall = errors.New("image is too small for embedded text")
)

// HideImage embeds secret into carrier with the specified options.
// This is a convenience function that creates a Codec instance and calls its HideImage method.
func HideImage(ctx context.Context, carrier, secret image.Image, opts ...Option) (image.Image, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.HideImage(ctx, carrier, secret)
}

// RevealImage recovers the hidden image from src with the specified options.
// This is a convenience function that creates a Codec instance and calls its RevealImage method.
func RevealImage(ctx context.Context, src image.Image, opts ...Option) (image.Image, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.RevealImage(ctx, src)
}

// HideText embeds text into carrier with the specified options.
// This is a convenience function that creates a Codec instance and calls its HideText method.
func HideText(ctx context.Context, carrier image.Image, text string, opts ...Option) (image.Image, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.HideText(ctx, carrier, text)
}

// RevealText recovers the hidden text from src with the specified options.
// This is a convenience function that creates a Codec instance and calls its RevealText method.
func RevealText(ctx context.Context, src image.Image, opts ...Option) (string, error) {
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.RevealText(ctx, src)
}

// Normalize rescales src so its channel values span the full 0-255 range,
// using a single global minimum and maximum over all channels combined.
// A flat image is returned unchanged.
func Normalize(src image.Image) image.Image {
	return normalize.Normalize(pixel.FromImage(src)).Image()
}

type Codec struct {
	policy reconcile.Policy
	ecc    lsb.ECC
}

// New initializes a steganography codec.
// The dimension-reconciliation policy and the text error-correction scheme
// can be optionally specified. For default values, refer to the init function.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// HideImage embeds secret into carrier.
//
// Process:
//  1. Normalizes the carrier's contrast to the full 0-255 range.
//  2. Reconciles carrier and secret dimensions per the configured policy.
//  3. Writes the secret's top 2 bits per channel into the carrier's low 2 bits.
//
// Without a reconciliation policy the dimensions must already match, or
// ErrSizeMismatch is returned.
func (c *Codec) HideImage(ctx context.Context, carrier, secret image.Image) (image.Image, error) {
	car := normalize.Normalize(pixel.FromImage(carrier))
	sec := pixel.FromImage(secret)

	car, sec = reconcile.Reconcile(car, sec, c.policy)
	if car.Width() != sec.Width() || car.Height() != sec.Height() {
		return nil, fmt.Errorf("%w: carrier %dx%d, secret %dx%d (policy %s)",
			ErrSizeMismatch, car.Width(), car.Height(), sec.Width(), sec.Height(), c.policy)
	}
	return lsb.EmbedImage(car, sec).Image(), nil
}

// RevealImage recovers the hidden image from src. Only 2 bits per channel
// were preserved, so the result is quantized to the levels 0, 85, 170, 255.
func (c *Codec) RevealImage(ctx context.Context, src image.Image) (image.Image, error) {
	return lsb.ExtractImage(pixel.FromImage(src)).Image(), nil
}

// HideText embeds text into carrier, one bit per pixel in the red
// channel's least significant bit. Text is treated as a byte string; its
// byte length plus the 4-byte prefix must fit the carrier's pixel count,
// or ErrInsufficientCapacity is returned.
func (c *Codec) HideText(ctx context.Context, carrier image.Image, text string) (image.Image, error) {
	dist, err := lsb.EmbedText(pixel.FromImage(carrier), []byte(text), c.ecc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInsufficientCapacity, err)
	}
	return dist.Image(), nil
}

// RevealText recovers the hidden text from src. Extraction must use the
// same error-correction option the text was embedded with.
func (c *Codec) RevealText(ctx context.Context, src image.Image) (string, error) {
	text, err := lsb.ExtractText(pixel.FromImage(src), c.ecc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageTooSmall, err)
	}
	return string(text), nil
}

func (c *Codec) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.ecc == nil {
		c.ecc = lsb.Raw{}
	}
	return nil
}
