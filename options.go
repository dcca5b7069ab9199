package pixveil

import (
	"fmt"

	"github.com/lucin/pixveil/internal/lsb"
	"github.com/lucin/pixveil/internal/reconcile"
)

type Option func(*Codec) error

// WithResize resamples the smaller of carrier and secret up to the
// per-axis maximum of the two before embedding.
// Mutually exclusive with WithExpand.
func WithResize() Option {
	return func(c *Codec) error {
		return c.setPolicy(reconcile.PolicyResize)
	}
}

// WithExpand pads the smaller of carrier and secret with black pixels up
// to the per-axis maximum of the two before embedding; the original
// pixels stay in the top-left corner.
// Mutually exclusive with WithResize.
func WithExpand() Option {
	return func(c *Codec) error {
		return c.setPolicy(reconcile.PolicyExpand)
	}
}

// WithGolay protects the text payload with a Golay code whose codeword
// bits are spread by a deterministic shuffle seeded with seed. The
// resulting stream is a different wire format from the default; extraction
// must use the same option and seed as embedding.
func WithGolay(seed int64) Option {
	return func(c *Codec) error {
		c.ecc = lsb.ShuffledGolay(seed)
		return nil
	}
}

// WithoutECC selects the default un-coded text format: payload bytes
// MSB-first, one bit per pixel.
func WithoutECC() Option {
	return func(c *Codec) error {
		c.ecc = lsb.Raw{}
		return nil
	}
}

func (c *Codec) setPolicy(p reconcile.Policy) error {
	if c.policy != reconcile.PolicyNone && c.policy != p {
		return fmt.Errorf("reconciliation policies %s and %s are mutually exclusive", c.policy, p)
	}
	c.policy = p
	return nil
}
