package encoding

import (
	"fmt"

	"github.com/arloliu/stream64/errs"
	"github.com/arloliu/stream64/internal/options"
)

const (
	// DefaultCapacity is the default destination capacity of an encode pass.
	DefaultCapacity = 4 * 1024 * 1024
	// SafetyMargin is the number of bytes a Golomb-Rice encode keeps free at the
	// end of its destination.
	SafetyMargin = 1024
)

// EncoderConfig holds the capacity settings shared by the streaming encoders.
type EncoderConfig struct {
	capacity int
	margin   int
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig(defaultMargin int, opts ...EncoderOption) (*EncoderConfig, error) {
	cfg := &EncoderConfig{
		capacity: DefaultCapacity,
		margin:   defaultMargin,
	}

	if err := options.ApplyAndValidate(cfg, (*EncoderConfig).validate, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *EncoderConfig) validate() error {
	if c.margin >= c.capacity {
		return fmt.Errorf("%w: margin %d leaves no room in capacity %d", errs.ErrInvalidCapacity, c.margin, c.capacity)
	}

	return nil
}

// Capacity returns the configured destination capacity in bytes.
func (c *EncoderConfig) Capacity() int {
	return c.capacity
}

// Margin returns the configured safety margin in bytes.
func (c *EncoderConfig) Margin() int {
	return c.margin
}

// WithCapacity sets the destination capacity in bytes. The default is DefaultCapacity.
func WithCapacity(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: capacity %d", errs.ErrInvalidCapacity, n)
		}
		c.capacity = n

		return nil
	})
}

// WithSafetyMargin sets the number of bytes kept free at the end of the
// destination. The default is SafetyMargin for Golomb-Rice encoders and zero for
// fixed-width encoders, whose output size is exact.
func WithSafetyMargin(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: margin %d", errs.ErrInvalidCapacity, n)
		}
		c.margin = n

		return nil
	})
}
