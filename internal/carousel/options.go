package carousel

import (
	"errors"
	"fmt"
	"time"
)

// DefaultCardDebounce is the cool-down of the card variant.
const DefaultCardDebounce = 300 * time.Millisecond

// ErrInvalidOptions is wrapped by every Options.Validate failure.
var ErrInvalidOptions = errors.New("invalid carousel options")

// Options configures one carousel instance.
type Options struct {
	Variant          Variant
	AutoplayInterval time.Duration
	SwipeThreshold   float64
	// Debounce is the navigation lock after each accepted command.
	// Zero disables it.
	Debounce      time.Duration
	PixelsPerCell float64
}

// DefaultOptions returns the reference behaviour for a variant.
func DefaultOptions(v Variant) Options {
	opts := Options{
		Variant:          VariantDirectional,
		AutoplayInterval: DefaultAutoplayInterval,
		SwipeThreshold:   DefaultSwipeThreshold,
		PixelsPerCell:    DefaultPixelsPerCell,
	}
	if v == VariantCard {
		opts.Variant = VariantCard
		opts.Debounce = DefaultCardDebounce
	}
	return opts
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	if _, err := ParseVariant(string(o.Variant)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if o.AutoplayInterval < 0 {
		return fmt.Errorf("%w: autoplay interval must not be negative", ErrInvalidOptions)
	}
	if o.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidOptions)
	}
	if !isFinite(o.SwipeThreshold) || o.SwipeThreshold <= 0 {
		return fmt.Errorf("%w: swipe threshold must be a positive number", ErrInvalidOptions)
	}
	if !isFinite(o.PixelsPerCell) || o.PixelsPerCell <= 0 {
		return fmt.Errorf("%w: pixels per cell must be a positive number", ErrInvalidOptions)
	}
	return nil
}

// Policy returns the reducer policy for a collection of n items.
func (o Options) Policy(n int) Policy {
	return Policy{Len: n, Debounce: o.Debounce}
}

// Strategy returns the transition strategy of the configured variant.
func (o Options) Strategy() TransitionStrategy {
	return StrategyFor(o.Variant)
}
