// Package pattern implements the LED patterns the panel can display.
package pattern

import "fmt"

// Pattern generates successive LED frames for an autonomous display mode.
type Pattern interface {
	// Next returns the next frame, one boolean per LED.
	Next(count int) []bool
	// Rewind restarts the pattern for a new activation. Long-lived
	// orientation, such as the chase direction, is kept.
	Rewind()
	// Reset restores the pattern to its initial state.
	Reset()
}

// New returns the Pattern with the given name.
func New(name string) (Pattern, error) {
	switch name {
	case "blink":
		return &Blink{}, nil
	case "chase":
		return &Chase{}, nil
	default:
		return nil, fmt.Errorf("invalid pattern: %s", name)
	}
}
