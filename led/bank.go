package led

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Bank is a set of sysfs LEDs addressed by index. Opening the bank
// sets each LED's trigger to "none", taking the kernel out of the loop
// so the panel has exclusive control of the brightness.
type Bank struct {
	leds   []*LED
	lock   sync.RWMutex
	states []bool
}

func NewBank(paths []string) (*Bank, error) {
	leds := make([]*LED, 0, len(paths))
	for _, path := range paths {
		l, err := New(path)
		if err == nil {
			err = l.SetTrigger("none")
		}
		if err != nil {
			return nil, fmt.Errorf("led %s: %w", path, err)
		}
		leds = append(leds, l)
	}
	return &Bank{leds: leds, states: make([]bool, len(leds))}, nil
}

// Set switches one LED on or off.
func (b *Bank) Set(id int, on bool) error {
	if id < 0 || id >= len(b.leds) {
		return fmt.Errorf("invalid led: %d", id)
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	if err := b.leds[id].Set(on); err != nil {
		return fmt.Errorf("led %d: %w", id, err)
	}
	b.states[id] = on
	return nil
}

// States returns the on/off state of all LEDs.
func (b *Bank) States() []bool {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return slices.Clone(b.states)
}

// Off switches all LEDs off.
func (b *Bank) Off() error {
	var errs []error
	for id := range b.leds {
		errs = append(errs, b.Set(id, false))
	}
	return errors.Join(errs...)
}

// Close switches all LEDs off. sysfs holds no claims that need
// releasing.
func (b *Bank) Close() error {
	return b.Off()
}
