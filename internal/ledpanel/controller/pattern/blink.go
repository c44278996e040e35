package pattern

// Blink alternates between all LEDs on and all LEDs off, starting all on.
type Blink struct {
	off bool
}

func (b *Blink) Next(count int) []bool {
	frame := make([]bool, count)
	for i := range frame {
		frame[i] = !b.off
	}
	b.off = !b.off
	return frame
}

func (b *Blink) Rewind() {
	b.off = false
}

func (b *Blink) Reset() {
	b.off = false
}
