package pattern

// Chase lights a single LED, sweeping across the row. Each time the
// index wraps back to the start, the sweep direction flips.
type Chase struct {
	index   int
	reverse bool
}

func (c *Chase) Next(count int) []bool {
	if c.index >= count {
		c.index = 0
	}
	frame := make([]bool, count)
	frame[c.index] = true
	if c.reverse {
		c.index--
		if c.index < 0 {
			c.index = count - 1
		}
	} else {
		c.index++
		if c.index >= count {
			c.index = 0
		}
	}
	if c.index == 0 {
		c.reverse = !c.reverse
	}
	return frame
}

// Rewind restarts the sweep at the first LED. The direction is kept,
// so a restarted chase continues the way it was last going.
func (c *Chase) Rewind() {
	c.index = 0
}

func (c *Chase) Reset() {
	c.index = 0
	c.reverse = false
}
