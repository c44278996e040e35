package gpio

import "fmt"

// Buttons is a bank of edge-triggered GPIO input lines. A qualifying
// edge on line i calls the handler with i. The handler runs on the
// chip's event goroutine and must not block.
type Buttons struct {
	lines []line
}

func NewButtons(chip string, offsets []int, edge Edge, handler func(button int)) (*Buttons, error) {
	return newButtons(chip, offsets, edge, handler, requestEventLine)
}

func newButtons(chip string, offsets []int, edge Edge, handler func(button int), request func(chip string, offset int, edge Edge, handler func()) (line, error)) (*Buttons, error) {
	lines := make([]line, 0, len(offsets))
	for i, offset := range offsets {
		l, err := request(chip, offset, edge, func() { handler(i) })
		if err != nil {
			_ = closeLines(lines)
			return nil, fmt.Errorf("gpio %d: %w", offset, err)
		}
		lines = append(lines, l)
	}
	return &Buttons{lines: lines}, nil
}

// Close removes the edge triggers and releases the button lines, in
// reverse order.
func (b *Buttons) Close() error {
	return closeLines(b.lines)
}
