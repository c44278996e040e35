// Package gpio drives LEDs and push buttons connected to GPIO lines,
// using the Linux GPIO character device.
package gpio

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

const consumer = "ledpanel"

// Edge selects which voltage transition counts as a button press. The
// line bias is set to match: pull-down for rising, pull-up for falling.
type Edge string

const (
	EdgeRising  Edge = "rising"
	EdgeFalling Edge = "falling"
)

func ParseEdge(s string) (Edge, error) {
	switch Edge(s) {
	case EdgeRising, EdgeFalling:
		return Edge(s), nil
	default:
		return "", fmt.Errorf("invalid edge: %s", s)
	}
}

type line interface {
	SetValue(value int) error
	Close() error
}

func closeLines(lines []line) error {
	var errs []error
	for i := len(lines) - 1; i >= 0; i-- {
		errs = append(errs, lines[i].Close())
	}
	return errors.Join(errs...)
}

func requestOutputLine(chip string, offset int) (line, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, err
	}
	return l, nil
}

func requestEventLine(chip string, offset int, edge Edge, handler func()) (line, error) {
	opts := []gpiocdev.LineReqOption{
		gpiocdev.WithConsumer(consumer),
		gpiocdev.WithEventHandler(func(gpiocdev.LineEvent) { handler() }),
	}
	if edge == EdgeFalling {
		opts = append(opts, gpiocdev.WithFallingEdge, gpiocdev.WithPullUp)
	} else {
		opts = append(opts, gpiocdev.WithRisingEdge, gpiocdev.WithPullDown)
	}
	l, err := gpiocdev.RequestLine(chip, offset, opts...)
	if err != nil {
		return nil, err
	}
	return l, nil
}
