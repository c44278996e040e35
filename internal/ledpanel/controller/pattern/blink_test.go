package pattern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlink_Next(t *testing.T) {
	var b Blink

	testCases := []struct {
		count int
		next  string
	}{
		{count: 4, next: "1111"},
		{count: 4, next: "0000"},
		{count: 4, next: "1111"},
		{count: 4, next: "0000"},
		{count: 2, next: "11"},
		{count: 2, next: "00"},
	}

	for index, testCase := range testCases {
		assert.Equal(t, testCase.next, boolToString(b.Next(testCase.count)), fmt.Sprintf("frame: %d", index+1))
	}
}

func TestBlink_Rewind(t *testing.T) {
	var b Blink
	b.Next(4)
	assert.Equal(t, "0000", boolToString(b.Next(4)))

	b.Rewind()
	assert.Equal(t, "1111", boolToString(b.Next(4)))

	b.Next(4)
	b.Reset()
	assert.Equal(t, "1111", boolToString(b.Next(4)))
}
