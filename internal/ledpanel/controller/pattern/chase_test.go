package pattern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChase_Next(t *testing.T) {
	var c Chase

	testCases := []struct {
		count int
		next  string
	}{
		{count: 4, next: "1000"},
		{count: 4, next: "0100"},
		{count: 4, next: "0010"},
		{count: 4, next: "0001"},
		{count: 4, next: "1000"},
		{count: 4, next: "0001"},
		{count: 4, next: "0010"},
		{count: 4, next: "0100"},
		{count: 4, next: "1000"},
		{count: 4, next: "0100"},
		{count: 4, next: "0010"},
		{count: 4, next: "0001"},
	}

	for index, testCase := range testCases {
		assert.Equal(t, testCase.next, boolToString(c.Next(testCase.count)), fmt.Sprintf("frame: %d", index+1))
	}
}

func TestChase_Rewind(t *testing.T) {
	var c Chase
	for range 5 {
		c.Next(4)
	}

	// direction flipped at the wrap. a rewind keeps it
	c.Rewind()
	for index, next := range []string{"1000", "0001", "0010", "0100"} {
		assert.Equal(t, next, boolToString(c.Next(4)), fmt.Sprintf("frame: %d", index+1))
	}
}

func TestChase_Reset(t *testing.T) {
	var c Chase
	for range 5 {
		c.Next(4)
	}

	c.Reset()
	for index, next := range []string{"1000", "0100", "0010", "0001"} {
		assert.Equal(t, next, boolToString(c.Next(4)), fmt.Sprintf("frame: %d", index+1))
	}
}
