package led

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBank(t *testing.T) {
	paths := make([]string, 4)
	for i := range paths {
		paths[i] = makeLED(t, "255")
		require.NoError(t, os.WriteFile(filepath.Join(paths[i], "trigger"), []byte("[timer] none"), 0644))
	}

	b, err := NewBank(paths)
	require.NoError(t, err)

	// opening the bank disables the kernel triggers
	for _, path := range paths {
		content, err := os.ReadFile(filepath.Join(path, "trigger"))
		require.NoError(t, err)
		assert.Equal(t, "none", string(content))
	}

	require.NoError(t, b.Set(2, true))
	assert.Equal(t, []bool{false, false, true, false}, b.States())
	content, err := os.ReadFile(filepath.Join(paths[2], "brightness"))
	require.NoError(t, err)
	assert.Equal(t, "255", string(content))

	assert.Error(t, b.Set(4, true))
	assert.Error(t, b.Set(-1, true))

	require.NoError(t, b.Off())
	assert.Equal(t, []bool{false, false, false, false}, b.States())

	require.NoError(t, b.Close())
	for _, path := range paths {
		content, err = os.ReadFile(filepath.Join(path, "brightness"))
		require.NoError(t, err)
		assert.Equal(t, "0", string(content))
	}
}

func TestNewBank_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		paths func(t *testing.T) []string
	}{
		{
			name:  "not a led",
			paths: func(t *testing.T) []string { return []string{t.TempDir()} },
		},
		{
			name: "no trigger support",
			paths: func(t *testing.T) []string {
				return []string{makeLED(t, "255")}
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := NewBank(testCase.paths(t))
			assert.Error(t, err)
		})
	}
}
